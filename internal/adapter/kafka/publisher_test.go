package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/storm-harm-report/internal/domain"
	"github.com/couchcryptid/storm-harm-report/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	generatedAt := time.Date(2024, 4, 27, 6, 0, 0, 0, time.UTC)
	list := report.RankedList{
		Field: domain.FieldFatalities,
		Unit:  "deaths",
		Entries: domain.TopNReport{
			{Category: "TORNADO", Value: 5633},
			{Category: "EXCESSIVE HEAT", Value: 1903},
		},
	}

	msg, err := serializeToMessage(list, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, []byte("fatalities"), msg.Key)
	assert.Contains(t, string(msg.Value), `"field":"fatalities"`)
	assert.Contains(t, string(msg.Value), `"category":"TORNADO"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "field", msg.Headers[0].Key)
	assert.Equal(t, []byte("fatalities"), msg.Headers[0].Value)
	assert.Equal(t, "generated_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2024-04-27T06:00:00Z"), msg.Headers[1].Value)
}
