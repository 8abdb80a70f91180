package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected float64
	}{
		{"thousands", "K", 1e3},
		{"millions", "M", 1e6},
		{"billions", "B", 1e9},
		{"lowercase thousands", "k", 1e3},
		{"lowercase millions", "m", 1e6},
		{"lowercase billions", "b", 1e9},
		{"empty code", "", 1},
		{"unrecognized letter", "X", 1},
		{"hundreds legacy code", "H", 1},
		{"stray plus", "+", 1},
		{"stray question mark", "?", 1},
		{"stray digit", "5", 1},
		{"code with spaces", " K ", 1e3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Multiplier(tt.code))
		})
	}
}

func TestNormalizeRecord(t *testing.T) {
	t.Run("uppercases label and rescales damages", func(t *testing.T) {
		rec := StormRecord{
			EventType:      "wind damage",
			Fatalities:     2,
			Injuries:       7,
			PropertyDamage: 5,
			PropertyExp:    "K",
			CropDamage:     5,
			CropExp:        "m",
		}

		result := NormalizeRecord(rec)

		assert.Equal(t, "WIND DAMAGE", result.EventType)
		assert.Equal(t, 5000.0, result.PropertyDamage)
		assert.Equal(t, 5000000.0, result.CropDamage)
		assert.Empty(t, result.PropertyExp)
		assert.Empty(t, result.CropExp)
		// Counts pass through untouched.
		assert.Equal(t, 2.0, result.Fatalities)
		assert.Equal(t, 7.0, result.Injuries)
	})

	t.Run("billions code", func(t *testing.T) {
		result := NormalizeRecord(StormRecord{EventType: "FLOOD", PropertyDamage: 5, PropertyExp: "B"})
		assert.Equal(t, 5000000000.0, result.PropertyDamage)
	})

	t.Run("unrecognized code leaves value unchanged", func(t *testing.T) {
		result := NormalizeRecord(StormRecord{EventType: "HAIL", PropertyDamage: 5, PropertyExp: "X"})
		assert.Equal(t, 5.0, result.PropertyDamage)
	})

	t.Run("empty code leaves value unchanged", func(t *testing.T) {
		result := NormalizeRecord(StormRecord{EventType: "HAIL", CropDamage: 5})
		assert.Equal(t, 5.0, result.CropDamage)
	})

	t.Run("label is case folded only, not trimmed", func(t *testing.T) {
		result := NormalizeRecord(StormRecord{EventType: "  tstm wind  "})
		assert.Equal(t, "  TSTM WIND  ", result.EventType)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		rec := StormRecord{EventType: "hail", PropertyDamage: 5, PropertyExp: "K"}
		NormalizeRecord(rec)
		assert.Equal(t, "hail", rec.EventType)
		assert.Equal(t, 5.0, rec.PropertyDamage)
	})
}

func TestNormalizeRecords_Idempotent(t *testing.T) {
	records := []StormRecord{
		{EventType: "Tornado", Fatalities: 5, PropertyDamage: 25, PropertyExp: "K", CropDamage: 1.5, CropExp: "k"},
		{EventType: "flood", Injuries: 8, PropertyDamage: 1.1, PropertyExp: "M"},
		{EventType: "DROUGHT", CropDamage: 13.9, CropExp: "B"},
		{EventType: "LIGHTNING", PropertyDamage: 2, PropertyExp: "+"},
	}

	once := NormalizeRecords(records)
	twice := NormalizeRecords(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("re-normalization changed records (-once +twice):\n%s", diff)
	}
	assert.Len(t, once, len(records), "record count must be preserved")
}

func TestSetClock(t *testing.T) {
	fixedTime := time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC)

	SetClock(clockwork.NewFakeClockAt(fixedTime))
	assert.Equal(t, fixedTime, Now())

	SetClock(nil)
	assert.True(t, time.Since(Now()) < time.Second)
}
