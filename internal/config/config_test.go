package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSVPath = "/data/storm_events.csv.bz2"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CSV_PATH", testCSVPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testCSVPath, cfg.CSVPath)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "storm-harm-reports", cfg.KafkaReportTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("CSV_PATH", testCSVPath)
	t.Setenv("TOP_N", "5")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_REPORT_TOPIC", "custom-reports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-reports", cfg.KafkaReportTopic)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing CSV_PATH", func(t *testing.T) {
		t.Setenv("CSV_PATH", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CSV_PATH")
	})

	t.Run("non-positive TOP_N", func(t *testing.T) {
		t.Setenv("CSV_PATH", testCSVPath)
		t.Setenv("TOP_N", "0")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TOP_N")
	})

	t.Run("non-numeric TOP_N", func(t *testing.T) {
		t.Setenv("CSV_PATH", testCSVPath)
		t.Setenv("TOP_N", "ten")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("invalid SHUTDOWN_TIMEOUT", func(t *testing.T) {
		t.Setenv("CSV_PATH", testCSVPath)
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("kafka enabled without brokers", func(t *testing.T) {
		t.Setenv("CSV_PATH", testCSVPath)
		t.Setenv("KAFKA_ENABLED", "true")
		t.Setenv("KAFKA_BROKERS", ",")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "KAFKA_BROKERS")
	})
}
