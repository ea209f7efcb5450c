package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	defaultBroker = "localhost:9092"
	testAPIKey    = "owm-test-key"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.True(t, cfg.PipelineEnabled)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "calculation-requests", cfg.KafkaSourceTopic)
	assert.Equal(t, "calculation-results", cfg.KafkaSinkTopic)
	assert.Equal(t, "pet-irrigation-advisor", cfg.KafkaGroupID)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)

	assert.False(t, cfg.WeatherEnabled)
	assert.Empty(t, cfg.OpenWeatherAPIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.WeatherBaseURL)
	assert.Equal(t, 5*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 100, cfg.WeatherCacheSize)
	assert.Equal(t, 10*time.Minute, cfg.WeatherCacheTTL)
	assert.Equal(t, 2, cfg.WeatherMaxRetries)
	assert.Equal(t, 5, cfg.WeatherBreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.WeatherBreakerOpen)

	assert.False(t, cfg.MQTTEnabled())
	assert.Equal(t, "pet-irrigation-advisor", cfg.MQTTClientID)
	assert.Equal(t, "irrigation/decision/{region}/{crop}", cfg.MQTTDecisionTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-source")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("WEATHER_BASE_URL", "http://weather.local/data/2.5/")
	t.Setenv("WEATHER_TIMEOUT", "2s")
	t.Setenv("WEATHER_CACHE_SIZE", "25")
	t.Setenv("WEATHER_CACHE_TTL", "1m")
	t.Setenv("WEATHER_MAX_RETRIES", "0")
	t.Setenv("WEATHER_BREAKER_FAILURES", "3")
	t.Setenv("WEATHER_BREAKER_OPEN", "1m")
	t.Setenv("MQTT_BROKER", "tcp://mosquitto:1883")
	t.Setenv("MQTT_CLIENT_ID", "advisor-2")
	t.Setenv("MQTT_DECISION_TOPIC", "farm/{region}/{crop}")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-source", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1*time.Second, cfg.BatchFlushInterval)
	assert.True(t, cfg.WeatherEnabled)
	assert.Equal(t, testAPIKey, cfg.OpenWeatherAPIKey)
	assert.Equal(t, "http://weather.local/data/2.5", cfg.WeatherBaseURL)
	assert.Equal(t, 2*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 25, cfg.WeatherCacheSize)
	assert.Equal(t, time.Minute, cfg.WeatherCacheTTL)
	assert.Equal(t, 0, cfg.WeatherMaxRetries)
	assert.Equal(t, 3, cfg.WeatherBreakerFailures)
	assert.Equal(t, time.Minute, cfg.WeatherBreakerOpen)
	assert.True(t, cfg.MQTTEnabled())
	assert.Equal(t, "tcp://mosquitto:1883", cfg.MQTTBroker)
	assert.Equal(t, "advisor-2", cfg.MQTTClientID)
	assert.Equal(t, "farm/{region}/{crop}", cfg.MQTTDecisionTopic)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"invalid shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "not-a-duration"}, "SHUTDOWN_TIMEOUT"},
		{"negative shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "-1s"}, "SHUTDOWN_TIMEOUT"},
		{"zero batch size", map[string]string{"BATCH_SIZE": "0"}, "BATCH_SIZE"},
		{"batch size too large", map[string]string{"BATCH_SIZE": "9999"}, "BATCH_SIZE"},
		{"invalid flush interval", map[string]string{"BATCH_FLUSH_INTERVAL": "not-a-duration"}, "BATCH_FLUSH_INTERVAL"},
		{"invalid weather timeout", map[string]string{"WEATHER_TIMEOUT": "bad"}, "WEATHER_TIMEOUT"},
		{"zero cache ttl", map[string]string{"WEATHER_CACHE_TTL": "0s"}, "WEATHER_CACHE_TTL"},
		{"negative retries", map[string]string{"WEATHER_MAX_RETRIES": "-1"}, "WEATHER_MAX_RETRIES"},
		{"zero breaker failures", map[string]string{"WEATHER_BREAKER_FAILURES": "0"}, "WEATHER_BREAKER_FAILURES"},
		{"weather enabled without key", map[string]string{"WEATHER_ENABLED": "true"}, "OPENWEATHER_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_WeatherKeyImpliesEnabled(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.WeatherEnabled)
}

func TestLoad_WeatherExplicitlyDisabled(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("WEATHER_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.WeatherEnabled)
}

func TestLoad_PipelineDisabled(t *testing.T) {
	t.Setenv("PIPELINE_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.PipelineEnabled)
}

func TestLoad_InvalidCacheSizeFallsBack(t *testing.T) {
	t.Setenv("WEATHER_CACHE_SIZE", "-3")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.WeatherCacheSize)
}
