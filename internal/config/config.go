package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka batch pipeline.
	PipelineEnabled    bool
	KafkaBrokers       []string
	KafkaSourceTopic   string
	KafkaSinkTopic     string
	KafkaGroupID       string
	BatchSize          int
	BatchFlushInterval time.Duration

	// OpenWeather live temperature lookups.
	OpenWeatherAPIKey      string
	WeatherEnabled         bool
	WeatherBaseURL         string
	WeatherTimeout         time.Duration
	WeatherCacheSize       int
	WeatherCacheTTL        time.Duration
	WeatherMaxRetries      int
	WeatherBreakerFailures int
	WeatherBreakerOpen     time.Duration

	// MQTT irrigation decision publishing. Disabled when MQTTBroker is empty.
	MQTTBroker        string
	MQTTClientID      string
	MQTTUsername      string
	MQTTPassword      string
	MQTTDecisionTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	weatherTimeout, err := parsePositiveDuration("WEATHER_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parsePositiveDuration("WEATHER_CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	breakerOpen, err := parsePositiveDuration("WEATHER_BREAKER_OPEN", "30s")
	if err != nil {
		return nil, err
	}
	maxRetries, err := parseInt("WEATHER_MAX_RETRIES", 2, 0)
	if err != nil {
		return nil, err
	}
	breakerFailures, err := parseInt("WEATHER_BREAKER_FAILURES", 5, 1)
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	weatherEnabled := apiKey != ""
	if v := os.Getenv("WEATHER_ENABLED"); v != "" {
		weatherEnabled = v == "true"
	}

	pipelineEnabled := true
	if v := os.Getenv("PIPELINE_ENABLED"); v != "" {
		pipelineEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		PipelineEnabled:    pipelineEnabled,
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "calculation-requests"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "calculation-results"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "pet-irrigation-advisor"),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		OpenWeatherAPIKey:      apiKey,
		WeatherEnabled:         weatherEnabled,
		WeatherBaseURL:         strings.TrimRight(sharedcfg.EnvOrDefault("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"), "/"),
		WeatherTimeout:         weatherTimeout,
		WeatherCacheSize:       parseCacheSize(),
		WeatherCacheTTL:        cacheTTL,
		WeatherMaxRetries:      maxRetries,
		WeatherBreakerFailures: breakerFailures,
		WeatherBreakerOpen:     breakerOpen,

		MQTTBroker:        os.Getenv("MQTT_BROKER"),
		MQTTClientID:      sharedcfg.EnvOrDefault("MQTT_CLIENT_ID", "pet-irrigation-advisor"),
		MQTTUsername:      os.Getenv("MQTT_USERNAME"),
		MQTTPassword:      os.Getenv("MQTT_PASSWORD"),
		MQTTDecisionTopic: sharedcfg.EnvOrDefault("MQTT_DECISION_TOPIC", "irrigation/decision/{region}/{crop}"),
	}

	if cfg.PipelineEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	}
	if cfg.WeatherEnabled && cfg.OpenWeatherAPIKey == "" {
		return nil, errors.New("WEATHER_ENABLED is true but OPENWEATHER_API_KEY is not set")
	}
	if cfg.MQTTBroker != "" && cfg.MQTTDecisionTopic == "" {
		return nil, errors.New("MQTT_DECISION_TOPIC is required when MQTT_BROKER is set")
	}

	return cfg, nil
}

// MQTTEnabled reports whether irrigation decisions should be published.
func (c *Config) MQTTEnabled() bool {
	return c.MQTTBroker != ""
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt(key string, def, minimum int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < minimum {
		return 0, fmt.Errorf("invalid %s: must be an integer >= %d", key, minimum)
	}
	return n, nil
}

func parseCacheSize() int {
	if s := os.Getenv("WEATHER_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 100
}
