package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/pet-irrigation-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/pet-irrigation-service/internal/adapter/kafka"
	mqttadapter "github.com/couchcryptid/pet-irrigation-service/internal/adapter/mqtt"
	"github.com/couchcryptid/pet-irrigation-service/internal/adapter/openweather"
	"github.com/couchcryptid/pet-irrigation-service/internal/config"
	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
	"github.com/couchcryptid/pet-irrigation-service/internal/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Live temperatures (feature-flagged via WEATHER_ENABLED / OPENWEATHER_API_KEY).
	var weather domain.WeatherProvider
	if cfg.WeatherEnabled {
		client := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.WeatherBaseURL, cfg.WeatherTimeout, cfg.WeatherMaxRetries, metrics, logger)
		breaker := openweather.NewBreakerProvider(client, cfg.WeatherBreakerFailures, cfg.WeatherBreakerOpen, metrics, logger)
		weather = openweather.NewCachedProvider(breaker, cfg.WeatherCacheSize, cfg.WeatherCacheTTL, nil, metrics)
		metrics.WeatherEnabled.Set(1)
		logger.Info("openweather enabled", "cache_size", cfg.WeatherCacheSize, "cache_ttl", cfg.WeatherCacheTTL, "timeout", cfg.WeatherTimeout)
	} else {
		logger.Info("openweather disabled, realtime requests will be rejected")
	}

	// Decision fan-out (enabled via MQTT_BROKER).
	var publisher *mqttadapter.Publisher
	if cfg.MQTTEnabled() {
		publisher, err = mqttadapter.Connect(ctx, cfg, metrics, logger)
		if err != nil {
			logger.Error("mqtt connect failed", "error", err)
			os.Exit(1)
		}
	}

	var ready httpadapter.ReadinessFunc = httpadapter.AlwaysReady
	var reader *kafkaadapter.Reader
	var writer *kafkaadapter.Writer
	pipelineDone := make(chan struct{})

	if cfg.PipelineEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(weather, decisionPublisher(publisher), metrics, logger)
		p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p.CheckReadiness

		go func() {
			defer close(pipelineDone)
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
	} else {
		close(pipelineDone)
		logger.Info("kafka pipeline disabled")
	}

	api := httpadapter.NewAPI(weather, apiPublisher(publisher), metrics, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, api, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	select {
	case <-pipelineDone:
	case <-shutdownCtx.Done():
		logger.Warn("pipeline did not stop before shutdown timeout")
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if publisher != nil {
		publisher.Close()
	}

	logger.Info("shutdown complete")
}

// decisionPublisher and apiPublisher avoid handing a typed nil *Publisher
// to an interface field.
func decisionPublisher(p *mqttadapter.Publisher) pipeline.DecisionPublisher {
	if p == nil {
		return nil
	}
	return p
}

func apiPublisher(p *mqttadapter.Publisher) httpadapter.DecisionPublisher {
	if p == nil {
		return nil
	}
	return p
}
