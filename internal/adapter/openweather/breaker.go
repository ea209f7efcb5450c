package openweather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
	"github.com/sony/gobreaker"
)

// BreakerProvider stops calling the upstream provider after consecutive
// failures and fails fast with domain.ErrWeatherUnavailable until the open
// timeout elapses.
type BreakerProvider struct {
	inner domain.WeatherProvider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner with a circuit breaker that trips after
// failures consecutive errors and stays open for openTimeout.
func NewBreakerProvider(inner domain.WeatherProvider, failures int, openTimeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *BreakerProvider {
	st := gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(failures)
		},
		// Caller cancellations say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			if to == gobreaker.StateOpen {
				metrics.WeatherBreakerOpen.Set(1)
			} else {
				metrics.WeatherBreakerOpen.Set(0)
			}
		},
	}
	return &BreakerProvider{inner: inner, cb: gobreaker.NewCircuitBreaker(st)}
}

func (b *BreakerProvider) CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.inner.CurrentTemperature(ctx, lat, lon)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return 0, fmt.Errorf("%w: %w", domain.ErrWeatherUnavailable, err)
	}
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}
