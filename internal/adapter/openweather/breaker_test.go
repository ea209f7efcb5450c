package openweather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerProvider_PassesThrough(t *testing.T) {
	inner := &countingProvider{temp: 22.1}
	b := NewBreakerProvider(inner, 3, time.Minute, observability.NewMetricsForTesting(), discardLogger())

	got, err := b.CurrentTemperature(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 22.1, got, 1e-12)
}

func TestBreakerProvider_OpensAfterConsecutiveFailures(t *testing.T) {
	upstream := errors.New("status 503")
	inner := &countingProvider{err: upstream}
	b := NewBreakerProvider(inner, 2, time.Minute, observability.NewMetricsForTesting(), discardLogger())

	for range 2 {
		_, err := b.CurrentTemperature(context.Background(), 1, 2)
		require.ErrorIs(t, err, upstream)
	}

	_, err := b.CurrentTemperature(context.Background(), 1, 2)
	require.ErrorIs(t, err, domain.ErrWeatherUnavailable)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, inner.calls, "open breaker must not reach upstream")
}

func TestBreakerProvider_HalfOpenRecovers(t *testing.T) {
	inner := &countingProvider{err: errors.New("boom")}
	b := NewBreakerProvider(inner, 1, 20*time.Millisecond, observability.NewMetricsForTesting(), discardLogger())

	_, err := b.CurrentTemperature(context.Background(), 1, 2)
	require.Error(t, err)
	_, err = b.CurrentTemperature(context.Background(), 1, 2)
	require.ErrorIs(t, err, domain.ErrWeatherUnavailable)

	time.Sleep(40 * time.Millisecond)
	inner.err = nil
	inner.temp = 8

	got, err := b.CurrentTemperature(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got, 1e-12)
}

func TestBreakerProvider_CancellationDoesNotTrip(t *testing.T) {
	inner := &countingProvider{err: context.Canceled}
	b := NewBreakerProvider(inner, 1, time.Minute, observability.NewMetricsForTesting(), discardLogger())

	for range 3 {
		_, err := b.CurrentTemperature(context.Background(), 1, 2)
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, 3, inner.calls)
}
