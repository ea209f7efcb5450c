package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Manual temperature bounds in °C, inclusive.
const (
	MinManualTemperature = 0.0
	MaxManualTemperature = 60.0
)

var (
	ErrTemperatureRequired    = errors.New("temperature is required in manual mode")
	ErrTemperatureOutOfRange  = fmt.Errorf("temperature must be between %g and %g °C", MinManualTemperature, MaxManualTemperature)
	ErrWeatherNotConfigured   = errors.New("live weather is not configured")
	ErrWeatherUnavailable     = errors.New("live weather is temporarily unavailable")
	ErrInvalidTemperatureMode = errors.New("invalid temperature mode")
)

// TemperatureMode selects where the PET input temperature comes from.
type TemperatureMode string

const (
	TemperatureRealtime TemperatureMode = "realtime"
	TemperatureManual   TemperatureMode = "manual"
)

// ParseTemperatureMode accepts "realtime" or "manual" in any case. An empty
// string selects realtime.
func ParseTemperatureMode(s string) (TemperatureMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(TemperatureRealtime):
		return TemperatureRealtime, nil
	case string(TemperatureManual):
		return TemperatureManual, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTemperatureMode, s)
	}
}

// WeatherProvider returns the current air temperature at a coordinate.
type WeatherProvider interface {
	CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error)
}

// ValidateManualTemperature checks a user-entered temperature against the
// accepted range.
func ValidateManualTemperature(t float64) error {
	if t < MinManualTemperature || t > MaxManualTemperature {
		return fmt.Errorf("%w: got %g", ErrTemperatureOutOfRange, t)
	}
	return nil
}

// ResolveTemperature produces the temperature for a PET calculation. Manual
// mode validates the supplied value; realtime mode queries the provider at the
// region's coordinates and rounds to two decimals. Occupied regions are
// rejected in both modes.
func ResolveTemperature(ctx context.Context, region string, mode TemperatureMode, manual *float64, weather WeatherProvider) (float64, error) {
	if IsOccupied(region) {
		return 0, fmt.Errorf("%w: %s", ErrOccupiedRegion, region)
	}

	switch mode {
	case TemperatureManual:
		if manual == nil {
			return 0, ErrTemperatureRequired
		}
		if err := ValidateManualTemperature(*manual); err != nil {
			return 0, err
		}
		return *manual, nil

	case TemperatureRealtime:
		r, err := FindRegion(region)
		if err != nil {
			return 0, err
		}
		if weather == nil {
			return 0, ErrWeatherNotConfigured
		}
		t, err := weather.CurrentTemperature(ctx, r.Lat, r.Lon)
		if err != nil {
			return 0, fmt.Errorf("fetch temperature for %s: %w", region, err)
		}
		return Round2(t), nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTemperatureMode, mode)
	}
}
