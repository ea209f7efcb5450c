package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
)

// DefaultBaseURL is the OpenWeather 2.5 API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// APIError is a non-200 response from OpenWeather.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather API error: status %d: %s", e.StatusCode, e.Body)
}

// Client implements domain.WeatherProvider using the OpenWeather current
// weather endpoint in metric units.
type Client struct {
	apiKey        string
	httpClient    *http.Client
	baseURL       string
	maxRetries    int
	retryInterval time.Duration
	metrics       *observability.Metrics
	logger        *slog.Logger
}

// NewClient creates an OpenWeather client. Transient failures (transport
// errors, 429 and 5xx) are retried up to maxRetries times with exponential backoff.
func NewClient(apiKey, baseURL string, timeout time.Duration, maxRetries int, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:       baseURL,
		maxRetries:    maxRetries,
		retryInterval: 250 * time.Millisecond,
		metrics:       metrics,
		logger:        logger,
	}
}

// CurrentTemperature returns the current air temperature in °C at a coordinate.
func (c *Client) CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	fullURL := c.baseURL + "/weather?" + params.Encode()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxRetries)), ctx)

	var temp float64
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		t, err := c.doRequest(ctx, fullURL)
		if err != nil {
			c.logger.Debug("weather request failed", "attempt", attempt, "lat", lat, "lon", lon, "error", err)
			return err
		}
		temp = t
		return nil
	}, policy)
	if err != nil {
		c.metrics.WeatherRequests.WithLabelValues("error").Inc()
		return 0, err
	}

	c.metrics.WeatherRequests.WithLabelValues("success").Inc()
	return temp, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.WeatherAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return 0, apiErr
		}
		return 0, backoff.Permanent(apiErr)
	}

	var owResp response
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return 0, backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	if owResp.Main == nil || owResp.Main.Temp == nil {
		return 0, backoff.Permanent(errors.New("decode response: missing main.temp"))
	}
	return *owResp.Main.Temp, nil
}

// OpenWeather API response types.

type response struct {
	Name string `json:"name"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity float64  `json:"humidity"`
	} `json:"main"`
}
