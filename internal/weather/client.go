package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// Per-operation deadlines. The forecast payload is by far the largest, the
// geocoder the smallest.
const (
	geocodeTimeout  = 8 * time.Second
	weatherTimeout  = 10 * time.Second
	forecastTimeout = 12 * time.Second
)

// Client issues requests against the relay. Each logical operation maps to
// exactly one relay request; there are no retries. A circuit breaker fails
// fast once the relay is persistently unreachable.
//
// The two current-conditions operations share a single cancelable slot:
// starting either one cancels a still-pending predecessor, which then fails
// with ErrSuperseded.
type Client struct {
	proxyURL   string
	units      string
	lang       string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	cache      *forecastCache

	primaryMu     sync.Mutex
	primaryGen    uint64
	cancelPrimary context.CancelFunc
}

// NewClient creates a Client bound to a relay base URL.
func NewClient(proxyBaseURL, units, lang string, cacheTTL time.Duration) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather-relay",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		// A canceled request is a superseded (or abandoned) fetch, not a
		// relay failure; it must never count toward tripping the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &Client{
		proxyURL:   proxyBaseURL,
		units:      units,
		lang:       lang,
		httpClient: &http.Client{},
		circuit:    cb,
		cache:      newForecastCache(cacheTTL),
	}
}

// CurrentByCity is a primary weather fetch by city name.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*CurrentWeather, error) {
	ctx, release := c.beginPrimary(ctx)
	defer release()

	params := url.Values{}
	params.Set("endpoint", "weather")
	params.Set("q", city)
	params.Set("units", c.units)
	params.Set("lang", c.lang)

	var out CurrentWeather
	if err := c.call(ctx, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentByCoords is a primary weather fetch by coordinates.
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64) (*CurrentWeather, error) {
	ctx, release := c.beginPrimary(ctx)
	defer release()

	params := url.Values{}
	params.Set("endpoint", "weather")
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("units", c.units)
	params.Set("lang", c.lang)

	var out CurrentWeather
	if err := c.call(ctx, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast fetches the 5-day/3-hour forecast, serving from the TTL cache when
// a fresh entry exists for the rounded coordinates.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	if cached, ok := c.cache.get(lat, lon); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, forecastTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("endpoint", "forecast")
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("units", c.units)
	params.Set("lang", c.lang)

	var out ForecastResponse
	if err := c.call(ctx, params, &out); err != nil {
		return nil, err
	}

	c.cache.put(lat, lon, &out)
	return &out, nil
}

// AirQuality fetches the current air-pollution reading. Not cached.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (*AirQuality, error) {
	ctx, cancel := context.WithTimeout(ctx, weatherTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("endpoint", "air_pollution")
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))

	var out AirQuality
	if err := c.call(ctx, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReverseGeocode resolves coordinates to place names.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64, limit int) ([]Place, error) {
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("endpoint", "geocode_reverse")
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("limit", strconv.Itoa(limit))

	var out []Place
	if err := c.call(ctx, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// beginPrimary claims the single primary-fetch slot, canceling whatever
// still holds it. The returned release clears the slot unless a newer fetch
// already took it over.
func (c *Client) beginPrimary(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithTimeout(parent, weatherTimeout)

	c.primaryMu.Lock()
	if c.cancelPrimary != nil {
		c.cancelPrimary()
	}
	c.primaryGen++
	gen := c.primaryGen
	c.cancelPrimary = cancel
	c.primaryMu.Unlock()

	release := func() {
		c.primaryMu.Lock()
		if c.primaryGen == gen {
			c.cancelPrimary = nil
		}
		c.primaryMu.Unlock()
		cancel()
	}
	return ctx, release
}

// call performs the single relay request for an operation and decodes the
// JSON response into target.
func (c *Client) call(ctx context.Context, params url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.proxyURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return c.classifyTransportError(ctx, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.classifyTransportError(ctx, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidAPIKey
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return statusError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("malformed response body: %w", err)
	}
	return nil
}

// classifyTransportError separates the benign outcomes (supersede, timeout)
// from real network failures.
func (c *Client) classifyTransportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(ctx.Err(), context.Canceled):
		return ErrSuperseded
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("relay temporarily unavailable: %w", err)
	default:
		return fmt.Errorf("network error: %w", err)
	}
}

// statusError surfaces the relay's {message} body when it has one.
func statusError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("request failed (status %d): %s", status, payload.Message)
	}
	return fmt.Errorf("request failed with status %d", status)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
