package weather

import (
	"context"
	"errors"
	"sync"

	"github.com/i474232898/weather-dashboard/internal/logger"
	"github.com/i474232898/weather-dashboard/internal/store"
)

// Result bundles everything one dashboard refresh needs. Forecast and Air are
// nil when their fetch failed; only the primary fetch can fail the whole
// flow.
type Result struct {
	Current  *CurrentWeather
	Forecast *ForecastResponse
	Air      *AirQuality
}

// Service runs the compound search flows on top of the fetch client.
type Service struct {
	client   *Client
	prefs    *store.Prefs
	fallback *FallbackGeocoder
}

func NewService(client *Client, prefs *store.Prefs, fallback *FallbackGeocoder) *Service {
	return &Service{
		client:   client,
		prefs:    prefs,
		fallback: fallback,
	}
}

// SearchCity fetches current conditions for a city, persists the resolved
// name, then fetches the forecast and air quality concurrently. The two
// dependent fetches race each other and fail independently: a failure
// degrades that widget to nil.
func (s *Service) SearchCity(ctx context.Context, city string) (*Result, error) {
	current, err := s.client.CurrentByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	s.prefs.SetLastCity(current.Name)

	res := &Result{Current: current}
	s.fetchDependents(ctx, res)
	return res, nil
}

// SearchCoords resolves coordinates to a place name first; a resolved name
// delegates to SearchCity (persistence included). Without a name it falls
// back to a direct coordinate lookup, persisting only whatever name the
// provider itself returns.
func (s *Service) SearchCoords(ctx context.Context, lat, lon float64) (*Result, error) {
	if name := s.resolveName(ctx, lat, lon); name != "" {
		return s.SearchCity(ctx, name)
	}

	current, err := s.client.CurrentByCoords(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if current.Name != "" {
		s.prefs.SetLastCity(current.Name)
	}

	res := &Result{Current: current}
	s.fetchDependents(ctx, res)
	return res, nil
}

// resolveName tries the upstream reverse geocoder, then the Google fallback.
// Both are best-effort; an empty result means "search by coordinates".
func (s *Service) resolveName(ctx context.Context, lat, lon float64) string {
	places, err := s.client.ReverseGeocode(ctx, lat, lon, 1)
	if err != nil {
		if !errors.Is(err, ErrSuperseded) {
			logger.Warnf("reverse geocode failed for %.3f,%.3f: %v", lat, lon, err)
		}
	} else if len(places) > 0 && places[0].Name != "" {
		return places[0].Name
	}

	if s.fallback != nil && s.fallback.Enabled() {
		name, err := s.fallback.CityName(lat, lon)
		if err != nil {
			logger.Warnf("fallback geocoder failed for %.3f,%.3f: %v", lat, lon, err)
			return ""
		}
		return name
	}
	return ""
}

// fetchDependents runs the forecast and air-quality fetches concurrently off
// the primary result's coordinates. No ordering between the two, no shared
// failure handling.
func (s *Service) fetchDependents(ctx context.Context, res *Result) {
	lat, lon := res.Current.Coord.Lat, res.Current.Coord.Lon

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		fc, err := s.client.Forecast(ctx, lat, lon)
		if err != nil {
			logger.Warnf("forecast fetch failed for %.3f,%.3f: %v", lat, lon, err)
			return
		}
		res.Forecast = fc
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		air, err := s.client.AirQuality(ctx, lat, lon)
		if err != nil {
			logger.Warnf("air quality fetch failed for %.3f,%.3f: %v", lat, lon, err)
			return
		}
		res.Air = air
	}()

	wg.Wait()
}

// LastCity exposes the persisted city for the startup restore and the
// background refresh job.
func (s *Service) LastCity() (string, error) {
	return s.prefs.LastCity()
}
