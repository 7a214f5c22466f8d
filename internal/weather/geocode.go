package weather

import (
	"github.com/kelvins/geocoder"
)

// FallbackGeocoder resolves a coordinate pair to a city name when the
// upstream reverse geocoder comes back empty. Backed by the Google geocoding
// API; disabled (and skipped) when no key is configured.
type FallbackGeocoder struct {
	enabled bool
}

func NewFallbackGeocoder(apiKey string) *FallbackGeocoder {
	if apiKey == "" {
		return &FallbackGeocoder{}
	}
	geocoder.ApiKey = apiKey
	return &FallbackGeocoder{enabled: true}
}

func (g *FallbackGeocoder) Enabled() bool {
	return g.enabled
}

// CityName returns the best available locality name for the coordinates, or
// "" when nothing resolves.
func (g *FallbackGeocoder) CityName(lat, lon float64) (string, error) {
	if !g.enabled {
		return "", nil
	}

	address, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		return "", err
	}

	for _, a := range address {
		if a.City != "" {
			return a.City, nil
		}
	}
	for _, a := range address {
		if a.County != "" {
			return a.County, nil
		}
	}
	return "", nil
}
