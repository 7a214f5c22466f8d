package weather

import "errors"

// Errors surfaced by the fetch client. Callers treat ErrSuperseded as
// silence, ErrTimeout and network errors as a generic notice, and the two
// credential errors as their own distinct notices.
var (
	ErrSuperseded    = errors.New("request superseded by a newer one")
	ErrTimeout       = errors.New("request timed out")
	ErrInvalidAPIKey = errors.New("upstream rejected the API key")
	ErrRateLimited   = errors.New("upstream rate limit exceeded")
)

// Coord is a coordinate pair as the provider reports it.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeather is the provider's current-conditions payload. Optional
// fields use pointers so rendering can tell "absent" from zero.
type CurrentWeather struct {
	Name    string      `json:"name"`
	Coord   Coord       `json:"coord"`
	Dt      int64       `json:"dt"`
	TZShift int         `json:"timezone"` // UTC offset in seconds
	Weather []Condition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64  `json:"speed"`
		Deg   *float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All *int `json:"all"`
	} `json:"clouds"`
	Visibility *int `json:"visibility"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// Condition is one provider weather condition entry.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ForecastResponse is the provider's 5-day/3-hour forecast payload.
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
	City struct {
		Name    string `json:"name"`
		TZShift int    `json:"timezone"`
	} `json:"city"`
}

// ForecastEntry is one 3-hour forecast step.
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
}

// AirQuality is the provider's air-pollution payload.
type AirQuality struct {
	List []AirQualityReading `json:"list"`
}

// AirQualityReading carries the categorical AQI (1-5) and the pollutant
// concentrations the dashboard shows.
type AirQualityReading struct {
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components struct {
		PM25 float64 `json:"pm2_5"`
		PM10 float64 `json:"pm10"`
		O3   float64 `json:"o3"`
		NO2  float64 `json:"no2"`
	} `json:"components"`
}

// Place is one reverse-geocoding result.
type Place struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
