package view

import (
	"fmt"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Dashboard is the complete view model one search renders.
type Dashboard struct {
	City         string `json:"city"`
	Description  string `json:"description"`
	TemperatureC int    `json:"temperatureC"`
	FeelsLikeC   int    `json:"feelsLikeC"`

	Date        string `json:"date"`
	Time        string `json:"time"`
	Coordinates string `json:"coordinates"`

	WindSpeed   int    `json:"windSpeed"`
	WindCompass string `json:"windCompass"`
	CloudCover  string `json:"cloudCover"`
	Humidity    string `json:"humidity"`
	Pressure    string `json:"pressure"`
	Visibility  string `json:"visibility"`

	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	DayLength     string `json:"dayLength"`
	TimezoneLabel string `json:"timezoneLabel"`

	Icon string `json:"icon"`

	Hourly []HourlyCard `json:"hourly,omitempty"`
	Daily  []DailyRow   `json:"daily,omitempty"`
	Air    *AirCard     `json:"air,omitempty"`
}

// AirCard is the air-quality widget.
type AirCard struct {
	AQI   int      `json:"aqi"`
	Label string   `json:"label"`
	Class AQIClass `json:"class"`
	PM25  float64  `json:"pm25"`
	PM10  float64  `json:"pm10"`
	O3    float64  `json:"o3"`
	NO2   float64  `json:"no2"`
}

// BuildDashboard assembles the view model from one search result. A nil
// forecast or air payload leaves that section empty; it never fails the
// build.
func BuildDashboard(res *weather.Result, now time.Time) *Dashboard {
	cur := res.Current
	cond := firstCondition(cur.Weather)
	tz := cur.TZShift

	d := &Dashboard{
		City:          cur.Name,
		Description:   cond.Description,
		TemperatureC:  RoundTemp(cur.Main.Temp),
		FeelsLikeC:    RoundTemp(cur.Main.FeelsLike),
		Date:          FormatDate(cur.Dt, tz),
		Time:          FormatClock(cur.Dt, tz),
		Coordinates:   fmt.Sprintf("%.2f, %.2f", cur.Coord.Lat, cur.Coord.Lon),
		WindSpeed:     RoundTemp(cur.Wind.Speed),
		Humidity:      fmt.Sprintf("%d%%", cur.Main.Humidity),
		Pressure:      fmt.Sprintf("%d hPa", cur.Main.Pressure),
		Sunrise:       FormatClock(cur.Sys.Sunrise, tz),
		Sunset:        FormatClock(cur.Sys.Sunset, tz),
		DayLength:     DayLength(cur.Sys.Sunrise, cur.Sys.Sunset),
		TimezoneLabel: TimezoneLabel(tz),
	}

	if cur.Wind.Deg != nil {
		d.WindCompass = DegToCompass(*cur.Wind.Deg)
	}

	d.CloudCover = "N/A"
	if cur.Clouds.All != nil {
		d.CloudCover = fmt.Sprintf("%d%%", *cur.Clouds.All)
	}

	d.Visibility = "N/A"
	if cur.Visibility != nil {
		d.Visibility = fmt.Sprintf("%.1f km", float64(*cur.Visibility)/1000)
	}

	day := IsDay(cond.Icon, cur.Dt, cur.Sys.Sunrise, cur.Sys.Sunset, tz)
	d.Icon = IconFor(cond.ID, cond.Description, day)

	if res.Forecast != nil {
		d.Daily = DailyForecast(res.Forecast.List, tz)
		d.Hourly = HourlyStrip(res.Forecast.List, tz, now)
	}

	if res.Air != nil && len(res.Air.List) > 0 {
		reading := res.Air.List[0]
		aqi := reading.Main.AQI
		d.Air = &AirCard{
			AQI:   aqi,
			Label: AQILabel(aqi),
			Class: ClassifyAQICategory(aqi),
			PM25:  reading.Components.PM25,
			PM10:  reading.Components.PM10,
			O3:    reading.Components.O3,
			NO2:   reading.Components.NO2,
		}
	}

	return d
}
