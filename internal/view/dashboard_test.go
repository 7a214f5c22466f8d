package view

import (
	"testing"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func TestBuildDashboardOptionalFields(t *testing.T) {
	cur := &weather.CurrentWeather{Name: "Reykjavik", Dt: 1700000000}
	cur.Main.Temp = -2.4
	cur.Main.FeelsLike = -6.1
	cur.Weather = []weather.Condition{{ID: 600, Description: "light snow", Icon: "13d"}}

	d := BuildDashboard(&weather.Result{Current: cur}, time.Unix(1700000000, 0))

	if d.CloudCover != "N/A" {
		t.Errorf("expected N/A cloud cover when the field is absent, got %q", d.CloudCover)
	}
	if d.Visibility != "N/A" {
		t.Errorf("expected N/A visibility when the field is absent, got %q", d.Visibility)
	}
	if d.WindCompass != "" {
		t.Errorf("expected no compass without a wind direction, got %q", d.WindCompass)
	}
	if d.Hourly != nil || d.Daily != nil || d.Air != nil {
		t.Error("expected forecast and air sections empty without their payloads")
	}
	if d.Icon != IconSnow {
		t.Errorf("expected the snow icon, got %q", d.Icon)
	}
	if d.TemperatureC != -2 {
		t.Errorf("expected -2°C, got %d", d.TemperatureC)
	}
}

func TestBuildDashboardPopulatedFields(t *testing.T) {
	deg := 180.0
	clouds := 75
	vis := 8000

	cur := &weather.CurrentWeather{Name: "Berlin", Dt: 1700000000, TZShift: 3600}
	cur.Weather = []weather.Condition{{ID: 800, Description: "clear sky", Icon: "01d"}}
	cur.Wind.Deg = &deg
	cur.Clouds.All = &clouds
	cur.Visibility = &vis

	air := &weather.AirQuality{List: []weather.AirQualityReading{{}}}
	air.List[0].Main.AQI = 3

	d := BuildDashboard(&weather.Result{Current: cur, Air: air}, time.Unix(1700000000, 0))

	if d.WindCompass != "S" {
		t.Errorf("expected compass S for 180°, got %q", d.WindCompass)
	}
	if d.CloudCover != "75%" {
		t.Errorf("expected 75%% cloud cover, got %q", d.CloudCover)
	}
	if d.Visibility != "8.0 km" {
		t.Errorf("expected visibility in km, got %q", d.Visibility)
	}
	if d.Air == nil || d.Air.Label != "Moderate" || d.Air.Class != AQIModerate {
		t.Errorf("unexpected air widget: %+v", d.Air)
	}
	if d.TimezoneLabel != "UTC+1" {
		t.Errorf("expected UTC+1, got %q", d.TimezoneLabel)
	}
}
