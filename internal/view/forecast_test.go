package view

import (
	"testing"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func entry(ts time.Time, temp float64, condID int, icon string) weather.ForecastEntry {
	var e weather.ForecastEntry
	e.Dt = ts.Unix()
	e.Main.Temp = temp
	e.Weather = []weather.Condition{{ID: condID, Icon: icon}}
	return e
}

func TestDailyForecastExcludesTodayAndAverages(t *testing.T) {
	day := func(d, h int) time.Time {
		return time.Date(2023, 11, d, h, 0, 0, 0, time.UTC)
	}

	entries := []weather.ForecastEntry{
		entry(day(15, 9), 8, 800, "01d"),  // today, excluded
		entry(day(15, 12), 12, 800, "01d"),
		entry(day(16, 9), 10, 801, "02d"),
		entry(day(16, 15), 14, 801, "02d"),
		entry(day(17, 12), 20, 500, "10d"),
	}

	rows := DailyForecast(entries, 0)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].Weekday != "Thu" || rows[0].Date != "16/11/2023" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].TempC != 12 {
		t.Errorf("expected averaged 12°C, got %d", rows[0].TempC)
	}
	if rows[1].TempC != 20 {
		t.Errorf("expected 20°C for the single-entry day, got %d", rows[1].TempC)
	}
	if rows[1].Icon != IconRain {
		t.Errorf("expected rain icon, got %q", rows[1].Icon)
	}
}

func TestDailyForecastGroupsByLocationCalendar(t *testing.T) {
	// 23:30 UTC on the 15th is already the 16th at UTC+1, so with a single
	// late entry the group layout shifts by one day.
	entries := []weather.ForecastEntry{
		entry(time.Date(2023, 11, 15, 12, 0, 0, 0, time.UTC), 10, 800, "01d"),
		entry(time.Date(2023, 11, 15, 23, 30, 0, 0, time.UTC), 6, 800, "01n"),
	}

	rows := DailyForecast(entries, 3600)
	if len(rows) != 1 {
		t.Fatalf("expected the late entry to form its own (next-day) bucket, got %d rows", len(rows))
	}
	if rows[0].Date != "16/11/2023" {
		t.Errorf("expected local date 16/11/2023, got %q", rows[0].Date)
	}
}

func TestHourlyStripIsForwardLooking(t *testing.T) {
	base := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)

	var entries []weather.ForecastEntry
	for i := 0; i < 12; i++ {
		entries = append(entries, entry(base.Add(time.Duration(i)*3*time.Hour), float64(i), 800, "01d"))
	}

	now := base.Add(7 * time.Hour) // between the 06:00 and 09:00 entries
	cards := HourlyStrip(entries, 0, now)

	if len(cards) != 6 {
		t.Fatalf("expected the strip capped at 6 cards, got %d", len(cards))
	}
	if cards[0].Time != "09:00" {
		t.Errorf("expected the strip to start at the first non-past entry, got %q", cards[0].Time)
	}
}

func TestHourlyStripAllPast(t *testing.T) {
	base := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)
	entries := []weather.ForecastEntry{entry(base, 5, 800, "01d")}

	cards := HourlyStrip(entries, 0, base.Add(48*time.Hour))
	if len(cards) != 0 {
		t.Fatalf("expected no cards when everything is in the past, got %d", len(cards))
	}
}
