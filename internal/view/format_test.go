package view

import (
	"math"
	"testing"
)

func TestDegToCompassIsPeriodic(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{360, "N"},
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{337.5, "NNW"},
		{348.75, "N"}, // rounds up across the wrap
		{720, "N"},
	}
	for _, tc := range cases {
		if got := DegToCompass(tc.deg); got != tc.want {
			t.Errorf("DegToCompass(%v) = %q, want %q", tc.deg, got, tc.want)
		}
	}

	if got := DegToCompass(math.NaN()); got != "" {
		t.Errorf("DegToCompass(NaN) = %q, want empty", got)
	}
}

func TestFormatUsesLocationOffsetNotHostZone(t *testing.T) {
	// 2023-11-15 12:00:00 UTC.
	const ts = 1700049600

	if got := FormatClock(ts, 0); got != "12:00" {
		t.Errorf("UTC clock = %q, want 12:00", got)
	}
	if got := FormatClock(ts, 5*3600+1800); got != "17:30" {
		t.Errorf("UTC+5.5 clock = %q, want 17:30", got)
	}
	if got := FormatClock(ts, -5*3600); got != "07:00" {
		t.Errorf("UTC-5 clock = %q, want 07:00", got)
	}

	// The offset can shift the calendar date too.
	if got := FormatDate(ts+11*3600, 3600); got != "16/11/2023" {
		t.Errorf("date across midnight = %q, want 16/11/2023", got)
	}
}

func TestDayLength(t *testing.T) {
	cases := []struct {
		sunrise, sunset int64
		want            string
	}{
		{21600, 64800, "12h 0m"},  // 06:00 to 18:00
		{21600, 64620, "11h 57m"}, // 06:00 to 17:57
		{21600, 21600, "0h 0m"},
		{64800, 21600, "0h 0m"}, // malformed input clamps to zero
	}
	for _, tc := range cases {
		if got := DayLength(tc.sunrise, tc.sunset); got != tc.want {
			t.Errorf("DayLength(%d, %d) = %q, want %q", tc.sunrise, tc.sunset, got, tc.want)
		}
	}
}

func TestTimezoneLabel(t *testing.T) {
	cases := []struct {
		offset int
		want   string
	}{
		{0, "UTC+0"},
		{7200, "UTC+2"},
		{19800, "UTC+5.5"},
		{-18000, "UTC-5"},
	}
	for _, tc := range cases {
		if got := TimezoneLabel(tc.offset); got != tc.want {
			t.Errorf("TimezoneLabel(%d) = %q, want %q", tc.offset, got, tc.want)
		}
	}
}
