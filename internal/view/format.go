// Package view maps provider payloads onto the dashboard's JSON view model.
// Everything here is a pure function; no network, no clock other than what
// the caller passes in.
package view

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegToCompass maps wind degrees onto a 16-point compass rose. The mapping
// is periodic: 0 and 360 are both N. NaN yields "".
func DegToCompass(deg float64) string {
	if math.IsNaN(deg) {
		return ""
	}
	idx := int(math.Round(deg/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// LocalTime interprets a unix timestamp in the location's own UTC offset,
// never the host timezone.
func LocalTime(ts int64, offsetSeconds int) time.Time {
	return time.Unix(ts, 0).In(time.FixedZone("", offsetSeconds))
}

// FormatDate renders a timestamp as a short local date.
func FormatDate(ts int64, offsetSeconds int) string {
	return LocalTime(ts, offsetSeconds).Format("02/01/2006")
}

// FormatClock renders a timestamp as a local 24h clock time.
func FormatClock(ts int64, offsetSeconds int) string {
	return LocalTime(ts, offsetSeconds).Format("15:04")
}

// DayLength renders sunset minus sunrise as whole hours plus remainder
// minutes, e.g. "11h 57m".
func DayLength(sunrise, sunset int64) string {
	secs := sunset - sunrise
	if secs < 0 {
		secs = 0
	}
	hours := secs / 3600
	mins := (secs%3600 + 30) / 60
	if mins == 60 {
		hours++
		mins = 0
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// TimezoneLabel renders a UTC offset like "UTC+2" or "UTC+5.5".
func TimezoneLabel(offsetSeconds int) string {
	hours := float64(offsetSeconds) / 3600
	sign := ""
	if hours >= 0 {
		sign = "+"
	}
	return "UTC" + sign + strconv.FormatFloat(hours, 'f', -1, 64)
}

// RoundTemp rounds to the nearest whole degree.
func RoundTemp(v float64) int {
	return int(math.Round(v))
}
