package view

import "math"

// AQIClass is the severity bucket driving the dashboard's CSS state class.
type AQIClass string

const (
	AQIGood     AQIClass = "good"
	AQIModerate AQIClass = "moderate"
	AQIPoor     AQIClass = "poor"
)

// ClassifyAQICategory buckets the provider's 5-level categorical scale.
// Out-of-range values bucket as poor, the conservative default.
func ClassifyAQICategory(aqi int) AQIClass {
	switch {
	case aqi == 1 || aqi == 2:
		return AQIGood
	case aqi == 3:
		return AQIModerate
	case aqi == 4 || aqi == 5:
		return AQIPoor
	}
	return AQIPoor
}

// ClassifyAQIIndex buckets a continuous numeric index by threshold bands.
// Invalid values bucket as poor.
func ClassifyAQIIndex(v float64) AQIClass {
	switch {
	case math.IsNaN(v) || v < 0:
		return AQIPoor
	case v <= 50:
		return AQIGood
	case v <= 100:
		return AQIModerate
	}
	return AQIPoor
}

// AQILabel is the human-readable name of a categorical AQI level.
func AQILabel(aqi int) string {
	switch aqi {
	case 1:
		return "Good"
	case 2:
		return "Fair"
	case 3:
		return "Moderate"
	case 4:
		return "Poor"
	case 5:
		return "Very Poor"
	}
	return "Unknown"
}
