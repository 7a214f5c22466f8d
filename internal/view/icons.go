package view

import "strings"

// The fixed icon set. Clear and cloudy conditions carry a night variant;
// everything else is shared across day and night.
const (
	IconSunny       = "sunny.png"
	IconClearNight  = "clear-night.png"
	IconCloudy      = "cloudy.png"
	IconCloudyNight = "cloudy-night.png"
	IconRain        = "rain.png"
	IconSnow        = "snow.png"
	IconStorm       = "storm.png"
	IconMist        = "mist.png"
	IconUnknown     = "cloud.png"
	IconPlaceholder = "placeholder.png"
)

// IconFor resolves a provider condition to an icon file name. The numeric
// condition id is preferred; the free-text description is the fallback;
// anything unresolvable maps to the unknown icon.
func IconFor(conditionID int, description string, day bool) string {
	switch {
	case conditionID >= 200 && conditionID < 300:
		return IconStorm
	case conditionID >= 300 && conditionID < 400:
		return IconRain
	case conditionID >= 500 && conditionID < 600:
		return IconRain
	case conditionID >= 600 && conditionID < 700:
		return IconSnow
	case conditionID >= 700 && conditionID < 800:
		return IconMist
	case conditionID == 800:
		if day {
			return IconSunny
		}
		return IconClearNight
	case conditionID > 800 && conditionID < 900:
		if day {
			return IconCloudy
		}
		return IconCloudyNight
	}
	return iconForDescription(description, day)
}

func iconForDescription(description string, day bool) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "thunder"):
		return IconStorm
	case hasAny(desc, "rain", "drizzle"):
		return IconRain
	case strings.Contains(desc, "snow"):
		return IconSnow
	case hasAny(desc, "mist", "fog", "haze"):
		return IconMist
	case strings.Contains(desc, "clear"):
		if day {
			return IconSunny
		}
		return IconClearNight
	case strings.Contains(desc, "cloud"):
		if day {
			return IconCloudy
		}
		return IconCloudyNight
	}
	return IconUnknown
}

// IsDay decides the day/night icon variant. A provider icon code encoding
// day/night (trailing 'd'/'n') wins; next the sunrise/sunset window; last a
// fixed local-hour heuristic (06:00-18:00 is day).
func IsDay(iconCode string, ts, sunrise, sunset int64, offsetSeconds int) bool {
	if n := len(iconCode); n > 0 {
		switch iconCode[n-1] {
		case 'd':
			return true
		case 'n':
			return false
		}
	}
	if sunrise > 0 && sunset > 0 {
		return ts >= sunrise && ts < sunset
	}
	hour := LocalTime(ts, offsetSeconds).Hour()
	return hour >= 6 && hour < 18
}

// ResolveIconPath falls back once to the placeholder when the resolved icon
// asset does not exist. exists is injected so callers decide what "exists"
// means (filesystem, bundled assets, tests).
func ResolveIconPath(icon string, exists func(string) bool) string {
	if exists == nil || exists(icon) {
		return icon
	}
	return IconPlaceholder
}

func hasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
