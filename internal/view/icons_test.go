package view

import "testing"

func TestIsDaySunWindow(t *testing.T) {
	// Sunrise 06:00, sunset 18:00, all in local epoch seconds at offset 0.
	const (
		sunrise = int64(21600)
		sunset  = int64(64800)
	)

	if !IsDay("", 25200, sunrise, sunset, 0) { // 07:00
		t.Error("07:00 with a 06:00-18:00 sun window should be day")
	}
	if IsDay("", 72000, sunrise, sunset, 0) { // 20:00
		t.Error("20:00 with a 06:00-18:00 sun window should be night")
	}
	if IsDay("", sunset, sunrise, sunset, 0) {
		t.Error("the sunset instant itself is night")
	}
}

func TestIsDayTrustsProviderIconCode(t *testing.T) {
	// The icon code wins even when the sun window disagrees.
	if IsDay("01n", 25200, 21600, 64800, 0) {
		t.Error("a trailing 'n' must force night")
	}
	if !IsDay("01d", 72000, 21600, 64800, 0) {
		t.Error("a trailing 'd' must force day")
	}
}

func TestIsDayHourHeuristic(t *testing.T) {
	if !IsDay("", 25200, 0, 0, 0) { // 07:00 local
		t.Error("07:00 local should be day without sun data")
	}
	if IsDay("", 72000, 0, 0, 0) { // 20:00 local
		t.Error("20:00 local should be night without sun data")
	}
	// The heuristic follows the location's offset, not UTC.
	if IsDay("", 25200, 0, 0, -7*3600) { // 00:00 local
		t.Error("midnight local should be night")
	}
}

func TestIconForConditionID(t *testing.T) {
	cases := []struct {
		id   int
		day  bool
		want string
	}{
		{211, true, IconStorm},
		{301, true, IconRain},
		{502, false, IconRain},
		{601, true, IconSnow},
		{741, true, IconMist},
		{800, true, IconSunny},
		{800, false, IconClearNight},
		{803, true, IconCloudy},
		{803, false, IconCloudyNight},
	}
	for _, tc := range cases {
		if got := IconFor(tc.id, "", tc.day); got != tc.want {
			t.Errorf("IconFor(%d, day=%v) = %q, want %q", tc.id, tc.day, got, tc.want)
		}
	}
}

func TestIconForDescriptionFallback(t *testing.T) {
	if got := IconFor(0, "Light Drizzle", true); got != IconRain {
		t.Errorf("drizzle fallback = %q, want %q", got, IconRain)
	}
	if got := IconFor(0, "scattered clouds", false); got != IconCloudyNight {
		t.Errorf("clouds fallback = %q, want %q", got, IconCloudyNight)
	}
	if got := IconFor(0, "volcanic plume", true); got != IconUnknown {
		t.Errorf("unresolvable condition = %q, want %q", got, IconUnknown)
	}
}

func TestResolveIconPathFallsBackOnce(t *testing.T) {
	missing := func(string) bool { return false }
	if got := ResolveIconPath(IconSunny, missing); got != IconPlaceholder {
		t.Errorf("missing asset should resolve to placeholder, got %q", got)
	}

	present := func(string) bool { return true }
	if got := ResolveIconPath(IconSunny, present); got != IconSunny {
		t.Errorf("present asset should resolve to itself, got %q", got)
	}
}
