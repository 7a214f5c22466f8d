package config

import "testing"

func TestLangIgnoresPosixLocale(t *testing.T) {
	// A host locale must not leak into the upstream lang parameter.
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("WEATHER_LANG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lang != "en" {
		t.Fatalf("expected default lang en, got %q", cfg.Lang)
	}
}

func TestLangFromOwnKey(t *testing.T) {
	t.Setenv("LANG", "C.UTF-8")
	t.Setenv("WEATHER_LANG", "fr")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lang != "fr" {
		t.Fatalf("expected lang fr, got %q", cfg.Lang)
	}
}

func TestDurationKeysAcceptBareSeconds(t *testing.T) {
	t.Setenv("FORECAST_CACHE_TTL", "90")
	t.Setenv("REFRESH_INTERVAL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ForecastCacheTTL.Seconds() != 90 {
		t.Errorf("expected 90s TTL, got %v", cfg.ForecastCacheTTL)
	}
	if cfg.RefreshInterval.Minutes() != 5 {
		t.Errorf("expected 5m refresh, got %v", cfg.RefreshInterval)
	}
}
