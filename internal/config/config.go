package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-dashboard/internal/logger"
)

type AppConfig struct {
	Port string

	// OpenWeatherKey is the server-held upstream credential. It is never
	// exposed to callers; an empty value makes the relay answer 500.
	OpenWeatherKey string

	// UpstreamBaseURL is the OpenWeather API root the relay resolves
	// endpoints against.
	UpstreamBaseURL string

	// ProxyBaseURL is where the fetch client sends its requests. Defaults to
	// this process's own relay mount.
	ProxyBaseURL string

	// GeocoderAPIKey enables the Google reverse-geocode fallback when set.
	GeocoderAPIKey string

	Units string
	Lang  string

	ForecastCacheTTL time.Duration
	RefreshInterval  time.Duration // 0 disables the background refresh job

	StaticDir string
	PrefsFile string

	// Background image handling for the dark-mode toggle.
	BackgroundPath     string
	DarkBackgroundPath string
	DarkBackgroundURL  string // optional alternate asset, probed at startup
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Infof("no .env file found: %v", err)
	}

	cfg := &AppConfig{
		Port:               getenvDefault("PORT", "8080"),
		OpenWeatherKey:     os.Getenv("OPENWEATHER_KEY"),
		UpstreamBaseURL:    getenvDefault("UPSTREAM_BASE_URL", "https://api.openweathermap.org"),
		GeocoderAPIKey:     os.Getenv("GEOCODER_API_KEY"),
		Units:              getenvDefault("UNITS", "metric"),
		Lang:               getenvDefault("WEATHER_LANG", "en"),
		StaticDir:          getenvDefault("STATIC_DIR", "./web"),
		PrefsFile:          getenvDefault("PREFS_FILE", "./data/prefs.json"),
		BackgroundPath:     getenvDefault("BACKGROUND_PATH", "images/background.jpg"),
		DarkBackgroundPath: getenvDefault("DARK_BACKGROUND_PATH", "images/background-dark.jpg"),
		DarkBackgroundURL:  os.Getenv("DARK_BACKGROUND_URL"),
	}

	cfg.ProxyBaseURL = getenvDefault("PROXY_BASE_URL", "http://127.0.0.1:"+cfg.Port+"/api/proxy")

	ttl, err := getenvDuration("FORECAST_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.ForecastCacheTTL = ttl

	refresh, err := getenvDuration("REFRESH_INTERVAL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.RefreshInterval = refresh

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvDuration accepts both duration strings ("5m") and bare seconds.
func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid %s: %q", key, v)
}
