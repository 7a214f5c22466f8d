package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/logger"
	"github.com/i474232898/weather-dashboard/internal/proxy"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	prefs := store.NewPrefs(cfg.PrefsFile)

	relay := proxy.New(cfg.OpenWeatherKey, cfg.UpstreamBaseURL)
	client := weather.NewClient(cfg.ProxyBaseURL, cfg.Units, cfg.Lang, cfg.ForecastCacheTTL)
	fallback := weather.NewFallbackGeocoder(cfg.GeocoderAPIKey)
	service := weather.NewService(client, prefs, fallback)

	backgrounds := httpapi.Backgrounds{
		Normal: cfg.BackgroundPath,
		Dark:   resolveDarkBackground(cfg),
	}

	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	httpapi.RegisterRoutes(app, httpapi.Deps{
		Service:     service,
		Prefs:       prefs,
		Proxy:       relay,
		Backgrounds: backgrounds,
	})

	app.Static("/", cfg.StaticDir)

	sched := scheduler.New(service, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		logger.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Errorf("server stopped: %v", err)
		}
	}()

	// Prime the dashboard with the stored city once the listener is up.
	// Without one we wait for the front end, which owns geolocation, to call
	// in with coordinates.
	go restoreLastCity(service, prefs)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorf("error during shutdown: %v", err)
	}
}

// restoreLastCity re-runs the persisted search best-effort; any failure just
// leaves the caches cold.
func restoreLastCity(service *weather.Service, prefs *store.Prefs) {
	city, err := prefs.LastCity()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Warnf("failed to read last city: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := service.SearchCity(ctx, city); err != nil {
		logger.Warnf("startup restore of %q failed: %v", city, err)
		return
	}
	logger.Infof("restored last city %q", city)
}

// resolveDarkBackground probes the configured alternate dark-background
// asset; when it is absent or unreachable the packaged default is used.
func resolveDarkBackground(cfg *config.AppConfig) string {
	if cfg.DarkBackgroundURL == "" {
		return cfg.DarkBackgroundPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, cfg.DarkBackgroundURL, nil)
	if err != nil {
		return cfg.DarkBackgroundPath
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Infof("dark background probe failed, using default: %v", err)
		return cfg.DarkBackgroundPath
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return cfg.DarkBackgroundPath
	}
	return cfg.DarkBackgroundURL
}
