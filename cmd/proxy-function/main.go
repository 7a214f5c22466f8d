// The standalone deployment of the relay: one handler, no dashboard, meant
// for function-style hosting where the static site lives elsewhere.
package main

import (
	"net/http"
	"time"

	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/logger"
	"github.com/i474232898/weather-dashboard/internal/proxy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	relay := proxy.New(cfg.OpenWeatherKey, cfg.UpstreamBaseURL)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/proxy", relay.HTTPHandler())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	logger.Infof("proxy function listening on :%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
