package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/i474232898/weather-dashboard/internal/logger"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Scheduler periodically re-runs the last searched city so the forecast
// cache stays warm between user visits.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	interval  time.Duration
}

// New creates a Scheduler. An interval of 0 disables it.
func New(service *weather.Service, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		logger.Infof("scheduler: refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		runID := uuid.NewString()

		city, err := s.service.LastCity()
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logger.Warnf("scheduler: failed to read last city: %v", err)
			}
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.service.SearchCity(ctx, city); err != nil {
			if errors.Is(err, weather.ErrSuperseded) {
				// A user search took over the primary slot; that is the
				// fresher data anyway.
				return
			}
			logger.Warnf("scheduler: refresh %s failed for %q: %v", runID, city, err)
			return
		}
		logger.Infow("scheduler: refreshed last city", "run_id", runID, "city", city)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
