// Package store persists the two per-user preferences the dashboard keeps:
// the last successfully searched city and the dark-mode flag.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/i474232898/weather-dashboard/internal/logger"
)

// ErrNotFound is returned when a preference has never been set.
var ErrNotFound = errors.New("preference not set")

type prefsFile struct {
	LastCity string `json:"lastCity,omitempty"`
	DarkMode string `json:"darkMode,omitempty"` // "1" or "0", matching the stored format
}

// Prefs is a concurrency-safe preference store with write-through JSON
// persistence. A missing or unreadable file starts empty rather than failing.
type Prefs struct {
	mu   sync.RWMutex
	path string
	data prefsFile
}

// NewPrefs loads (or initializes) the preference file at path.
func NewPrefs(path string) *Prefs {
	p := &Prefs{path: path}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, &p.data); err != nil {
			logger.Warnf("prefs file %s is corrupt, starting empty: %v", path, err)
			p.data = prefsFile{}
		}
	}
	return p
}

// LastCity returns the last successfully searched city.
func (p *Prefs) LastCity() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.data.LastCity == "" {
		return "", ErrNotFound
	}
	return p.data.LastCity, nil
}

// SetLastCity overwrites the stored city. Called on every successful
// name-based search.
func (p *Prefs) SetLastCity(city string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.data.LastCity = city
	p.flushLocked()
}

// ClearLastCity removes the stored city.
func (p *Prefs) ClearLastCity() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.data.LastCity = ""
	p.flushLocked()
}

// DarkMode reports whether dark mode is enabled. Defaults to false.
func (p *Prefs) DarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.data.DarkMode == "1"
}

// SetDarkMode persists the flag immediately. Flipping it never triggers a
// data re-fetch.
func (p *Prefs) SetDarkMode(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if enabled {
		p.data.DarkMode = "1"
	} else {
		p.data.DarkMode = "0"
	}
	p.flushLocked()
}

// flushLocked writes the file best-effort; persistence failures degrade to
// in-memory-only preferences.
func (p *Prefs) flushLocked() {
	raw, err := json.MarshalIndent(p.data, "", "  ")
	if err != nil {
		logger.Errorf("failed to encode prefs: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		logger.Warnf("failed to create prefs dir: %v", err)
		return
	}
	if err := os.WriteFile(p.path, raw, 0o644); err != nil {
		logger.Warnf("failed to write prefs file: %v", err)
	}
}
