// Package config loads editor configuration from a TOML file and applies
// defaults. All tunable thresholds live here so a venue operator can adjust
// them without rebuilding: the boundary margin and warning band, the overlap
// tolerance, the intentional-drag threshold, and autosave behavior.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/boundary"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/engine"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/overlap"
)

// Config is the full editor configuration.
type Config struct {
	Boundary boundary.Constraints `toml:"boundary"`
	Overlap  Overlap              `toml:"overlap"`
	Drag     Drag                 `toml:"drag"`
	Autosave Autosave             `toml:"autosave"`
}

// Overlap tunes the overlap validator.
type Overlap struct {
	// WarnPercent is the tolerated overlap percentage. Above it an overlap
	// blocks commit; at or below it only warns.
	WarnPercent float64 `toml:"warn_percent"`
}

// Drag tunes the drag state machine.
type Drag struct {
	// MinDistanceMm is the minimum pointer travel for a drag to commit.
	MinDistanceMm float64 `toml:"min_distance_mm"`
}

// Autosave controls the file-backed snapshot store.
type Autosave struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`

	// Keep is how many snapshots to retain before pruning the oldest.
	Keep int `toml:"keep"`
}

// Interval returns the autosave interval as a duration.
func (a Autosave) Interval() time.Duration {
	return time.Duration(a.IntervalSeconds) * time.Second
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Boundary: boundary.DefaultConstraints(),
		Overlap:  Overlap{WarnPercent: overlap.DefaultWarnPercent},
		Drag:     Drag{MinDistanceMm: engine.MinIntentionalDragMm},
		Autosave: Autosave{Enabled: true, IntervalSeconds: 30, Keep: 10},
	}
}

// Load reads a TOML config file and merges it over the defaults. A missing
// file is not an error; it just yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %q", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot operate with.
func (c Config) Validate() error {
	if c.Boundary.MarginMm < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "boundary margin must not be negative, got %g", c.Boundary.MarginMm)
	}
	if c.Boundary.WarnDistanceMm < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "boundary warn distance must not be negative, got %g", c.Boundary.WarnDistanceMm)
	}
	if c.Overlap.WarnPercent < 0 || c.Overlap.WarnPercent > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "overlap warn percent must be in [0, 100], got %g", c.Overlap.WarnPercent)
	}
	if c.Drag.MinDistanceMm < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "drag min distance must not be negative, got %g", c.Drag.MinDistanceMm)
	}
	if c.Autosave.IntervalSeconds < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "autosave interval must not be negative, got %d", c.Autosave.IntervalSeconds)
	}
	if c.Autosave.Keep < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "autosave keep must not be negative, got %d", c.Autosave.Keep)
	}
	return nil
}
