// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"fmt"

	injury "github.com/okian/tipoff/internal/domain/injury"
	model "github.com/okian/tipoff/internal/domain/model"
	score "github.com/okian/tipoff/internal/domain/score"
	slate "github.com/okian/tipoff/internal/domain/slate"
)

// WeightsConfig holds the relative weights of the four sub-scores.
type WeightsConfig struct {
	Star      float64 `koanf:"star"`
	Quality   float64 `koanf:"quality"`
	Pace      float64 `koanf:"pace"`
	Closeness float64 `koanf:"closeness"`
}

// WindowConfig bounds one viewing window in local time of day.
type WindowConfig struct {
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

// WindowsConfig holds both viewing windows in priority order.
type WindowsConfig struct {
	EarlyMorning WindowConfig `koanf:"early_morning"`
	Breakfast    WindowConfig `koanf:"breakfast"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir holds the persisted day snapshot.
	DataDir string `koanf:"data_dir"`

	// TopNPlayers sets how many top scorers feed a team's star factor.
	TopNPlayers int `koanf:"top_n_players"`

	// StarCombine merges the two teams' star factors: sum or max.
	StarCombine string `koanf:"star_combine"`

	// MustWatchThreshold is the presented-score cutoff for the
	// must-watch badge.
	MustWatchThreshold float64 `koanf:"must_watch_threshold"`

	// Weights are the relative sub-score weights.
	Weights WeightsConfig `koanf:"weights"`

	// InjuryDiscounts maps status names to production multipliers.
	InjuryDiscounts map[string]float64 `koanf:"injury_discounts"`

	// Windows bounds the two viewing windows.
	Windows WindowsConfig `koanf:"windows"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use
// and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:           "info",
		Addr:               ":8080",
		DataDir:            "./data",
		TopNPlayers:        3,
		StarCombine:        "sum",
		MustWatchThreshold: 80.0,
		Weights: WeightsConfig{
			Star:      0.35,
			Quality:   0.15,
			Pace:      0.15,
			Closeness: 0.35,
		},
		InjuryDiscounts: map[string]float64{
			"out":          0.0,
			"doubtful":     0.25,
			"questionable": 0.5,
			"probable":     0.9,
		},
		Windows: WindowsConfig{
			EarlyMorning: WindowConfig{Start: "05:00", End: "07:00"},
			Breakfast:    WindowConfig{Start: "07:30", End: "10:30"},
		},
	}
	return c
}

// ScoreWeights converts the configured weights to the scoring type.
func (c *Config) ScoreWeights() score.Weights {
	return score.Weights{
		Star:      c.Weights.Star,
		Quality:   c.Weights.Quality,
		Pace:      c.Weights.Pace,
		Closeness: c.Weights.Closeness,
	}
}

// CombineMode parses the configured star combine mode.
func (c *Config) CombineMode() (score.StarCombine, error) {
	mode, ok := score.ParseStarCombine(c.StarCombine)
	if !ok {
		return "", fmt.Errorf("%w: unknown star_combine %q", ErrInvalidConfig, c.StarCombine)
	}
	return mode, nil
}

// Discounts converts the configured discount table to typed statuses.
func (c *Config) Discounts() (map[model.InjuryStatus]float64, error) {
	out := make(map[model.InjuryStatus]float64, len(c.InjuryDiscounts))
	for raw, mult := range c.InjuryDiscounts {
		status, ok := model.ParseStatus(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %q in injury_discounts", injury.ErrUnknownStatusKey, raw)
		}
		out[status] = mult
	}
	return out, nil
}

// SlateWindows converts the configured window bounds to typed windows
// in priority order.
func (c *Config) SlateWindows() ([]slate.Window, error) {
	specs := []struct {
		name string
		wc   WindowConfig
	}{
		{slate.WindowEarlyMorning, c.Windows.EarlyMorning},
		{slate.WindowBreakfast, c.Windows.Breakfast},
	}

	out := make([]slate.Window, 0, len(specs))
	for _, s := range specs {
		start, err := slate.ParseTimeOfDay(s.wc.Start)
		if err != nil {
			return nil, fmt.Errorf("window %s start: %w", s.name, err)
		}
		end, err := slate.ParseTimeOfDay(s.wc.End)
		if err != nil {
			return nil, fmt.Errorf("window %s end: %w", s.name, err)
		}
		out = append(out, slate.Window{Name: s.name, Start: start, End: end})
	}
	return out, nil
}

// Validate checks every configured option the service refuses to run
// without. The engine fails at startup rather than produce misleading
// rankings.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if c.TopNPlayers < 1 {
		return fmt.Errorf("%w: top_n_players must be at least 1", ErrInvalidConfig)
	}
	if c.MustWatchThreshold < 0 || c.MustWatchThreshold > 100 {
		return fmt.Errorf("%w: must_watch_threshold must be within [0, 100]", ErrInvalidConfig)
	}
	if _, err := c.CombineMode(); err != nil {
		return err
	}
	if err := c.ScoreWeights().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	discounts, err := c.Discounts()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := injury.ValidateDiscounts(discounts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	windows, err := c.SlateWindows()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := slate.ValidateWindows(windows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
