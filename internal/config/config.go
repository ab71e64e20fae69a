// Package config holds the demo application's configuration: marquee
// options, UI settings and logging, loaded from a yaml file with defaults
// for anything unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"marquee/internal/marquee"
)

// Config is the full application configuration.
type Config struct {
	Marquee MarqueeConfig `yaml:"marquee"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// MarqueeConfig mirrors the engine's options.
type MarqueeConfig struct {
	Margin   float64 `yaml:"margin"`
	Hover    bool    `yaml:"hover"`
	AutoPlay bool    `yaml:"auto_play"`
	Delta    float64 `yaml:"delta"`
	Easing   float64 `yaml:"easing"`
	Friction float64 `yaml:"friction"`
	// Direction true scrolls forward (index order grows left to right).
	Direction bool `yaml:"direction"`
}

// UIConfig configures the terminal front end.
type UIConfig struct {
	// FPS is the frame cadence of the animation tick.
	FPS int `yaml:"fps"`
	// Chip is the repeated element's content.
	Chip string `yaml:"chip"`
	// Markers are container attributes the engine resolver reads
	// ("direction", "autoplay").
	Markers []string `yaml:"markers,omitempty"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File receives engine logs; empty disables file logging.
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns the defaults the demo ships with.
func DefaultConfig() *Config {
	return &Config{
		Marquee: MarqueeConfig{
			Margin:    6,
			AutoPlay:  true,
			Delta:     1,
			Easing:    marquee.DefaultEasing,
			Friction:  marquee.DefaultFriction,
			Direction: true,
		},
		UI: UIConfig{
			FPS:  60,
			Chip: " ✦ MARQUEE ",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Options maps the file configuration onto engine options.
func (c *Config) Options() marquee.Options {
	return marquee.Options{
		Margin:    c.Marquee.Margin,
		Hover:     c.Marquee.Hover,
		AutoPlay:  c.Marquee.AutoPlay,
		Delta:     c.Marquee.Delta,
		Easing:    c.Marquee.Easing,
		Friction:  c.Marquee.Friction,
		Direction: c.Marquee.Direction,
	}
}

// Load reads a yaml config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.UI.FPS <= 0 {
		cfg.UI.FPS = 60
	}
	return cfg, nil
}

// Save writes the configuration as yaml, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
