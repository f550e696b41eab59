package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"checkers/meta"

	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v3"
)

// Config holds the settings of one session. Keys missing from a file keep
// their defaults; keys present override them, zero values included.
type Config struct {
	Simulations   int           `yaml:"simulations"`
	MaxMoves      int           `yaml:"max_moves"` // playout cap in half-moves
	YieldEvery    int           `yaml:"yield_every"`
	YieldPause    time.Duration `yaml:"yield_pause"`
	Seed          uint64        `yaml:"seed"` // 0 seeds from the clock
	ForcedCapture bool          `yaml:"forced_capture"`
	LogLevel      string        `yaml:"log_level"`
	Color         bool          `yaml:"color"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	ResultsDir    string        `yaml:"results_dir"`
}

func Default() *Config {
	return &Config{
		Simulations:   meta.SIMULATIONS,
		MaxMoves:      meta.MAX_MOVES,
		YieldEvery:    meta.YIELD_EVERY,
		YieldPause:    meta.YIELD_PAUSE,
		LogLevel:      "info",
		Color:         true,
		FrameInterval: 100 * time.Millisecond,
		ResultsDir:    "results",
	}
}

// Load reads path over the defaults, then applies CHECKERS_* environment
// overrides. An empty path only applies the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		err = yaml.Unmarshal(raw, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	err := cfg.applyEnv()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	var errs []error
	envInt("SIMULATIONS", &c.Simulations, &errs)
	envInt("MAX_MOVES", &c.MaxMoves, &errs)
	envInt("YIELD_EVERY", &c.YieldEvery, &errs)
	envDuration("YIELD_PAUSE", &c.YieldPause, &errs)
	if v := env("SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CHECKERS_SEED: %w", err))
		} else {
			c.Seed = n
		}
	}
	envBool("FORCED_CAPTURE", &c.ForcedCapture, &errs)
	if v := env("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	envBool("COLOR", &c.Color, &errs)
	envDuration("FRAME_INTERVAL", &c.FrameInterval, &errs)
	if v := env("RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}
	return errors.Join(errs...)
}

func envInt(key string, dst *int, errs *[]error) {
	v := env(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("CHECKERS_%s: %w", key, err))
		return
	}
	*dst = n
}

func envBool(key string, dst *bool, errs *[]error) {
	v := env(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("CHECKERS_%s: %w", key, err))
		return
	}
	*dst = b
}

func envDuration(key string, dst *time.Duration, errs *[]error) {
	v := env(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("CHECKERS_%s: %w", key, err))
		return
	}
	*dst = d
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv("CHECKERS_" + key))
}

func (c *Config) Validate() error {
	var errs []error
	if c.Simulations <= 0 {
		errs = append(errs, fmt.Errorf("simulations must be positive, got %d", c.Simulations))
	}
	if c.MaxMoves <= 0 {
		errs = append(errs, fmt.Errorf("max_moves must be positive, got %d", c.MaxMoves))
	}
	if c.YieldEvery < 0 {
		errs = append(errs, fmt.Errorf("yield_every must not be negative, got %d", c.YieldEvery))
	}
	if c.YieldPause < 0 {
		errs = append(errs, fmt.Errorf("yield_pause must not be negative, got %s", c.YieldPause))
	}
	if c.FrameInterval < 0 {
		errs = append(errs, fmt.Errorf("frame_interval must not be negative, got %s", c.FrameInterval))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel for zerolog.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
