package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"snake-world/ai"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the training host needs.
type Config struct {
	Width     int    `yaml:"width"`
	Episodes  int    `yaml:"episodes"`
	MaxSteps  int    `yaml:"max_steps"` // Per game, stops snakes circling forever
	Seed      uint64 `yaml:"seed"`      // 0 picks a seed from the clock
	DataDir   string `yaml:"data_dir"`
	LogLevel  string `yaml:"log_level"`
	LogEvery  int    `yaml:"log_every"`  // episodes
	SaveEvery int    `yaml:"save_every"` // episodes

	Agent ai.Params `yaml:"agent"`
}

// DefaultConfig returns Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Width:     8,
		Episodes:  1000,
		MaxSteps:  2000,
		DataDir:   "data",
		LogLevel:  "info",
		LogEvery:  100,
		SaveEvery: 500,
		Agent:     ai.DefaultParams(),
	}
}

// LoadConfig loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the trainer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < 2:
		return fmt.Errorf("%w: width %d, need at least 2", ErrInvalidConfig, c.Width)
	case c.Episodes <= 0:
		return fmt.Errorf("%w: episodes %d", ErrInvalidConfig, c.Episodes)
	case c.MaxSteps <= 0:
		return fmt.Errorf("%w: max_steps %d", ErrInvalidConfig, c.MaxSteps)
	case c.LogEvery <= 0 || c.SaveEvery <= 0:
		return fmt.Errorf("%w: log_every and save_every must be positive", ErrInvalidConfig)
	case c.DataDir == "":
		return fmt.Errorf("%w: empty data_dir", ErrInvalidConfig)
	case c.Agent.LearningRate <= 0 || c.Agent.LearningRate > 1:
		return fmt.Errorf("%w: learning_rate %v", ErrInvalidConfig, c.Agent.LearningRate)
	case c.Agent.Discount < 0 || c.Agent.Discount > 1:
		return fmt.Errorf("%w: discount %v", ErrInvalidConfig, c.Agent.Discount)
	case c.Agent.Epsilon < 0 || c.Agent.Epsilon > 1:
		return fmt.Errorf("%w: epsilon %v", ErrInvalidConfig, c.Agent.Epsilon)
	case c.Agent.EpsilonDecay <= 0 || c.Agent.EpsilonDecay > 1:
		return fmt.Errorf("%w: epsilon_decay %v", ErrInvalidConfig, c.Agent.EpsilonDecay)
	case c.Agent.MinEpsilon < 0 || c.Agent.MinEpsilon > c.Agent.Epsilon:
		return fmt.Errorf("%w: min_epsilon %v", ErrInvalidConfig, c.Agent.MinEpsilon)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c Config) QTablePath() string {
	return filepath.Join(c.DataDir, "qtable.json")
}

func (c Config) StatsPath() string {
	return filepath.Join(c.DataDir, "stats.json")
}

// SessionDir is where the files of one training run go.
func (c Config) SessionDir(sessionID string) string {
	return filepath.Join(c.DataDir, "sessions", sessionID)
}
