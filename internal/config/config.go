// Package config provides YAML-based game configuration loading with
// environment overrides for the 2048 game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/session"
)

// Config contains all configuration for a 2048 game.
type Config struct {
	Dimension    int    `yaml:"dimension"`
	SpawnValue   int    `yaml:"spawn_value"`
	WinningValue int    `yaml:"winning_value"`
	SpawnPolicy  string `yaml:"spawn_policy"`
	Seed         int64  `yaml:"seed"` // 0 = time-based
}

// Settings converts the config to session settings.
func (c Config) Settings() (session.Settings, error) {
	policy, err := session.ParseSpawnPolicy(c.SpawnPolicy)
	if err != nil {
		return session.Settings{}, fmt.Errorf("config: %w", err)
	}
	return session.Settings{
		Dimension:    c.Dimension,
		SpawnValue:   c.SpawnValue,
		WinningValue: c.WinningValue,
		SpawnPolicy:  policy,
	}, nil
}

// Validate reports every problem with the config.
func (c Config) Validate() error {
	settings, err := c.Settings()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
