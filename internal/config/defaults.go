package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Dimension:    4,
		SpawnValue:   2,
		WinningValue: 2048,
		SpawnPolicy:  "always",
	}
}
