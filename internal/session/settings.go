package session

import (
	"errors"
	"fmt"
)

// SpawnPolicy decides whether a move that changed nothing still spawns a tile.
type SpawnPolicy string

const (
	// SpawnAlways spawns after every move attempt, even a no-op one.
	SpawnAlways SpawnPolicy = "always"
	// SpawnOnChange spawns only when the move changed the grid.
	SpawnOnChange SpawnPolicy = "on-change"
)

// ParseSpawnPolicy validates a policy name. Empty means SpawnAlways.
func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch SpawnPolicy(s) {
	case "", SpawnAlways:
		return SpawnAlways, nil
	case SpawnOnChange:
		return SpawnOnChange, nil
	}
	return "", fmt.Errorf("session: unknown spawn policy %q", s)
}

// Settings are the constants a session is created with.
type Settings struct {
	Dimension    int
	SpawnValue   int
	WinningValue int
	SpawnPolicy  SpawnPolicy
}

// DefaultSettings returns the classic 4x4 game to 2048.
func DefaultSettings() Settings {
	return Settings{
		Dimension:    4,
		SpawnValue:   2,
		WinningValue: 2048,
		SpawnPolicy:  SpawnAlways,
	}
}

// Validate checks that the settings describe a playable game.
func (s Settings) Validate() error {
	var errs []error
	if s.Dimension < 2 {
		errs = append(errs, fmt.Errorf("dimension must be at least 2, got %d", s.Dimension))
	}
	if !isPowerOfTwo(s.SpawnValue) || s.SpawnValue < 2 {
		errs = append(errs, fmt.Errorf("spawn value must be a power of two >= 2, got %d", s.SpawnValue))
	}
	if !isPowerOfTwo(s.WinningValue) || s.WinningValue <= s.SpawnValue {
		errs = append(errs, fmt.Errorf("winning value must be a power of two above the spawn value, got %d", s.WinningValue))
	}
	if _, err := ParseSpawnPolicy(string(s.SpawnPolicy)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
