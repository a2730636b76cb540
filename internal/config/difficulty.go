package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// ApplyPreset modifies the speed curve based on a difficulty preset.
// Normal leaves the configured curve untouched.
func ApplyPreset(cfg *FishConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.PerPoint = cfg.Speed.PerPoint * 2 / 3
		cfg.Speed.Max = cfg.Speed.Max * 0.7
	case DifficultyHard:
		cfg.Speed.Base = cfg.Speed.Base * 2
		cfg.Speed.PerPoint = cfg.Speed.PerPoint * 4 / 3
		cfg.Speed.Max = cfg.Speed.Max * 1.3
	case DifficultyFixed:
		cfg.Speed.PerPoint = 0
	}
	if cfg.Speed.Max < cfg.Speed.Base {
		cfg.Speed.Max = cfg.Speed.Base
	}
}
