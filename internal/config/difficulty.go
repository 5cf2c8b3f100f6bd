package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets, easiest first.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty parses a preset name. An empty name is normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// SpeedScale returns the multiplier a preset applies to ball and paddle speeds.
func SpeedScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	k := SpeedScale(preset)
	cfg.Ball.Speed *= k
	cfg.Paddle.Speed *= k
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Easy also widens the paddle, hard narrows it.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	k := SpeedScale(preset)
	cfg.Ball.Speed *= k
	cfg.Paddle.Speed *= k

	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.5
	case DifficultyHard:
		cfg.Paddle.Width *= 0.75
	}
}
