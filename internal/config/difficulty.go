package config

import "fmt"

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset scales lives and speeds for a difficulty preset.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	var speed, interval float64
	var lives int
	switch preset {
	case DifficultyEasy:
		speed, interval, lives = 0.8, 1.25, 2
	case DifficultyHard:
		speed, interval, lives = 1.25, 0.8, -1
	default:
		return
	}

	cfg.Snake.BaseInterval *= interval

	cfg.Breakout.Ball.Speed *= speed
	cfg.Breakout.Gameplay.Lives = max(1, cfg.Breakout.Gameplay.Lives+lives)

	cfg.Tetris.BaseInterval *= interval

	cfg.Invaders.Fleet.StepInterval *= interval
	cfg.Invaders.Fleet.BulletSpeed *= speed
	cfg.Invaders.Player.Lives = max(1, cfg.Invaders.Player.Lives+lives)
}
