package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/arcade.yaml.
func Default() Config {
	return Config{
		Snake: SnakeConfig{
			Width:         20,
			Height:        25,
			InitialLength: 3,
			BaseInterval:  0.15,
			IntervalStep:  0.005,
			MinInterval:   0.06,
			FoodValue:     10,
			FoodAttempts:  100,
		},
		Breakout: BreakoutConfig{
			Field:  FieldConfig{Width: 80, Height: 60},
			Paddle: BreakoutPaddle{Width: 12, Height: 1.5, Y: 56, Speed: 60},
			Ball:   BreakoutBall{Radius: 0.75, Speed: 40, SpeedIncrement: 5},
			Bricks: BreakoutBricks{
				Cols:   8,
				Rows:   6,
				Margin: 2,
				Gap:    1,
				Height: 2.5,
				Top:    8,
			},
			Gameplay: BreakoutGameplay{Lives: 3, RowPoints: 10, LevelBonus: 500},
		},
		Tetris: TetrisConfig{
			Cols:           10,
			Rows:           20,
			BaseInterval:   1.0,
			IntervalStep:   0.1,
			MinInterval:    0.1,
			SoftDropFactor: 10,
			HardDropPoints: 2,
			LinesPerLevel:  10,
		},
		Invaders: InvadersConfig{
			Field: FieldConfig{Width: 80, Height: 60},
			Fleet: InvadersFleet{
				Rows:         5,
				Cols:         11,
				AlienWidth:   4,
				AlienHeight:  3,
				SpacingX:     6,
				SpacingY:     5,
				StartX:       4,
				StartY:       6,
				StepInterval: 0.5,
				StepSize:     2,
				DropDistance: 3,
				FireChance:   0.02,
				BulletSpeed:  30,
			},
			Player: InvadersPlayer{
				Y:            54,
				Width:        5,
				Height:       2,
				Speed:        40,
				BulletSpeed:  60,
				FireCooldown: 0.4,
				Lives:        3,
			},
			Shields: InvadersShields{
				Count:     4,
				BlockCols: 4,
				BlockRows: 3,
				BlockSize: 2,
				Health:    3,
				Y:         46,
			},
			Waves: InvadersWaves{
				StepDecay:  0.85,
				StepGrowth: 0.2,
				FireGrowth: 0.25,
				MinStep:    0.1,
				Bonus:      1000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArcadeYAML
}
