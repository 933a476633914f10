package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "arcade.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/arcade.yaml -> ./configs/arcade.yaml -> embedded default
//
// Files are decoded on top of Default(), so a partial file only overrides
// the keys it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultArcadeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects sizes, speeds and intervals that would stall or break a
// simulation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s must be positive", field))
		}
	}

	s := c.Snake
	check(s.Width > 0, "snake.width")
	check(s.Height > 0, "snake.height")
	check(s.InitialLength > 0, "snake.initial_length")
	check(s.BaseInterval > 0, "snake.base_interval")
	check(s.MinInterval > 0, "snake.min_interval")
	check(s.FoodValue > 0, "snake.food_value")
	if s.InitialLength+2 >= s.Width {
		errs = append(errs, errors.New("snake.initial_length does not fit the board"))
	}

	b := c.Breakout
	check(b.Field.Width > 0, "breakout.field.width")
	check(b.Field.Height > 0, "breakout.field.height")
	check(b.Paddle.Width > 0, "breakout.paddle.width")
	check(b.Ball.Speed > 0, "breakout.ball.speed")
	check(b.Ball.Radius > 0, "breakout.ball.radius")
	check(b.Bricks.Cols > 0, "breakout.bricks.cols")
	check(b.Bricks.Rows > 0, "breakout.bricks.rows")
	check(b.Gameplay.Lives > 0, "breakout.gameplay.lives")

	t := c.Tetris
	check(t.Cols >= 4, "tetris.cols (at least 4)")
	check(t.Rows >= 4, "tetris.rows (at least 4)")
	check(t.BaseInterval > 0, "tetris.base_interval")
	check(t.MinInterval > 0, "tetris.min_interval")
	check(t.SoftDropFactor >= 1, "tetris.soft_drop_factor (at least 1)")
	check(t.LinesPerLevel > 0, "tetris.lines_per_level")

	v := c.Invaders
	check(v.Field.Width > 0, "invaders.field.width")
	check(v.Field.Height > 0, "invaders.field.height")
	check(v.Fleet.Rows > 0, "invaders.fleet.rows")
	check(v.Fleet.Cols > 0, "invaders.fleet.cols")
	check(v.Fleet.StepInterval > 0, "invaders.fleet.step_interval")
	check(v.Fleet.StepSize > 0, "invaders.fleet.step_size")
	check(v.Waves.MinStep > 0, "invaders.waves.min_step")
	check(v.Player.Lives > 0, "invaders.player.lives")
	check(v.Player.BulletSpeed > 0, "invaders.player.bullet_speed")

	return errors.Join(errs...)
}
