// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// Config is the complete game tuning, one section per simulation.
type Config struct {
	Snake    SnakeConfig    `yaml:"snake"`
	Breakout BreakoutConfig `yaml:"breakout"`
	Tetris   TetrisConfig   `yaml:"tetris"`
	Invaders InvadersConfig `yaml:"invaders"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	InitialLength int     `yaml:"initial_length"`
	BaseInterval  float64 `yaml:"base_interval"` // seconds per step
	IntervalStep  float64 `yaml:"interval_step"` // subtracted per food eaten
	MinInterval   float64 `yaml:"min_interval"`
	FoodValue     int     `yaml:"food_value"`
	FoodAttempts  int     `yaml:"food_attempts"` // random placements tried before scanning
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Field    FieldConfig      `yaml:"field"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// FieldConfig is the size of a continuous playfield in simulation units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines paddle geometry and speed.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"` // units per second
}

// BreakoutBall defines ball size and speed.
type BreakoutBall struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // added per cleared level
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Cols   int     `yaml:"cols"`
	Rows   int     `yaml:"rows"`
	Margin float64 `yaml:"margin"`
	Gap    float64 `yaml:"gap"`
	Height float64 `yaml:"height"`
	Top    float64 `yaml:"top"`
}

// BreakoutGameplay defines lives and scoring.
type BreakoutGameplay struct {
	Lives      int `yaml:"lives"`
	RowPoints  int `yaml:"row_points"` // bottom row value; each row above adds this again
	LevelBonus int `yaml:"level_bonus"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Cols           int     `yaml:"cols"`
	Rows           int     `yaml:"rows"`
	BaseInterval   float64 `yaml:"base_interval"`
	IntervalStep   float64 `yaml:"interval_step"` // subtracted per level
	MinInterval    float64 `yaml:"min_interval"`
	SoftDropFactor float64 `yaml:"soft_drop_factor"`
	HardDropPoints int     `yaml:"hard_drop_points"`
	LinesPerLevel  int     `yaml:"lines_per_level"`
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Field   FieldConfig     `yaml:"field"`
	Fleet   InvadersFleet   `yaml:"fleet"`
	Player  InvadersPlayer  `yaml:"player"`
	Shields InvadersShields `yaml:"shields"`
	Waves   InvadersWaves   `yaml:"waves"`
}

// InvadersFleet defines the alien formation.
type InvadersFleet struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	AlienWidth   float64 `yaml:"alien_width"`
	AlienHeight  float64 `yaml:"alien_height"`
	SpacingX     float64 `yaml:"spacing_x"`
	SpacingY     float64 `yaml:"spacing_y"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	StepInterval float64 `yaml:"step_interval"` // seconds between fleet steps in wave 1
	StepSize     float64 `yaml:"step_size"`
	DropDistance float64 `yaml:"drop_distance"`
	FireChance   float64 `yaml:"fire_chance"` // probability per update in wave 1
	BulletSpeed  float64 `yaml:"bullet_speed"`
}

// InvadersPlayer defines the cannon.
type InvadersPlayer struct {
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	FireCooldown float64 `yaml:"fire_cooldown"`
	Lives        int     `yaml:"lives"`
}

// InvadersShields defines the bunkers.
type InvadersShields struct {
	Count     int     `yaml:"count"`
	BlockCols int     `yaml:"block_cols"`
	BlockRows int     `yaml:"block_rows"`
	BlockSize float64 `yaml:"block_size"`
	Health    int     `yaml:"health"`
	Y         float64 `yaml:"y"`
}

// InvadersWaves defines per-wave progression.
type InvadersWaves struct {
	StepDecay  float64 `yaml:"step_decay"`  // interval multiplier per wave
	StepGrowth float64 `yaml:"step_growth"` // step size growth per wave
	FireGrowth float64 `yaml:"fire_growth"` // fire chance growth per wave
	MinStep    float64 `yaml:"min_step"`    // interval floor
	Bonus      int     `yaml:"bonus"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
