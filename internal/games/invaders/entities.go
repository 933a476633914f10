package invaders

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Bullet dimensions in field units.
const (
	BulletWidth  = 0.5
	BulletHeight = 1.5
)

// AlienType is the invader species; it sets the kill value.
type AlienType int

const (
	AlienOctopus AlienType = iota
	AlienCrab
	AlienSquid
)

// Points returns the score for destroying this type.
func (t AlienType) Points() int {
	switch t {
	case AlienSquid:
		return 30
	case AlienCrab:
		return 20
	default:
		return 10
	}
}

func (t AlienType) String() string {
	switch t {
	case AlienSquid:
		return "squid"
	case AlienCrab:
		return "crab"
	default:
		return "octopus"
	}
}

// typeForRow gives the top row squids, the upper half crabs and the rest
// octopuses.
func typeForRow(row, rows int) AlienType {
	switch {
	case row == 0:
		return AlienSquid
	case row <= (rows-1)/2:
		return AlienCrab
	default:
		return AlienOctopus
	}
}

// Alien is one member of the fleet. X, Y is the top-left corner.
type Alien struct {
	X, Y   float64
	Type   AlienType
	Alive  bool
	Points int
}

// Block is one cell of a shield. X, Y is the top-left corner.
type Block struct {
	X, Y   float64
	Health int
}

// Bullet is a projectile centered at X with its top at Y.
type Bullet struct {
	X, Y float64
}

// Bounds returns the bullet's hit box.
func (b Bullet) Bounds() core.RectF {
	return core.NewRectF(b.X-BulletWidth/2, b.Y, BulletWidth, BulletHeight)
}

// NewFleet lays out a full formation of living aliens.
func NewFleet(cfg config.InvadersFleet) []Alien {
	fleet := make([]Alien, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		t := typeForRow(row, cfg.Rows)
		for col := range cfg.Cols {
			fleet = append(fleet, Alien{
				X:      cfg.StartX + float64(col)*cfg.SpacingX,
				Y:      cfg.StartY + float64(row)*cfg.SpacingY,
				Type:   t,
				Alive:  true,
				Points: t.Points(),
			})
		}
	}
	return fleet
}

// NewShields spreads cfg.Count bunkers evenly across the field.
func NewShields(cfg config.InvadersShields, fieldWidth float64) []Block {
	width := float64(cfg.BlockCols) * cfg.BlockSize
	gap := (fieldWidth - float64(cfg.Count)*width) / float64(cfg.Count+1)

	blocks := make([]Block, 0, cfg.Count*cfg.BlockCols*cfg.BlockRows)
	for i := range cfg.Count {
		left := gap + float64(i)*(width+gap)
		for r := range cfg.BlockRows {
			for c := range cfg.BlockCols {
				blocks = append(blocks, Block{
					X:      left + float64(c)*cfg.BlockSize,
					Y:      cfg.Y + float64(r)*cfg.BlockSize,
					Health: cfg.Health,
				})
			}
		}
	}
	return blocks
}
