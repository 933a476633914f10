package core

// Sound is a symbolic audio event name. The audio consumer decides how
// (and whether) to voice it.
type Sound string

const (
	SoundSelect    Sound = "select"
	SoundConfirm   Sound = "confirm"
	SoundStart     Sound = "start"
	SoundGameOver  Sound = "gameover"
	SoundHighScore Sound = "highscore"
	SoundPause     Sound = "pause"
	SoundEat       Sound = "eat"
	SoundHit       Sound = "hit"
	SoundShoot     Sound = "shoot"
	SoundBounce    Sound = "bounce"
	SoundLine      Sound = "line"
	SoundDrop      Sound = "drop"
	SoundMove      Sound = "move"
)

// AllSounds lists every sound event in a stable order.
func AllSounds() []Sound {
	return []Sound{
		SoundSelect, SoundConfirm, SoundStart, SoundGameOver, SoundHighScore,
		SoundPause, SoundEat, SoundHit, SoundShoot, SoundBounce,
		SoundLine, SoundDrop, SoundMove,
	}
}
