package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Open the instructions screen of the given game. Enter starts a run;
Esc returns to the game menu.

Controls:
  Arrows/WASD - Move
  Space       - Launch, fire, hard drop
  P           - Pause
  Esc/B       - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower pace, two extra lives
  normal - Default tuning
  hard   - Faster pace, one life fewer

Examples:
  arcade play snake
  arcade play breakout --difficulty easy
  arcade play tetris --seed 42
  arcade play invaders --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	rt := runtimeConfig()
	ctrl := session.New(rt, a.sessionOptions(true)...)
	ctrl.Select(gameID)

	return tui.Run(ctrl, rt)
}
