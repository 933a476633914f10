// arcade is a terminal arcade with Snake, Breakout, Tetris and Space Invaders.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Serve the arcade over SSH and a status API over HTTP
//	arcade scores [game]     - Show best scores and run history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Game tuning YAML
//	--difficulty <preset> - easy, normal or hard
//	--redis <addr>        - Keep best scores in Redis instead of SQLite
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/retro-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/retro-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
	_ "github.com/vovakirdan/retro-arcade/internal/games/tetris"
)

const defaultDBPath = "~/.arcade/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagRedis      string
	flagAudio      bool

	platform config.Platform
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Arcade - Play classic games in your terminal",
	Long: `Retro Arcade is a terminal arcade with four classics:
Snake, Breakout, Tetris and Space Invaders.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH and HTTP servers
  scores   - View best scores and run history

Settings can also come from a .env file or the environment:
  ARCADE_DB, ARCADE_REDIS_ADDR, ARCADE_REDIS_PASSWORD, ARCADE_REDIS_DB,
  ARCADE_HTTP_ADDR, ARCADE_SSH_ADDR, ARCADE_AUDIO, ARCADE_LOG_LEVEL

Examples:
  arcade list
  arcade play tetris
  arcade play invaders --difficulty hard
  arcade menu --audio
  arcade serve --ssh :2222 --http :8080
  arcade scores snake`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		platform = config.LoadPlatform()
		flags := cmd.Flags()
		if !flags.Changed("db") && platform.DBPath != "" {
			flagDBPath = platform.DBPath
		}
		if !flags.Changed("log-level") {
			flagLogLevel = platform.LogLevel
		}
		if !flags.Changed("redis") {
			flagRedis = platform.RedisAddr
		}
		if !flags.Changed("audio") {
			flagAudio = platform.Audio
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagRedis, "redis", "", "Redis address for shared best scores (host:port)")
	pf.BoolVar(&flagAudio, "audio", false, "Play sound effects on the local audio device")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
