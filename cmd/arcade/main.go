// arcade runs terminal arcade simulations: Pong, Snake, Snake against a
// rival, Breakout and two physics toys.
//
// Usage:
//
//	arcade list                - List available games
//	arcade play <game>         - Play a game
//	arcade menu                - Start menu to pick games interactively
//	arcade simulate <game>     - Run a game headless, optionally on autopilot
//	arcade scores <game>       - Show high scores for a game
//	arcade serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Game config YAML, or a directory of <game>.yaml files
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	_ "github.com/vovakirdan/canvas-arcade/internal/games/bounce"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/particles"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/pong"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/snake"
	"github.com/vovakirdan/canvas-arcade/internal/platform/tui"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Canvas Arcade - classic arcade simulations in your terminal",
	Long: `Canvas Arcade runs small arcade simulations on a fixed tick: Pong against
a CPU paddle, Snake, Snake against an AI rival, Breakout, a particle toy and a
bouncing ball.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  simulate  - Run a game without a terminal UI
  scores    - View high scores
  serve     - Start SSH server for remote play

Examples:
  arcade list
  arcade play snake
  arcade play breakout --difficulty hard
  arcade simulate pong --autopilot --ticks 3600
  arcade serve --ssh :2222
  arcade scores snake`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Game config YAML, or a directory of <game>.yaml files")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback; TUI commands pass io.Discard so logs never tear the screen.
// The returned close func releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	return logger, closeFn, nil
}

// openStore opens the score database. Failure is logged and the caller
// plays without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, playing without persistence", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// closeStore closes a store opened by openStore, which may be nil.
func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("close scores database", "err", err)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// gameOptions passes the config and difficulty flags to the game factories.
func gameOptions() registry.Options {
	return registry.Options{ConfigPath: flagConfig, Difficulty: flagDifficulty}
}

func tuiOptions(store *storage.Store, logger *log.Logger) tui.Options {
	return tui.Options{
		Store:    store,
		Logger:   logger,
		Game:     gameOptions(),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// requireGame exits with a hint when id is not registered.
func requireGame(id string) {
	if registry.Exists(id) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
	os.Exit(1)
}
