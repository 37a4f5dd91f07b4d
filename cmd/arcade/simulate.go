package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/session"
)

var (
	flagSimTicks       int
	flagSimAutopilot   bool
	flagSimRenderEvery int
	flagSimWidth       int
	flagSimHeight      int
	flagSimRealtime    bool
	flagSimPersist     bool
	flagSimKeepGoing   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless",
	Long: `Run a game without a terminal UI and print frames as plain text.

With --autopilot the game steers the player itself. Without it the game is
only started, so the player stands still. The run stops after --ticks ticks
or when the game ends. High scores stay in memory unless --persist is set.

Examples:
  arcade simulate pong --autopilot --ticks 3600
  arcade simulate snake --autopilot --seed 7 --render-every 60
  arcade simulate particles --ticks 300 --render-every 30 --realtime`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to run (0 = until the game ends)")
	simulateCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the game play itself")
	simulateCmd.Flags().IntVar(&flagSimRenderEvery, "render-every", 0, "Print every Nth frame (0 = final frame only)")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Screen width in cells")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Screen height in cells")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simulateCmd.Flags().BoolVar(&flagSimPersist, "persist", false, "Record scores in the database")
	simulateCmd.Flags().BoolVar(&flagSimKeepGoing, "keep-going", false, "Keep ticking after the game ends")
}

func runSimulate(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	if flagSimTicks <= 0 && flagSimKeepGoing {
		fmt.Fprintln(os.Stderr, "Error: --keep-going needs --ticks")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID, gameOptions())
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := []session.Option{session.WithLogger(logger)}
	if flagSimPersist {
		if store := openStore(logger); store != nil {
			defer closeStore(store, logger)
			opts = append(opts, session.WithStore(store))
		}
	} else {
		opts = append(opts, session.WithStore(session.NewMemoryStore()))
	}

	cfg := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	s := session.New(game, cfg, opts...)

	var input session.InputSource = &session.AutopilotInput{Game: game}
	if !flagSimAutopilot {
		input = startOnly()
	}

	out := &session.TextRenderer{W: os.Stdout}
	loop := &session.Loop{
		Session:      s,
		Input:        input,
		MaxTicks:     flagSimTicks,
		RenderEvery:  flagSimRenderEvery,
		StopWhenOver: !flagSimKeepGoing,
	}
	if flagSimRenderEvery > 0 {
		loop.Renderer = out
	}
	if flagSimRealtime {
		loop.TickRate = flagFPS
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "game", gameID, "ticks", flagSimTicks, "autopilot", flagSimAutopilot)
	st, err := loop.Run(ctx)
	if err != nil {
		logger.Warn("simulation interrupted", "err", err)
	}

	if flagSimRenderEvery <= 0 {
		s.Render(out)
	}
	if err := out.Err(); err != nil {
		logger.Error("write frames", "err", err)
	}

	fmt.Printf("game=%s phase=%s outcome=%s score=%d high=%d ticks=%d\n",
		gameID, st.Phase, st.Outcome, st.Score, st.HighScore, s.Ticks())
}

// startOnly presses Launch once so the session starts, then nothing.
func startOnly() session.InputSource {
	started := false
	return session.InputFunc(func() core.InputFrame {
		if started {
			return core.NewInputFrame()
		}
		started = true
		return core.Frame(core.ActionLaunch)
	})
}
