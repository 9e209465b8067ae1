package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-odyssey/internal/assets"
	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Space Odyssey in the terminal.

Controls:
  Up/W, Down/S      - Thrust forward / backward (menu: move cursor)
  Left/A, Right/D   - Turn
  Space             - Fire
  P                 - Pause
  Esc/B             - Toggle menu
  Enter             - Select menu item (or click it)
  F3                - Show hitboxes
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow asteroid cadence, speeds up with score
  normal - Default cadence, speeds up with score
  hard   - Fast cadence, speeds up with score
  fixed  - No progression, cadence stays at the config's threshold

Examples:
  odyssey play
  odyssey play --difficulty easy
  odyssey play --seed 42 --fps 30
  odyssey play --config ./my-odyssey.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := startLocal("tui", logger, assets.Report{})
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     game.seed,
		Debug:    flagDebug,
	}

	runErr := tui.Run(game.world, game.recorder, cfg)
	game.close()

	if runErr != nil {
		logger.Error("terminal frontend failed", "error", runErr)
		closeLog()
		fail("running game: %v", runErr)
	}
}
