package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-odyssey/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Space Odyssey in a desktop window.

Textures (player.png, asteroid.png, logo.png, bg.png) and sounds
(shooting.mp3, die.mp3, explotion.mp3) are read from --assets. Missing
files are replaced with drawn shapes and synthesized sounds unless
--strict-assets is set.

Controls:
  Arrows/WASD   - Thrust and turn (menu: up/down moves the cursor)
  Space         - Fire
  P             - Pause
  Esc           - Toggle menu
  Enter / click - Select menu item
  F3            - Show hitboxes

Examples:
  odyssey window
  odyssey window --assets ~/odyssey/assets --strict-assets`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	tex, rep := window.LoadTextures(flagAssets)
	game, err := startLocal("window", logger, rep)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	runErr := window.Run(game.world, game.recorder, window.Options{
		TickRate: flagFPS,
		Debug:    flagDebug,
		Textures: tex,
		Logger:   logger,
	})
	game.close()

	if runErr != nil {
		logger.Error("window frontend failed", "error", runErr)
		closeLog()
		fail("running game: %v", runErr)
	}
}
