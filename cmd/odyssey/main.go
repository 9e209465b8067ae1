// odyssey is an asteroids-style space shooter for the terminal, a desktop
// window or remote play over SSH.
//
// Usage:
//
//	odyssey play      - Play in the terminal
//	odyssey window    - Play in a desktop window
//	odyssey serve     - Start SSH server for remote play
//	odyssey stats     - Show recent sessions and totals
//	odyssey config    - Print the effective configuration
//	odyssey assets    - Check the assets directory
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.odyssey/odyssey.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination for interactive frontends
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-odyssey/internal/assets"
	"github.com/vovakirdan/space-odyssey/internal/config"
	"github.com/vovakirdan/space-odyssey/internal/storage"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagConfig       string
	flagDifficulty   string
	flagLogLevel     string
	flagLogFile      string
	flagDebug        bool
	flagAssets       string
	flagStrictAssets bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "odyssey",
	Short: "Space Odyssey - fly, shoot, survive the asteroid field",
	Long: `Space Odyssey is an asteroids-style shooter. Steer the ship, shoot the
rocks drifting in from beyond the screen edges and keep your score alive.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  stats    - Show recent sessions and totals
  config   - Print the effective configuration
  assets   - Check the assets directory

Examples:
  odyssey play
  odyssey play --difficulty hard
  odyssey window --assets ./assets
  odyssey serve --ssh :2222
  odyssey config --config ./my-odyssey.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to settings and session database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.odyssey/odyssey.log", "Log file for play and window")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw collision circles")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", assets.DefaultDir, "Directory with textures and sounds")
	rootCmd.PersistentFlags().BoolVar(&flagStrictAssets, "strict-assets", false, "Refuse to start when an asset is missing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the logger. Interactive frontends pass toFile so log
// lines do not tear through the game screen. The returned func closes the file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := os.Stderr, func() {}
	if toFile {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "odyssey",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the config file and applies --difficulty.
func loadConfig() (config.OdysseyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore opens the database. Failure is a warning: the game runs
// without persisted settings or a session journal.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// seed returns --seed or a time-based seed.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// checkAssets logs asset problems and fails under --strict-assets.
func checkAssets(logger *log.Logger, rep assets.Report) error {
	if rep.Empty() {
		return nil
	}
	if flagStrictAssets {
		return rep.Err()
	}
	for _, p := range rep.Problems {
		logger.Warn("asset unavailable, using fallback", "asset", p.Asset.Name, "file", p.Asset.File, "error", p.Err)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
