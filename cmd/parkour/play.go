package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/games/parkour"
	"github.com/vovakirdan/parkour/internal/platform/tui"
)

var (
	flagLevel int
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Parkour Princess in the terminal.

Controls:
  Space/Up/W - Jump (press again in the air to double jump)
  Enter      - Start, next level
  P          - Pause
  R          - Retry (after a fall)
  Esc/B      - Back to the menu
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower worlds with shorter gaps
  normal - The catalog as configured
  hard   - Faster worlds with wider gaps

With --watch the config file is reloaded whenever it is saved. Changes
apply from the next level start.

Examples:
  parkour play
  parkour play --level 5
  parkour play --difficulty hard --seed 42
  parkour play --config ./levels.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (1-based, 0 = menu)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	// The terminal belongs to the game, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard, "parkour")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := tui.Options{
		Start:  flagLevel - 1,
		Preset: preset,
		Logger: logger,
	}

	if flagWatch {
		path := config.Locate(flagConfig)
		if path == "" {
			fail("--watch needs a config file; run 'parkour defaults > configs/parkour.yaml' to create one")
		}
		w, err := config.NewWatcher(ctx, path)
		if err != nil {
			fail("cannot watch %s: %v", path, err)
		}
		logger.Info("watching config", "path", w.Path())
		opts.Watcher = w
	}

	if err := tui.Run(cfg, terminalConfig(), opts); err != nil {
		if errors.Is(err, parkour.ErrLevelOutOfRange) {
			fmt.Fprintf(os.Stderr, "Error: no level %d\n", flagLevel)
			fmt.Fprintln(os.Stderr, "Run 'parkour levels' to see the catalog.")
			os.Exit(1)
		}
		fail("%v", err)
	}
}
