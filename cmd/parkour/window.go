package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkour/internal/core"
	"github.com/vovakirdan/parkour/internal/platform/gui"
)

var (
	flagWindowLevel int
	flagScale       float64
	flagMute        bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Parkour Princess in a desktop window with sound effects.

Controls:
  Space/Up/W/Click - Jump (again in the air to double jump)
  Enter            - Start, next level
  P                - Pause
  R                - Retry (after a fall)
  Esc/B            - Back to the menu
  Q                - Quit

Examples:
  parkour window
  parkour window --scale 2 --mute
  parkour window --level 5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowLevel, "level", 0, "Start directly at this level (1-based, 0 = menu)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, _, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr, "parkour")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	rt := core.RuntimeConfig{
		ScreenW:  int(cfg.World.Width),
		ScreenH:  int(cfg.World.Height),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	err = gui.Run(cfg, rt, gui.Options{
		Start:  flagWindowLevel - 1,
		Scale:  flagScale,
		Mute:   flagMute,
		Logger: logger,
	})
	if err != nil {
		fail("%v", err)
	}
}
