package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colony/internal/colony"
	"github.com/vovakirdan/colony/internal/platform/window"
	"github.com/vovakirdan/colony/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [preset]",
	Short: "Play in a desktop window",
	Long: `Start a colony session in a desktop window.

Controls:
  Arrows/WASD  - Pan the map (or drag with the mouse)
  Q/E, wheel   - Zoom in/out
  B            - Toggle build mode (or click the Build button)
  Click        - Place a house while building
  Esc          - Cancel build mode
  /            - Toggle help
  X            - Quit

Without a preset, the map from the loaded config is used.

Examples:
  colony window
  colony window wide --width 1600 --height 900`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, args []string) {
	logger, done := mustLogger(os.Stderr, "colony")
	defer done()

	presetID := "" // the map from the loaded config
	if len(args) == 1 {
		presetID = args[0]
	}

	base := loadConfig()
	sess, err := registry.NewSession(base, presetID, colony.WindowLayout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'colony list' to see available presets.")
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := window.Run(sess, store, runtimeConfig(flagWidth, flagHeight), logger); err != nil {
		logger.Error("window closed with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
