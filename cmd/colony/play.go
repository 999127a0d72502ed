package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colony/internal/colony"
	"github.com/vovakirdan/colony/internal/config"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/platform/tui"
	"github.com/vovakirdan/colony/internal/registry"
	"github.com/vovakirdan/colony/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play in the terminal",
	Long: `Start a colony session in the terminal.

Without a preset, a menu lets you pick a map (including the one from
your config file) and browse your session history. After a session ends you return to the menu.

Controls:
  Arrows/WASD  - Pan the map (or drag with the mouse)
  Q/E, wheel   - Zoom in/out
  B            - Toggle build mode (or click the Build button)
  Click        - Place a house while building
  Esc          - Cancel build mode
  ?            - Toggle help
  Ctrl+S       - Save a screenshot
  M            - Back to menu
  X/Ctrl+C     - Quit

Examples:
  colony play
  colony play small
  colony play classic --seed 42
  colony play wide --config ./my-colony.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	// The alternate screen owns the terminal; logs go to --log-file or nowhere.
	logger, done := mustLogger(io.Discard, "colony")
	defer done()

	base := loadConfig()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(terminalSize())

	if len(args) == 1 {
		presetID := args[0]
		if !registry.Exists(presetID) {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", presetID)
			fmt.Fprintln(os.Stderr, "Run 'colony list' to see available presets.")
			os.Exit(1)
		}
		if _, err := playOnce(base, presetID, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runMenuLoop(base, store, cfg, logger)
}

// playOnce runs one terminal session. It reports whether the user asked to
// go back to the menu.
func playOnce(base config.ColonyConfig, presetID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	sess, err := registry.NewSession(base, presetID, colony.TerminalLayout())
	if err != nil {
		return false, err
	}
	return tui.Run(sess, store, cfg, logger)
}

// runMenuLoop alternates between the menu and sessions until the user quits.
func runMenuLoop(base config.ColonyConfig, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) {
	for {
		menuResult, err := tui.RunMenu(store, cfg, base.Map)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from history
		}

		// Fresh terrain for each session unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		goBack, err := playOnce(base, menuResult.PresetID, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
			continue
		}
		if !goBack {
			return
		}
	}
}
