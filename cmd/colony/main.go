// colony is a small colony builder: pan a procedurally generated valley and
// place houses on its grid, in the terminal, in a window or over SSH.
//
// Usage:
//
//	colony list              - List map presets
//	colony play [preset]     - Play in the terminal (menu if no preset given)
//	colony window [preset]   - Play in a desktop window
//	colony history           - Show recent sessions
//	colony serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set terrain seed for reproducible maps
//	--db <path>          - Set database path (default: ~/.colony/history.db)
//	--config <path>      - Load a custom colony.yaml
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colony/internal/config"
	"github.com/vovakirdan/colony/internal/core"
	"github.com/vovakirdan/colony/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colony",
	Short: "Colony - build a settlement on a procedural map",
	Long: `Colony generates a valley of grass, badlands and desert from Perlin
noise and lets you place houses on its grid.

Available commands:
  list     - Show all map presets
  play     - Play in the terminal
  window   - Play in a desktop window
  history  - View recent sessions
  serve    - Start SSH server for remote play

Examples:
  colony list
  colony play small
  colony window classic --seed 42
  colony serve --ssh :2222
  colony history --plain`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colony/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom colony config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger from the global flags. Without a log file,
// output goes to fallback. Call the returned func to release the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	done := func() {}
	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		done = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, done, nil
}

// mustLogger is newLogger for commands, exiting on bad flags.
func mustLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	logger, done, err := newLogger(fallback, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, done
}

// loadConfig loads the colony config, exiting on a broken custom file.
// --seed overrides a seed pinned in the file.
func loadConfig() config.ColonyConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		cfg.Terrain.Seed = flagSeed
	}
	return cfg
}

// openStore opens the history database. A failure is reported and the
// caller continues without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig returns the runtime config for a width x height screen.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a
// terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
