// cowpult is a terminal slingshot game: drag the cow back with the mouse,
// let go, and knock the farmers over.
//
// Usage:
//
//	cowpult play             - Play in the terminal
//	cowpult levels           - Validate and list the level roster
//	cowpult simulate         - Run a level headless and print the result
//
// Global flags:
//
//	--fps <rate>          - Set render tick rate (default: 60)
//	--config <path>       - Config file (default: ~/.cowpult/config.yaml)
//	--levels <path>       - Level file or directory (default: built-in levels)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log destination, "-" for stderr
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cowpult/internal/config"
	"github.com/vovakirdan/tui-cowpult/internal/levels"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLevels   string
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
	Use:   "cowpult",
	Short: "Cowpult - launch cows at farmers in your terminal",
	Long: `Cowpult is a physics slingshot game played in the terminal with the mouse.

Available commands:
  play      - Play the game
  levels    - Validate and list the levels
  simulate  - Run one level without a terminal UI

Examples:
  cowpult play
  cowpult play --levels ./my-levels
  cowpult levels
  cowpult simulate --level 2 --ticks 300 --launch 60,40`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level file or directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file ("-" for stderr)`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLevels != "" {
		cfg.Levels = flagLevels
	}
	return cfg, nil
}

// newLoader returns a level loader for the configured location.
func newLoader(cfg config.Config) *levels.Loader {
	return levels.NewLoader(levels.Resolve(cfg.Levels), cfg.Physics)
}

// newLogger builds the logger from --log-level and --log-file. When no file
// is given, logs go to ~/.cowpult/cowpult.log if toFile is set and to stderr
// otherwise. The returned func closes the log file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := logWriter(flagLogFile, toFile)
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cowpult",
		Level:           level,
	})
	return logger, closeFn, nil
}

// logWriter opens the log destination. An unusable file falls back to
// discarding logs with a warning on stderr.
func logWriter(path string, toFile bool) (io.Writer, func()) {
	noop := func() {}

	if path == "-" || (path == "" && !toFile) {
		return os.Stderr, noop
	}
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			return io.Discard, noop
		}
		path = filepath.Join(dir, "cowpult.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, noop
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, noop
	}
	return f, func() { _ = f.Close() }
}
