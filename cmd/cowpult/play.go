package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cowpult/internal/core"
	"github.com/vovakirdan/tui-cowpult/internal/game"
	"github.com/vovakirdan/tui-cowpult/internal/platform/tui"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  X/Space/Enter     - Start, restart the level
  Mouse drag        - Pull the cow back, release to launch
  Z/R/Right click   - Fetch the cow after a launch
  Arrows/hjkl       - Pan the view
  ?                 - More keys
  Q/Ctrl+C          - Quit

Examples:
  cowpult play
  cowpult play --levels ./levels/hard.yaml
  cowpult play --log-level debug --log-file -`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Missing or malformed levels abort before the terminal is taken over.
	loader := newLoader(cfg)
	roster, err := loader.Load()
	if err == nil {
		err = world.ValidateRoster(roster)
	}
	if err != nil {
		logger.Error("invalid levels", "path", loader.Root, "error", err)
		return fmt.Errorf("loading levels: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	ctrl := game.NewController(
		loader,
		cfg.Frame.NewFrame(width, height),
		game.WithLogger(logger),
		game.WithPanStep(cfg.PanStep),
	)

	logger.Info("starting", "levels", len(roster), "screen", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS)
	if err := tui.Run(ctrl, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
