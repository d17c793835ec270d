package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a run",
	Long: `Start a run of the specified game (default: runner).

Controls:
  Left/Right, A/D  - Change lane
  Space/Up/W       - Jump, press again in the air to double jump
  Down/S           - Cut a jump short
  F/X/Enter        - Fire
  P                - Pause
  Esc              - Back to menu (paused or game over)
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Start on the first tier, 5 health
  normal - Start 30% into the tier schedule
  hard   - Start 70% into the tier schedule, 2 health, slower gun
  fixed  - Constant speed at the config's initial level

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --seed 7
  runner play --log-file ./runner.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := runner.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'runner list' to see available games)", gameID)
	}

	logger, closeLog, err := newLogger("runner", nil)
	if err != nil {
		return err
	}
	defer closeLog()
	configureGame(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The run still works without a leaderboard
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("runs database unavailable", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting run", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
