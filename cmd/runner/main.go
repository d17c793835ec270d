// runner is an endless lane runner played in the terminal.
//
// Usage:
//
//	runner list              - List available games
//	runner play [game]       - Play a run (default: runner)
//	runner menu              - Start menu with scoreboard
//	runner serve             - Start SSH server for remote play
//	runner scores [game]     - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.lanerunner/runs.db)
//	--config <path>       - Custom track and player YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - an endless runner in your terminal",
	Long: `Lane Runner is an endless runner played in the terminal.
Switch lanes, jump gaps, shoot hazards and stay ahead of the chaser.

Available commands:
  list     - Show all available games
  play     - Start a run directly
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  runner play
  runner play --difficulty hard --seed 42
  runner menu
  runner serve --ssh :2222
  runner scores`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.lanerunner/runs.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// configureGame hands the CLI overrides to the runner before any instance
// is created.
func configureGame(logger *log.Logger) {
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	runner.SetLogger(logger)
}
