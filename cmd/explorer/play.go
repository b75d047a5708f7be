package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a difficulty directly",
	Long: `Skip the menu and start a game.

Controls:
  Up/W       - Fly up
  Down/S     - Fly down
  P/Esc      - Pause (then Resume or Menu)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Five shield bars, sparse asteroids
  medium - Three shield bars, denser and faster asteroids
  hard   - Three shield bars, asteroids nearly every second

Examples:
  explorer play
  explorer play --difficulty hard
  explorer play --difficulty medium --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	d, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	return runSession(tui.NewGameScene(d))
}
