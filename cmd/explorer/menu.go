package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game on the start menu",
	Long: `Start Little Space Explorer on its start menu.

Pick Help/Info or a difficulty. Every difficulty button shows the high
score and the last score for that difficulty. After a game you return
to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Score history
  Q            - Quit

Examples:
  explorer menu
  explorer menu --fps 30
  explorer menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runSession(tui.NewStartScene())
}
