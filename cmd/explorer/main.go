// explorer is Little Space Explorer, a terminal arcade game: steer a
// spaceship through an asteroid field and collect coins.
//
// Usage:
//
//	explorer                  - Open the start menu
//	explorer menu             - Open the start menu
//	explorer play             - Jump straight into a game
//	explorer scores           - Show last and high scores per difficulty
//	explorer serve            - Start SSH server for remote play
//	explorer config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.explorer/scores.db)
//	--config <path>   - Use a custom configuration file
//	--mute            - Disable music and sound effects
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagMute    bool
	flagWatch   bool
	flagAds     string
	flagLogFile string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "explorer",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Little Space Explorer - dodge asteroids and collect coins in your terminal",
	Long: `Little Space Explorer is a terminal arcade game. Steer your spaceship
up and down, collect coins for points and avoid the asteroids: every hit
drains your shield, and an empty shield ends the run.

Available commands:
  menu     - Start menu (default)
  play     - Play a difficulty directly
  scores   - View and clear scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  explorer
  explorer play --difficulty hard
  explorer scores
  explorer serve --ssh :2222
  explorer --config ./explorer.yaml --watch`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.explorer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagAds, "ads", "", "Path to a promo catalog YAML (built-in if empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write session logs to this file")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
