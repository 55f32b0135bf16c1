package commands

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "studyplay",
	Short: "A study/leisure time economy tracker",
	Long: `studyplay turns study time into leisure time.
Study to earn leisure, spend it on a countdown, borrow against future study
when you run short, and keep a log of every transaction.`,
	SilenceUsage: true,
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to settings.toml (default ~/.studyplay/settings.toml, env STUDYPLAY_SETTINGS)")

	// Add subcommands here
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(leisureCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(loanCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
