package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/saransh/quizdeck/internal/store"
)

// defaultSourceURL is the built-in question bank location; override with
// --source or QUIZDECK_SOURCE.
const defaultSourceURL = "https://docs.google.com/spreadsheets/d/e/2PACX-quizdeck-sample/pub?output=csv"

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Terminal self-quizzing study tool",
	Long:  "Quizdeck — fetch a multiple-choice question bank and quiz yourself, with local score history and weak-point tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Best-effort .env loading; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("source", "", "Question bank CSV URL (overrides QUIZDECK_SOURCE env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveSourceURL returns the question source URL using --source, then
// QUIZDECK_SOURCE, then the built-in default.
func resolveSourceURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("source"); u != "" {
		return u
	}
	if u := os.Getenv("QUIZDECK_SOURCE"); u != "" {
		return u
	}
	return defaultSourceURL
}
