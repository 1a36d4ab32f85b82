package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saransh/quizdeck/internal/app"
	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Client: bank.NewClient(resolveSourceURL(cmd)),
		KV:     st.KV(),
	}
	return app.Run(opts)
}
