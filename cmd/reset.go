package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all statistics and history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This erases all statistics and history. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if err := stats.Load(ctx, st.KV()).Reset(ctx); err != nil {
			return err
		}
		if err := history.Load(ctx, st.KV()).Clear(ctx); err != nil {
			return err
		}
		fmt.Println("All statistics and history erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
}
