package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recorded session outcomes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ledger := history.Load(context.Background(), st.KV())
		if ledger.Len() == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		for _, item := range ledger.Items() {
			fmt.Printf("%s  %d/%d  %s\n",
				item.Timestamp.Format("2006-01-02 15:04"), item.Score, item.Total, item.Mode)
			for _, m := range item.Mistakes {
				fmt.Printf("    missed: %s (answer: %s)\n", m.Question, m.CorrectAnswer)
			}
		}
		return nil
	},
}
