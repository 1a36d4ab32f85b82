package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-question accuracy, weakest first",
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

		agg := stats.Load(context.Background(), st.KV())
		ranked := agg.Known()
		if len(ranked) == 0 {
			fmt.Println("No statistics recorded yet.")
			return nil
		}

		for _, r := range ranked {
			pct := int(r.Accuracy()*100 + 0.5)
			fmt.Printf("%3d%%  %3d/%-3d  %s\n", pct, r.Correct, r.Attempts, r.Question)
		}
		return nil
	},
}
