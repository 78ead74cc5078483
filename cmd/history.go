package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		results, err := s.ResultRepo().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No quiz results yet.")
			return nil
		}

		fmt.Printf("%-19s  %-7s  %-30s  %-7s  %s\n",
			"Finished", "Time", "Source", "Score", "Mode")
		fmt.Println(strings.Repeat("─", 78))

		for _, r := range results {
			mins := int(r.Duration.Minutes())
			secs := int(r.Duration.Seconds()) % 60
			source := r.Source
			if len(source) > 30 {
				source = "..." + source[len(source)-27:]
			}
			fmt.Printf("%-19s  %-7s  %-30s  %2d/%-4d  %s\n",
				r.FinishedAt.Local().Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%d:%02d", mins, secs),
				source,
				r.CorrectCount, r.QuestionCount,
				r.Mode,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
}
