package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-player answer statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		games, err := s.EventRepo().GameCount(ctx)
		if err != nil {
			return fmt.Errorf("count games: %w", err)
		}
		stats, err := s.EventRepo().PlayerStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("%d games played\n\n", games)
		fmt.Printf("%-16s  %5s  %7s  %6s  %7s  %7s  %6s  %8s\n",
			"Player", "Games", "Answers", "Points", "Avg", "Perfect", "Severe", "Timeouts")
		fmt.Println(strings.Repeat("─", 80))
		for _, p := range stats {
			fmt.Printf("%-16s  %5d  %7d  %6d  %7.2f  %7d  %6d  %8d\n",
				truncate(p.PlayerName, 16), p.Games, p.Answers, p.TotalPoints, p.AvgPoints(),
				p.PerfectHits, p.SevereMisses, p.Timeouts)
		}
		return nil
	},
}
