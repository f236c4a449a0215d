package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/casetrack/internal/cases"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Browse the case catalog",
}

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all case templates (optionally filtered by difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, _ := cmd.Flags().GetString("difficulty")

		catalog := cases.Standard()
		templates := catalog.All()
		if diff != "" {
			d, err := cases.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			templates = catalog.ByDifficulty(d)
		}

		// Header.
		fmt.Printf("%-34s  %-36s  %-5s  %-14s  %s\n",
			"ID", "Title", "Diff", "Category", "Kind")
		fmt.Println(strings.Repeat("─", 104))

		for _, t := range templates {
			title := t.Title
			if len(title) > 36 {
				title = title[:33] + "..."
			}
			fmt.Printf("%-34s  %-36s  %-5s  %-14s  %s\n",
				t.ID, title, t.Difficulty, t.Category, t.Decision.Kind)
		}

		fmt.Printf("\n%d templates\n", len(templates))
		return nil
	},
}

func init() {
	casesListCmd.Flags().String("difficulty", "", "Filter by difficulty (quick or full)")

	casesCmd.AddCommand(casesListCmd)
	casesCmd.AddCommand(casesPreviewCmd)
}
