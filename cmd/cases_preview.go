package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/grading"
)

var casesPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Instantiate and answer a case template (no database)",
	Long: `Generate and interactively answer instances of one case template.

This is a stateless developer tool with no game state and no events.
Useful for checking stems, truths and grading bands.`,
	RunE: runPreview,
}

func init() {
	casesPreviewCmd.Flags().String("id", "", "Template ID (required)")
	casesPreviewCmd.Flags().Uint32("seed", 1, "Seed of the first instance")
	casesPreviewCmd.Flags().Int("count", 3, "Number of instances to play")
	_ = casesPreviewCmd.MarkFlagRequired("id")
}

func runPreview(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	seed, _ := cmd.Flags().GetUint32("seed")
	count, _ := cmd.Flags().GetInt("count")

	t, ok := cases.Standard().Get(id)
	if !ok {
		return fmt.Errorf("no template %q (see casetrack cases list)", id)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Template: %s (%s, %s)\n\n", t.ID, t.Difficulty, t.Category)

	var total int
	for i := range count {
		q := cases.Generate(t, seed+uint32(i))

		fmt.Printf("── Case %d/%d (seed %d) ──\n", i+1, count, q.Seed)
		fmt.Println(q.Stem)
		if q.IsMCQ() {
			for j, opt := range q.Decision.Options {
				fmt.Printf("  %c) %s\n", 'A'+j, opt)
			}
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		ans, err := cases.ParseAnswer(scanner.Text(), q.Decision)
		if errors.Is(err, cases.ErrEmptyAnswer) {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}
		if err != nil {
			fmt.Printf("Invalid answer: %v\n\n", err)
			continue
		}

		var r grading.Result
		if q.IsMCQ() {
			r = grading.GradeMCQ(ans.Choice, q.Decision.Points)
			fmt.Printf("Best answer: %c\n", 'A'+q.Truth.CorrectIndex)
		} else {
			r = grading.GradeNumeric(ans.Value, q.Truth.Final, t.Bands, grading.ParseRule(t.SevereMiss), false)
			fmt.Printf("Truth: %s (off by %.1f%%)\n", cases.FormatNumber(q.Truth.Final), r.RelativeError*100)
			for _, s := range q.Truth.Steps {
				fmt.Printf("  %s: %s\n", s.Label, cases.FormatNumber(s.Value))
			}
		}
		total += r.Points
		switch {
		case r.SevereMiss:
			fmt.Printf("\033[31m✗ Severe miss.\033[0m %d points\n", r.Points)
		case r.Points > 0:
			fmt.Printf("\033[32m✓ %d points\033[0m\n", r.Points)
		default:
			fmt.Println("0 points")
		}
		if t.HowTo != "" {
			fmt.Printf("How to: %s\n", strings.TrimSpace(t.HowTo))
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d points ──\n", total)
	return nil
}
