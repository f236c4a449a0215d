package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game so the next run starts fresh",
	Long:  "Deletes every saved snapshot. The turn log and LLM request log are kept for stats.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.SnapshotRepo().Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("clear snapshots: %w", err)
		}
		fmt.Printf("Deleted %d snapshots.\n", n)
		return nil
	},
}
