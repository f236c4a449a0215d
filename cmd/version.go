package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/casetrack/internal/release"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("casetrack", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		res, err := release.NewChecker().Check(ctx, version)
		switch {
		case errors.Is(err, release.ErrDevBuild):
			fmt.Println("Development build; nothing to compare.")
			return nil
		case errors.Is(err, release.ErrNoReleases):
			fmt.Println("No releases published yet.")
			return nil
		case err != nil:
			return err
		}

		if res.UpdateAvailable {
			fmt.Printf("New version %s available: %s\n", res.LatestVersion, res.ReleaseURL)
		} else {
			fmt.Println("Already running the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Compare against the latest GitHub release")
}
