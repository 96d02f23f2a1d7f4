// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MALLI7622/repo-miner/internal/outwriter"
	"github.com/MALLI7622/repo-miner/internal/usecase"
)

var fetchIssuesCmd = &cobra.Command{
	Use:   "fetch-issues",
	Short: "Fetches issues from a repository and saves them to CSV",
	Long: `Fetches up to --max issues from the specified GitHub repository,
excluding pull requests, normalizes them into the fixed issue schema and
writes them to the output CSV file. The --state filter (all, open or
closed) is applied at the source query level.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		repo, _ := cmd.Flags().GetString("repo")
		state, _ := cmd.Flags().GetString("state")
		max, _ := cmd.Flags().GetInt("max")
		out, _ := cmd.Flags().GetString("out")

		miner, err := buildMiner(logger)
		if err != nil {
			fatal("Error: %v", err)
		}

		issues, err := miner.MineIssues(ctx, repo, state, max)
		if err != nil {
			fatal("Failed to fetch issues: %v", err)
		}

		if err := writeCSVFile(out, func(f *os.File) error {
			return outwriter.WriteIssuesCSV(f, issues)
		}); err != nil {
			fatal("Failed to write %s: %v", out, err)
		}
		fmt.Printf("Saved %d issues to %s\n", len(issues), out)
	},
}

func init() {
	rootCmd.AddCommand(fetchIssuesCmd)
	fetchIssuesCmd.Flags().StringP("repo", "r", "", "Target repository in owner/repo format (required)")
	fetchIssuesCmd.MarkFlagRequired("repo")
	fetchIssuesCmd.Flags().String("state", usecase.StateAll, "Issue state filter (all, open or closed)")
	fetchIssuesCmd.Flags().Int("max", -1, "Maximum number of issues to fetch (negative means no limit)")
	fetchIssuesCmd.Flags().String("out", "", "Output CSV path (required)")
	fetchIssuesCmd.MarkFlagRequired("out")
}
