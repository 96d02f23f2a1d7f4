// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/MALLI7622/repo-miner/internal/outwriter"
	"github.com/MALLI7622/repo-miner/internal/usecase"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetches commits and issues and prints the summary in one run",
	Long: `Fetches the repository's commits and issues concurrently, normalizes
them and prints the summary report without going through CSV files.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		repo, _ := cmd.Flags().GetString("repo")
		state, _ := cmd.Flags().GetString("state")
		maxCommits, _ := cmd.Flags().GetInt("max-commits")
		maxIssues, _ := cmd.Flags().GetInt("max-issues")
		format, _ := cmd.Flags().GetString("format")

		miner, err := buildMiner(logger)
		if err != nil {
			fatal("Error: %v", err)
		}

		commits, issues, err := miner.Mine(ctx, repo, state, maxCommits, maxIssues)
		if err != nil {
			fatal("Failed to mine %s: %v", repo, err)
		}

		summarizer := usecase.NewSummarizer(logger)
		summary := summarizer.Summarize(commits, issues)

		if err := outwriter.WriteSummary(os.Stdout, summary, format); err != nil {
			fatal("Failed to write summary: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringP("repo", "r", "", "Target repository in owner/repo format (required)")
	reportCmd.MarkFlagRequired("repo")
	reportCmd.Flags().String("state", usecase.StateAll, "Issue state filter (all, open or closed)")
	reportCmd.Flags().Int("max-commits", -1, "Maximum number of commits to fetch (negative means no limit)")
	reportCmd.Flags().Int("max-issues", -1, "Maximum number of issues to fetch (negative means no limit)")
	reportCmd.Flags().String("format", outwriter.TextFormat, "Report format (text or table)")
}
