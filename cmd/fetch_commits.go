// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MALLI7622/repo-miner/internal/outwriter"
)

var fetchCommitsCmd = &cobra.Command{
	Use:   "fetch-commits",
	Short: "Fetches commits from a repository and saves them to CSV",
	Long: `Fetches up to --max commits from the specified GitHub repository,
normalizes them into the fixed commit schema (sha, author, email, date,
message) and writes them to the output CSV file.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		repo, _ := cmd.Flags().GetString("repo")
		max, _ := cmd.Flags().GetInt("max")
		out, _ := cmd.Flags().GetString("out")

		miner, err := buildMiner(logger)
		if err != nil {
			fatal("Error: %v", err)
		}

		commits, err := miner.MineCommits(ctx, repo, max)
		if err != nil {
			fatal("Failed to fetch commits: %v", err)
		}

		if err := writeCSVFile(out, func(f *os.File) error {
			return outwriter.WriteCommitsCSV(f, commits)
		}); err != nil {
			fatal("Failed to write %s: %v", out, err)
		}
		fmt.Printf("Saved %d commits to %s\n", len(commits), out)
	},
}

func init() {
	rootCmd.AddCommand(fetchCommitsCmd)
	fetchCommitsCmd.Flags().StringP("repo", "r", "", "Target repository in owner/repo format (required)")
	fetchCommitsCmd.MarkFlagRequired("repo")
	fetchCommitsCmd.Flags().Int("max", -1, "Maximum number of commits to fetch (negative means no limit)")
	fetchCommitsCmd.Flags().String("out", "", "Output CSV path (required)")
	fetchCommitsCmd.MarkFlagRequired("out")
}

// writeCSVFile creates the output file, hands it to the writer and
// closes it, reporting the first error encountered.
func writeCSVFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
