// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MALLI7622/repo-miner/internal/domain"
	"github.com/MALLI7622/repo-miner/internal/outwriter"
	"github.com/MALLI7622/repo-miner/internal/usecase"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarizes previously exported commit and issue CSVs",
	Long: `Reads a commits CSV and an issues CSV produced by fetch-commits and
fetch-issues and reports the top 5 committers, the issue close rate and
the average issue open duration.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		commitsPath, _ := cmd.Flags().GetString("commits")
		issuesPath, _ := cmd.Flags().GetString("issues")
		format, _ := cmd.Flags().GetString("format")

		commits, err := readCommitsFile(commitsPath)
		if err != nil {
			fatal("Failed to load %s: %v", commitsPath, err)
		}
		issues, err := readIssuesFile(issuesPath)
		if err != nil {
			fatal("Failed to load %s: %v", issuesPath, err)
		}

		summarizer := usecase.NewSummarizer(logger)
		summary := summarizer.Summarize(commits, issues)

		if err := outwriter.WriteSummary(os.Stdout, summary, format); err != nil {
			fatal("Failed to write summary: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().String("commits", "", "Path to the commits CSV file (required)")
	summarizeCmd.MarkFlagRequired("commits")
	summarizeCmd.Flags().String("issues", "", "Path to the issues CSV file (required)")
	summarizeCmd.MarkFlagRequired("issues")
	summarizeCmd.Flags().String("format", outwriter.TextFormat, "Report format (text or table)")
}

func readCommitsFile(path string) (domain.CommitTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return outwriter.ReadCommitsCSV(file)
}

func readIssuesFile(path string) (domain.IssueTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return outwriter.ReadIssuesCSV(file)
}
