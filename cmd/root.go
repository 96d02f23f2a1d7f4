// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/MALLI7622/repo-miner/internal/config"
	"github.com/MALLI7622/repo-miner/internal/gateway"
	"github.com/MALLI7622/repo-miner/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "repo-miner",
	Short: "A CLI tool to mine GitHub commit and issue history.",
	Long: `repo-miner fetches a repository's commits and issues from the GitHub API,
normalizes them into fixed tabular schemas, and exports them to CSV or
computes summary statistics (top committers, close rate, average open
duration) over them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// newLogger builds a command logger from the inherited verbose flag.
// Logs are discarded unless --verbose is set, in which case they go to
// standard error.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// buildMiner loads configuration and wires the GitHub gateway into a
// Miner. Configuration problems surface here, before any fetch.
func buildMiner(logger *log.Logger) (*usecase.Miner, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	githubGateway, err := gateway.NewGitHubGateway(cfg.GitHub.Token, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewMiner(githubGateway, logger), nil
}

// fatal reports an error to standard error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
