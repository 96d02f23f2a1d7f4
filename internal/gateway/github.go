// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Source defines the behavior of a gateway that streams raw records from
// a source-control host. Raw records are handed to yield one at a time in
// source order; yield returns false to stop consumption early, in which
// case no further pages are fetched.
type Source interface {
	ListCommits(ctx context.Context, owner, repo string, yield func(*github.RepositoryCommit) bool) error
	ListIssues(ctx context.Context, owner, repo, state string, yield func(*github.Issue) bool) error
}

// GitHubGateway is the concrete implementation of the Source interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// ListCommits streams the repository's commits, newest first, handling
// pagination transparently.
func (g *GitHubGateway) ListCommits(ctx context.Context, owner, repo string, yield func(*github.RepositoryCommit) bool) error {
	g.logger.Printf("Fetching commits for %s/%s...", owner, repo)
	opts := &github.CommitsListOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		commits, resp, err := g.client.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return fmt.Errorf("failed to list commits: %w", err)
		}
		for _, commit := range commits {
			if !yield(commit) {
				g.logger.Println("Commit consumer stopped early; skipping remaining pages.")
				return nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of commits...")
	}
	g.logger.Println("Completed fetching commit data.")
	return nil
}

// ListIssues streams the repository's issues, applying the state filter at
// the source query level. The GitHub issues endpoint also returns pull
// requests; callers filter those out.
func (g *GitHubGateway) ListIssues(ctx context.Context, owner, repo, state string, yield func(*github.Issue) bool) error {
	g.logger.Printf("Fetching issues for %s/%s (state=%s)...", owner, repo, state)
	opts := &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		issues, resp, err := g.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return fmt.Errorf("failed to list issues: %w", err)
		}
		for _, issue := range issues {
			if !yield(issue) {
				g.logger.Println("Issue consumer stopped early; skipping remaining pages.")
				return nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of issues...")
	}
	g.logger.Println("Completed fetching issue data.")
	return nil
}
