// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/sync/errgroup"

	"github.com/MALLI7622/repo-miner/internal/domain"
	"github.com/MALLI7622/repo-miner/internal/gateway"
)

// Recognized issue state filters.
const (
	StateAll    = "all"
	StateOpen   = "open"
	StateClosed = "closed"
)

// Miner is the use case for normalizing raw source records into the fixed
// tabular schemas. It consumes records through an injected gateway and
// never fetches on its own.
type Miner struct {
	source gateway.Source
	logger *log.Logger
}

// NewMiner creates a new Miner instance.
func NewMiner(source gateway.Source, logger *log.Logger) *Miner {
	return &Miner{
		source: source,
		logger: logger,
	}
}

// MineCommits fetches and normalizes up to limit commits from the given
// "owner/repo" repository, preserving source order. A negative limit
// means no limit. Consumption short-circuits: once limit records exist
// the source stream is stopped rather than drained and truncated.
func (m *Miner) MineCommits(ctx context.Context, repository string, limit int) (domain.CommitTable, error) {
	owner, name, err := splitRepository(repository)
	if err != nil {
		return nil, err
	}

	table := domain.CommitTable{}
	if limit == 0 {
		return table, nil
	}

	err = m.source.ListCommits(ctx, owner, name, func(raw *github.RepositoryCommit) bool {
		table = append(table, normalizeCommit(raw))
		return limit < 0 || len(table) < limit
	})
	if err != nil {
		return nil, err
	}

	m.logger.Printf("Normalized %d commits from %s.", len(table), repository)
	return table, nil
}

// MineIssues fetches and normalizes up to limit issues from the given
// "owner/repo" repository. The state filter must be one of all, open or
// closed and is validated before any fetch occurs; it is applied at the
// source query level. Pull requests are skipped in the consumption loop
// and re-checked during normalization as a second, independent filter
// layer. A negative limit means no limit.
func (m *Miner) MineIssues(ctx context.Context, repository, state string, limit int) (domain.IssueTable, error) {
	if err := validateState(state); err != nil {
		return nil, err
	}
	owner, name, err := splitRepository(repository)
	if err != nil {
		return nil, err
	}

	table := domain.IssueTable{}
	if limit == 0 {
		return table, nil
	}

	err = m.source.ListIssues(ctx, owner, name, state, func(raw *github.Issue) bool {
		if raw.IsPullRequest() {
			return true
		}
		record, ok := normalizeIssue(raw)
		if !ok {
			return true
		}
		table = append(table, record)
		return limit < 0 || len(table) < limit
	})
	if err != nil {
		return nil, err
	}

	m.logger.Printf("Normalized %d issues from %s (state=%s).", len(table), repository, state)
	return table, nil
}

// Mine fetches and normalizes both tables concurrently.
func (m *Miner) Mine(ctx context.Context, repository, state string, commitLimit, issueLimit int) (domain.CommitTable, domain.IssueTable, error) {
	if err := validateState(state); err != nil {
		return nil, nil, err
	}

	var commits domain.CommitTable
	var issues domain.IssueTable

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		commits, err = m.MineCommits(egCtx, repository, commitLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		issues, err = m.MineIssues(egCtx, repository, state, issueLimit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return commits, issues, nil
}

// normalizeCommit maps one raw commit onto the commit schema. Missing
// fields degrade to empty values; a record is never dropped and never an
// error.
func normalizeCommit(raw *github.RepositoryCommit) domain.CommitRecord {
	record := domain.CommitRecord{SHA: raw.GetSHA()}

	commit := raw.GetCommit()
	if author := commit.GetAuthor(); author != nil {
		record.Author = author.GetName()
		record.Email = author.GetEmail()
		record.Date = FormatTimestamp(author.GetDate().Time)
	}
	record.Message = firstLine(commit.GetMessage())
	return record
}

// normalizeIssue maps one raw issue onto the issue schema. The second
// return value is false for pull requests, which are never materialized.
func normalizeIssue(raw *github.Issue) (domain.IssueRecord, bool) {
	if raw.IsPullRequest() {
		return domain.IssueRecord{}, false
	}

	record := domain.IssueRecord{
		ID:       raw.GetID(),
		Number:   raw.GetNumber(),
		Title:    raw.GetTitle(),
		User:     raw.GetUser().GetLogin(),
		State:    raw.GetState(),
		Comments: raw.GetComments(),
	}

	created := raw.GetCreatedAt().Time
	closed := raw.GetClosedAt().Time
	record.CreatedAt = FormatTimestamp(created)
	record.ClosedAt = FormatTimestamp(closed)

	if !created.IsZero() && !closed.IsZero() {
		// Whole days, truncated toward zero.
		days := int(closed.Sub(created) / (24 * time.Hour))
		record.OpenDurationDays = &days
	}
	return record, true
}

// firstLine returns the first line of a possibly multi-line message.
func firstLine(message string) string {
	if message == "" {
		return ""
	}
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimRight(line, "\r")
}

func validateState(state string) error {
	switch state {
	case StateAll, StateOpen, StateClosed:
		return nil
	}
	return fmt.Errorf("invalid state filter %q: must be one of %q, %q or %q", state, StateAll, StateOpen, StateClosed)
}

func splitRepository(repository string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository format: %s, expected format: owner/repo", repository)
	}
	return owner, name, nil
}
