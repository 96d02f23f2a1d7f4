package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MALLI7622/repo-miner/internal/domain"
)

func commitBy(author, date string) domain.CommitRecord {
	return domain.CommitRecord{Author: author, Date: date}
}

func issueWith(state, created, closed string) domain.IssueRecord {
	return domain.IssueRecord{State: state, CreatedAt: created, ClosedAt: closed}
}

func TestSummarizer_TopCommitters(t *testing.T) {
	testCases := []struct {
		name     string
		commits  domain.CommitTable
		expected []domain.CommitterCount
	}{
		{
			name:     "no commits yields an empty list",
			commits:  domain.CommitTable{},
			expected: []domain.CommitterCount{},
		},
		{
			name:    "counts per author, descending",
			commits: domain.CommitTable{commitBy("Alice", ""), commitBy("Alice", ""), commitBy("Bob", "")},
			expected: []domain.CommitterCount{
				{Author: "Alice", Commits: 2},
				{Author: "Bob", Commits: 1},
			},
		},
		{
			name:    "ties break by first appearance in the table",
			commits: domain.CommitTable{commitBy("Bob", ""), commitBy("Alice", ""), commitBy("Alice", ""), commitBy("Bob", "")},
			expected: []domain.CommitterCount{
				{Author: "Bob", Commits: 2},
				{Author: "Alice", Commits: 2},
			},
		},
		{
			name: "at most five authors are reported",
			commits: domain.CommitTable{
				commitBy("A", ""), commitBy("A", ""), commitBy("A", ""),
				commitBy("B", ""), commitBy("B", ""),
				commitBy("C", ""), commitBy("D", ""), commitBy("E", ""), commitBy("F", ""),
			},
			expected: []domain.CommitterCount{
				{Author: "A", Commits: 3},
				{Author: "B", Commits: 2},
				{Author: "C", Commits: 1},
				{Author: "D", Commits: 1},
				{Author: "E", Commits: 1},
			},
		},
	}

	summarizer := NewSummarizer(testLogger())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := summarizer.Summarize(tc.commits, domain.IssueTable{})
			assert.Equal(t, tc.expected, summary.TopCommitters)
		})
	}
}

func TestSummarizer_CloseRate(t *testing.T) {
	testCases := []struct {
		name     string
		issues   domain.IssueTable
		expected float64
	}{
		{name: "zero issues means 0.00, not a division error", issues: domain.IssueTable{}, expected: 0.0},
		{
			name: "two of three closed rounds to 0.67",
			issues: domain.IssueTable{
				issueWith("open", "", ""),
				issueWith("closed", "", ""),
				issueWith("closed", "", ""),
			},
			expected: 0.67,
		},
		{
			name:     "all closed",
			issues:   domain.IssueTable{issueWith("closed", "", "")},
			expected: 1.0,
		},
	}

	summarizer := NewSummarizer(testLogger())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := summarizer.Summarize(domain.CommitTable{}, tc.issues)
			assert.Equal(t, tc.expected, summary.CloseRate)
		})
	}
}

func TestSummarizer_AverageOpenDuration(t *testing.T) {
	summarizer := NewSummarizer(testLogger())

	t.Run("no resolvable issue reports not available", func(t *testing.T) {
		issues := domain.IssueTable{
			issueWith("open", "2025-01-01T00:00:00Z", ""),
			issueWith("closed", "", "2025-01-03T00:00:00Z"),
		}
		summary := summarizer.Summarize(domain.CommitTable{}, issues)
		assert.False(t, summary.AvgOpenAvailable)
	})

	t.Run("single issue with a 2.5 day gap reports 2.50", func(t *testing.T) {
		issues := domain.IssueTable{
			issueWith("closed", "2025-01-01T00:00:00Z", "2025-01-03T12:00:00Z"),
		}
		summary := summarizer.Summarize(domain.CommitTable{}, issues)
		require.True(t, summary.AvgOpenAvailable)
		assert.Equal(t, 2.50, summary.AvgOpenDays)
	})

	t.Run("recomputes at full precision instead of averaging floored day counts", func(t *testing.T) {
		two := 2
		issues := domain.IssueTable{
			{State: "closed", CreatedAt: "2025-09-25T15:00:00Z", ClosedAt: "2025-09-28T10:00:00Z", OpenDurationDays: &two},
		}
		summary := summarizer.Summarize(domain.CommitTable{}, issues)
		require.True(t, summary.AvgOpenAvailable)
		// 2 days 19 hours is 2.79 days, not the floored 2.
		assert.Equal(t, 2.79, summary.AvgOpenDays)
	})

	t.Run("unparseable timestamps are excluded", func(t *testing.T) {
		issues := domain.IssueTable{
			issueWith("closed", "garbage", "2025-01-03T00:00:00Z"),
			issueWith("closed", "2025-01-01T00:00:00Z", "2025-01-02T00:00:00Z"),
		}
		summary := summarizer.Summarize(domain.CommitTable{}, issues)
		require.True(t, summary.AvgOpenAvailable)
		assert.Equal(t, 1.0, summary.AvgOpenDays)
	})
}

func TestSummarizer_ActivityByDay(t *testing.T) {
	summarizer := NewSummarizer(testLogger())

	commits := domain.CommitTable{
		commitBy("Alice", "2025-01-01T09:00:00Z"),
		commitBy("Bob", "2025-01-01T17:30:00Z"),
		commitBy("Alice", "2025-01-02T08:00:00Z"),
		commitBy("Carol", ""),          // missing date excluded
		commitBy("Dave", "not a date"), // unparseable date excluded
	}
	issues := domain.IssueTable{
		issueWith("open", "2025-01-02T10:00:00Z", ""),
		issueWith("closed", "2025-01-03T10:00:00Z", "2025-01-04T10:00:00Z"),
	}

	summary := summarizer.Summarize(commits, issues)

	expected := map[string]domain.DayActivity{
		"2025-01-01": {Commits: 2, IssuesCreated: 0},
		"2025-01-02": {Commits: 1, IssuesCreated: 1},
		"2025-01-03": {Commits: 0, IssuesCreated: 1},
	}
	assert.Equal(t, expected, summary.ActivityByDay)

	// Pure function: the same inputs give the same join.
	assert.Equal(t, summary.ActivityByDay, summarizer.Summarize(commits, issues).ActivityByDay)
}

func TestSummarizer_DoesNotMutateInputs(t *testing.T) {
	commits := domain.CommitTable{
		commitBy("Bob", "2025-01-01T09:00:00Z"),
		commitBy("Alice", "2025-01-01T10:00:00Z"),
		commitBy("Alice", "2025-01-02T11:00:00Z"),
	}
	issues := domain.IssueTable{
		issueWith("closed", "2025-01-01T00:00:00Z", "2025-01-02T00:00:00Z"),
		issueWith("open", "2025-01-02T00:00:00Z", ""),
	}
	commitsBefore := append(domain.CommitTable{}, commits...)
	issuesBefore := append(domain.IssueTable{}, issues...)

	NewSummarizer(testLogger()).Summarize(commits, issues)

	assert.Equal(t, commitsBefore, commits)
	assert.Equal(t, issuesBefore, issues)
}
