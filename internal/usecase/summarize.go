package usecase

import (
	"log"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/MALLI7622/repo-miner/internal/domain"
)

// TopCommitterCount is how many authors the summary reports.
const TopCommitterCount = 5

// Summarizer computes aggregate statistics over already-normalized
// tables. It is pure: the same inputs always produce the same summary,
// and the caller's tables are never mutated.
type Summarizer struct {
	logger *log.Logger
}

// NewSummarizer creates a new Summarizer instance.
func NewSummarizer(logger *log.Logger) *Summarizer {
	return &Summarizer{logger: logger}
}

// Summarize computes the summary statistics for the two tables.
func (s *Summarizer) Summarize(commits domain.CommitTable, issues domain.IssueTable) domain.Summary {
	s.logger.Printf("Summarizing %d commits and %d issues.", len(commits), len(issues))

	summary := domain.Summary{
		TopCommitters: topCommitters(commits, TopCommitterCount),
		CloseRate:     closeRate(issues),
		ActivityByDay: activityByDay(commits, issues),
	}
	if avg, ok := averageOpenDays(issues); ok {
		summary.AvgOpenDays = avg
		summary.AvgOpenAvailable = true
	}
	return summary
}

// topCommitters counts commits per author and returns at most n authors,
// descending by count. Ties keep the order in which the authors first
// appear in the table.
func topCommitters(commits domain.CommitTable, n int) []domain.CommitterCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, commit := range commits {
		if _, seen := counts[commit.Author]; !seen {
			order = append(order, commit.Author)
		}
		counts[commit.Author]++
	}

	ranked := make([]domain.CommitterCount, 0, len(order))
	for _, author := range order {
		ranked = append(ranked, domain.CommitterCount{Author: author, Commits: counts[author]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Commits > ranked[j].Commits
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// closeRate is closed issues over all issues, 0.00 when there are none.
func closeRate(issues domain.IssueTable) float64 {
	if len(issues) == 0 {
		return 0.0
	}
	closed := 0
	for _, issue := range issues {
		if strings.EqualFold(issue.State, StateClosed) {
			closed++
		}
	}
	return round2(float64(closed) / float64(len(issues)))
}

// averageOpenDays is the mean open duration in fractional days over
// issues whose created and closed timestamps both parse. It is recomputed
// at full precision from the timestamps rather than from the floored
// per-row day count. The second return value is false when no issue
// qualifies.
func averageOpenDays(issues domain.IssueTable) (float64, bool) {
	durations := make([]float64, 0, len(issues))
	for _, issue := range issues {
		created, okCreated := ParseTimestamp(issue.CreatedAt)
		closed, okClosed := ParseTimestamp(issue.ClosedAt)
		if !okCreated || !okClosed {
			continue
		}
		durations = append(durations, closed.Sub(created).Hours()/24)
	}

	mean, err := stats.Mean(durations)
	if err != nil {
		return 0, false
	}
	return round2(mean), true
}

// activityByDay joins commits and issues on calendar day: commits by
// commit date, issues by creation date, union of days, missing side zero.
// Records with missing or unparseable dates are excluded.
func activityByDay(commits domain.CommitTable, issues domain.IssueTable) map[string]domain.DayActivity {
	byDay := make(map[string]domain.DayActivity)
	for _, commit := range commits {
		if t, ok := ParseTimestamp(commit.Date); ok {
			entry := byDay[t.Format(dayLayout)]
			entry.Commits++
			byDay[t.Format(dayLayout)] = entry
		}
	}
	for _, issue := range issues {
		if t, ok := ParseTimestamp(issue.CreatedAt); ok {
			entry := byDay[t.Format(dayLayout)]
			entry.IssuesCreated++
			byDay[t.Format(dayLayout)] = entry
		}
	}
	return byDay
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
