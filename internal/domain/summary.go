package domain

// CommitterCount holds the commit count for a single author.
type CommitterCount struct {
	Author  string `json:"author"`
	Commits int    `json:"commits"`
}

// DayActivity holds the per-day commit and issue-creation counts used by
// the daily activity join. A day present on only one side keeps a zero on
// the other.
type DayActivity struct {
	Commits       int `json:"commits"`
	IssuesCreated int `json:"issues_created"`
}

// Summary is the result of summarizing a commit table and an issue table.
type Summary struct {
	// TopCommitters lists at most the five busiest authors, descending by
	// count, ties broken by first appearance in the commit table. Empty
	// when there are no commits.
	TopCommitters []CommitterCount `json:"top_committers"`

	// CloseRate is closed issues over all issues, rounded to two decimal
	// places; exactly 0.00 when the issue table is empty.
	CloseRate float64 `json:"close_rate"`

	// AvgOpenDays is the mean open duration of resolvable closed issues
	// in fractional days, rounded to two decimal places. Only meaningful
	// when AvgOpenAvailable is true.
	AvgOpenDays      float64 `json:"avg_open_days"`
	AvgOpenAvailable bool    `json:"avg_open_available"`

	// ActivityByDay maps a calendar day (YYYY-MM-DD) to the activity
	// observed on it. Records with unparseable dates are excluded.
	ActivityByDay map[string]DayActivity `json:"activity_by_day"`
}
