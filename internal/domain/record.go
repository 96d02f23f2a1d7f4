// Package domain contains the core data structures and domain logic for the application.
package domain

// CommitColumns is the fixed column order of the commit schema.
// CSV export and every downstream consumer rely on these exact names
// in this exact order.
var CommitColumns = []string{"sha", "author", "email", "date", "message"}

// IssueColumns is the fixed column order of the issue schema.
var IssueColumns = []string{"id", "number", "title", "user", "state", "created_at", "closed_at", "comments", "open_duration_days"}

// CommitRecord is one normalized commit. Every field defaults to the
// empty string when the source record is missing it.
type CommitRecord struct {
	SHA     string `json:"sha"`
	Author  string `json:"author"`
	Email   string `json:"email"`
	Date    string `json:"date"` // ISO-8601, or empty when the source has no timestamp
	Message string `json:"message"` // first line of the commit message only
}

// IssueRecord is one normalized issue. Pull requests are never
// materialized as IssueRecords.
type IssueRecord struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	User      string `json:"user"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
	ClosedAt  string `json:"closed_at"`
	Comments  int    `json:"comments"`

	// OpenDurationDays is the floored whole-day count between creation
	// and close, truncated toward zero. Nil unless both timestamps
	// resolved.
	OpenDurationDays *int `json:"open_duration_days"`
}

// CommitTable is an ordered collection of commit records, in the order
// returned by the source (newest first).
type CommitTable []CommitRecord

// IssueTable is an ordered collection of issue records.
type IssueTable []IssueRecord
