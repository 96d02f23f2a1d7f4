package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MALLI7622/repo-miner/internal/domain"
)

func TestCommitsCSV_RoundTrip(t *testing.T) {
	commits := domain.CommitTable{
		{SHA: "abc123", Author: "Alice", Email: "alice@example.com", Date: "2024-01-02T03:04:05Z", Message: "fix: handle empty input"},
		{SHA: "def456", Author: "Bob, Jr.", Email: "bob@example.com", Date: "2024-01-03T00:00:00Z", Message: "feat, with a comma"},
		{SHA: "ghi789"}, // degraded record: everything else empty
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCommitsCSV(&buf, commits))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "sha,author,email,date,message", lines[0])
	assert.Len(t, lines, 4)

	loaded, err := ReadCommitsCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, commits, loaded)
}

func TestIssuesCSV_RoundTrip(t *testing.T) {
	two := 2
	issues := domain.IssueTable{
		{ID: 101, Number: 10, Title: "Bug A", User: "alice", State: "closed", CreatedAt: "2025-09-25T15:00:00Z", ClosedAt: "2025-09-28T10:00:00Z", Comments: 3, OpenDurationDays: &two},
		{ID: 102, Number: 11, Title: "Bug B", User: "bob", State: "open", CreatedAt: "2025-09-26T08:00:00Z"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteIssuesCSV(&buf, issues))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "id,number,title,user,state,created_at,closed_at,comments,open_duration_days", lines[0])
	// The null duration is an empty trailing cell.
	assert.True(t, strings.HasSuffix(lines[2], ","), "open issue row should end with an empty duration cell")

	loaded, err := ReadIssuesCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, issues, loaded)
}

func TestWriteCSV_EmptyTablesStillWriteHeaders(t *testing.T) {
	var commitsBuf, issuesBuf bytes.Buffer
	require.NoError(t, WriteCommitsCSV(&commitsBuf, domain.CommitTable{}))
	require.NoError(t, WriteIssuesCSV(&issuesBuf, domain.IssueTable{}))

	assert.Equal(t, "sha,author,email,date,message\n", commitsBuf.String())

	commits, err := ReadCommitsCSV(&commitsBuf)
	require.NoError(t, err)
	assert.Empty(t, commits)

	issues, err := ReadIssuesCSV(&issuesBuf)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestReadCSV_RejectsWrongSchema(t *testing.T) {
	t.Run("mismatched header", func(t *testing.T) {
		_, err := ReadCommitsCSV(strings.NewReader("sha,committer,email,date,message\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match schema")
	})

	t.Run("empty input has no header", func(t *testing.T) {
		_, err := ReadIssuesCSV(strings.NewReader(""))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing its header row")
	})

	t.Run("issue header against commit reader", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteIssuesCSV(&buf, domain.IssueTable{}))
		_, err := ReadCommitsCSV(&buf)
		assert.Error(t, err)
	})
}

func TestReadIssuesCSV_MalformedCellsDegrade(t *testing.T) {
	input := "id,number,title,user,state,created_at,closed_at,comments,open_duration_days\n" +
		"not-a-number,12,Bug,alice,open,2025-01-01T00:00:00Z,,what,\n"

	issues, err := ReadIssuesCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, int64(0), issues[0].ID)
	assert.Equal(t, 12, issues[0].Number)
	assert.Equal(t, 0, issues[0].Comments)
	assert.Nil(t, issues[0].OpenDurationDays)
}
