// Package outwriter writes the tabular schemas and the summary report to
// their output formats, and reads the schemas back for summarization.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/MALLI7622/repo-miner/internal/domain"
)

// WriteCommitsCSV writes the commit table with its fixed header row.
func WriteCommitsCSV(w io.Writer, commits domain.CommitTable) error {
	return writeCSVWithHeader(w, domain.CommitColumns, func(cw *csv.Writer) error {
		for _, commit := range commits {
			rec := []string{commit.SHA, commit.Author, commit.Email, commit.Date, commit.Message}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteIssuesCSV writes the issue table with its fixed header row. A nil
// open duration becomes an empty cell.
func WriteIssuesCSV(w io.Writer, issues domain.IssueTable) error {
	return writeCSVWithHeader(w, domain.IssueColumns, func(cw *csv.Writer) error {
		for _, issue := range issues {
			duration := ""
			if issue.OpenDurationDays != nil {
				duration = strconv.Itoa(*issue.OpenDurationDays)
			}
			rec := []string{
				strconv.FormatInt(issue.ID, 10),
				strconv.Itoa(issue.Number),
				issue.Title,
				issue.User,
				issue.State,
				issue.CreatedAt,
				issue.ClosedAt,
				strconv.Itoa(issue.Comments),
				duration,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadCommitsCSV loads a commit table previously written by
// WriteCommitsCSV, rejecting files whose header does not match the
// schema.
func ReadCommitsCSV(r io.Reader) (domain.CommitTable, error) {
	rows, err := readRows(r, domain.CommitColumns, "commits")
	if err != nil {
		return nil, err
	}
	table := make(domain.CommitTable, 0, len(rows))
	for _, row := range rows {
		table = append(table, domain.CommitRecord{
			SHA:     row[0],
			Author:  row[1],
			Email:   row[2],
			Date:    row[3],
			Message: row[4],
		})
	}
	return table, nil
}

// ReadIssuesCSV loads an issue table previously written by
// WriteIssuesCSV. Malformed numeric cells degrade to zero and malformed
// duration cells to null; individual fields never fail the load.
func ReadIssuesCSV(r io.Reader) (domain.IssueTable, error) {
	rows, err := readRows(r, domain.IssueColumns, "issues")
	if err != nil {
		return nil, err
	}
	table := make(domain.IssueTable, 0, len(rows))
	for _, row := range rows {
		record := domain.IssueRecord{
			ID:        parseInt64Cell(row[0]),
			Number:    parseIntCell(row[1]),
			Title:     row[2],
			User:      row[3],
			State:     row[4],
			CreatedAt: row[5],
			ClosedAt:  row[6],
			Comments:  parseIntCell(row[7]),
		}
		if days, err := strconv.Atoi(row[8]); err == nil {
			record.OpenDurationDays = &days
		}
		table = append(table, record)
	}
	return table, nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(cw); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// readRows reads and strips the header row, verifying it matches the
// expected schema columns.
func readRows(r io.Reader, columns []string, schema string) ([][]string, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", schema, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s CSV is missing its header row", schema)
	}
	if !equalColumns(rows[0], columns) {
		return nil, fmt.Errorf("%s CSV header %v does not match schema %v", schema, rows[0], columns)
	}
	return rows[1:], nil
}

func equalColumns(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func parseIntCell(cell string) int {
	n, _ := strconv.Atoi(cell)
	return n
}

func parseInt64Cell(cell string) int64 {
	n, _ := strconv.ParseInt(cell, 10, 64)
	return n
}
