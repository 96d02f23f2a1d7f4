package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/MALLI7622/repo-miner/internal/domain"
)

// Recognized summary report formats.
const (
	TextFormat  = "text"
	TableFormat = "table"
)

// WriteSummary renders the summary report, dispatching on the requested
// format.
func WriteSummary(w io.Writer, summary domain.Summary, format string) error {
	switch format {
	case TextFormat:
		return WriteSummaryText(w, summary)
	case TableFormat:
		return WriteSummaryTable(w, summary)
	}
	return fmt.Errorf("unknown report format %q: must be %q or %q", format, TextFormat, TableFormat)
}

// WriteSummaryText renders the summary as plain report lines.
func WriteSummaryText(w io.Writer, summary domain.Summary) error {
	if _, err := fmt.Fprintln(w, "Top 5 committers"); err != nil {
		return err
	}
	if len(summary.TopCommitters) == 0 {
		if _, err := fmt.Fprintln(w, "- (no commits)"); err != nil {
			return err
		}
	}
	for _, committer := range summary.TopCommitters {
		if _, err := fmt.Fprintf(w, "- %s: %d commits\n", committer.Author, committer.Commits); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Issue close rate: %.2f\n", summary.CloseRate); err != nil {
		return err
	}

	if summary.AvgOpenAvailable {
		_, err := fmt.Fprintf(w, "Avg. issue open duration: %.2f days\n", summary.AvgOpenDays)
		return err
	}
	_, err := fmt.Fprintln(w, "Avg. issue open duration: N/A")
	return err
}

// WriteSummaryTable renders the summary as a human-readable table.
func WriteSummaryTable(w io.Writer, summary domain.Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})

	data := make([][]string, 0, len(summary.TopCommitters)+2)
	if len(summary.TopCommitters) == 0 {
		data = append(data, []string{"Top committers", "(no commits)"})
	}
	for i, committer := range summary.TopCommitters {
		label := fmt.Sprintf("Top committer #%d", i+1)
		data = append(data, []string{label, fmt.Sprintf("%s (%d commits)", committer.Author, committer.Commits)})
	}
	data = append(data, []string{"Issue close rate", strconv.FormatFloat(summary.CloseRate, 'f', 2, 64)})

	avg := "N/A"
	if summary.AvgOpenAvailable {
		avg = fmt.Sprintf("%.2f days", summary.AvgOpenDays)
	}
	data = append(data, []string{"Avg. issue open duration", avg})

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
