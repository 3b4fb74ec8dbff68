package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/horarios/internal/report"
	"github.com/alexanderramin/horarios/internal/schedule"
)

// SummaryView is what the summary command prints for one run.
type SummaryView struct {
	RunID    string
	Rows     int
	Buckets  []report.BucketSummary
	Skipped  []schedule.SkippedRow
	Failures []schedule.SlotFailure
}

// NewSummaryView collects the printable parts of a report result.
func NewSummaryView(res *report.Result) SummaryView {
	return SummaryView{
		RunID:    res.RunID,
		Rows:     len(res.Rows),
		Buckets:  res.Summary(),
		Skipped:  res.Classification.Skipped,
		Failures: res.Classification.SlotFailures,
	}
}

// FormatSummary renders the term views of a run and what was left out.
func FormatSummary(v SummaryView) string {
	var b strings.Builder

	b.WriteString(Header("Term views"))
	b.WriteString("\n\n")

	if len(v.Buckets) == 0 {
		b.WriteString(Dim("No timetable could be built from the sheet."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(v.Buckets))
		for _, s := range v.Buckets {
			rows = append(rows, []string{
				Bold(s.Title),
				strconv.Itoa(s.Courses),
				strconv.Itoa(s.Entries),
				ShiftBadges(s.Shifts),
			})
		}
		b.WriteString(RenderTable([]string{"VIEW", "COURSES", "SLOTS", "SHIFTS"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d rows read", Dim("run "+v.RunID+":"), v.Rows))
	b.WriteString("\n")

	if len(v.Skipped) > 0 {
		counts := make(map[schedule.SkipReason]int)
		for _, s := range v.Skipped {
			counts[s.Reason]++
		}
		reasons := make([]string, 0, len(counts))
		for r := range counts {
			reasons = append(reasons, string(r))
		}
		sort.Strings(reasons)

		b.WriteString("\n")
		b.WriteString(Header("Skipped rows"))
		b.WriteString("\n\n")
		rows := make([][]string, 0, len(reasons))
		for _, r := range reasons {
			rows = append(rows, []string{StyleYellow.Render(r), strconv.Itoa(counts[schedule.SkipReason(r)])})
		}
		b.WriteString(RenderTable([]string{"REASON", "ROWS"}, rows))
	}

	if n := len(v.Failures); n > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d slot code(s) could not be decoded", n)))
		b.WriteString("\n")
	}

	return b.String()
}
