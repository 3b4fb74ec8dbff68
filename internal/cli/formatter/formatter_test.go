package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/horarios/internal/domain"
	"github.com/alexanderramin/horarios/internal/report"
	"github.com/alexanderramin/horarios/internal/schedule"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{
		{"wide cell", "x"},
		{StyleRed.Render("red"), "y"},
		{"short"},
	})
	lines := strings.Split(strings.TrimRight(stripANSI(out), "\n"), "\n")
	require.Len(t, lines, 5)

	col := len("wide cell") + colGap
	assert.Equal(t, col, strings.Index(lines[0], "LONGER"))
	assert.Equal(t, col, strings.Index(lines[2], "x"))
	assert.Equal(t, col, strings.Index(lines[3], "y"), "styled cells pad by visible width")
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat("─", len("wide cell"))))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestShiftBadges(t *testing.T) {
	got := ShiftBadges([]domain.Shift{domain.ShiftMorning, domain.ShiftEvening})
	assert.Equal(t, 3, lipgloss.Width(got))
	assert.Contains(t, got, "M")
	assert.Contains(t, got, "N")
	assert.Equal(t, "-", strings.TrimSpace(stripANSI(ShiftBadges(nil))))
}

func stripANSI(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && r == 'm':
			esc = false
		case !esc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatSummary(t *testing.T) {
	v := SummaryView{
		RunID: "run-1",
		Rows:  4,
		Buckets: []report.BucketSummary{
			{Title: "1º semestre", Courses: 2, Entries: 5, Shifts: []domain.Shift{domain.ShiftMorning}},
			{Title: "Optativas", Courses: 1, Entries: 1, Shifts: []domain.Shift{domain.ShiftEvening}},
		},
		Skipped: []schedule.SkippedRow{
			{Line: 3, Reason: schedule.SkipSemester},
			{Line: 4, Reason: schedule.SkipSemester},
		},
		Failures: []schedule.SlotFailure{{Line: 4, Index: 1, Err: errors.New("bad")}},
	}

	out := stripANSI(FormatSummary(v))
	assert.Contains(t, out, "TERM VIEWS")
	assert.Contains(t, out, "1º semestre")
	assert.Contains(t, out, "Optativas")
	assert.Contains(t, out, "4 rows read")
	assert.Contains(t, out, "SKIPPED ROWS")
	assert.Contains(t, out, string(schedule.SkipSemester))
	assert.Contains(t, out, "1 slot code(s) could not be decoded")
	assert.Less(t, strings.Index(out, "1º semestre"), strings.Index(out, "Optativas"))
}

func TestFormatSummary_Empty(t *testing.T) {
	out := stripANSI(FormatSummary(SummaryView{RunID: "r"}))
	assert.Contains(t, out, "No timetable could be built")
	assert.NotContains(t, out, "SKIPPED ROWS")
}
