package schedule

import (
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
)

// CellSeparator joins the contents of colliding entries for display.
const CellSeparator = "<br>"

// Cell holds every entry that landed on one weekday/time-range, in input order.
type Cell []string

// Joined merges the cell's contents with sep.
func (c Cell) Joined(sep string) string {
	return strings.Join(c, sep)
}

// GridRow is either a shift-break marker or a time range with one cell per
// weekday, indexed by domain.Weekday.
type GridRow struct {
	Break     bool
	Shift     domain.Shift
	TimeRange string
	Cells     [len(domain.Weekdays)]Cell
}

// Cell returns the merged contents for day.
func (r GridRow) Cell(day domain.Weekday) Cell {
	if r.Break || !day.Valid() {
		return nil
	}
	return r.Cells[day]
}

// Grid is the day × time-range table for one group of entries.
// Empty marks a group with no schedule at all.
type Grid struct {
	Empty bool
	Rows  []GridRow
}

// Breaks counts the shift-break rows.
func (g Grid) Breaks() int {
	n := 0
	for _, r := range g.Rows {
		if r.Break {
			n++
		}
	}
	return n
}

type cellKey struct {
	timeRange string
	day       domain.Weekday
}

// ShiftsOf collects the shifts used by entries. It is the only way the
// grouping engine builds a ShiftSet, which keeps every assembled shift
// backed by at least one decoded entry.
func ShiftsOf(entries []domain.ScheduleEntry) domain.ShiftSet {
	set := domain.NewShiftSet()
	for _, e := range entries {
		set.Add(e.Shift)
	}
	return set
}

// Assemble pivots entries into a grid covering every time range of the
// given shifts, in shift order, with a break row between consecutive
// shifts. Time ranges without entries stay as empty rows.
func Assemble(entries []domain.ScheduleEntry, shifts domain.ShiftSet) Grid {
	ordered := shifts.Sorted()
	valid := ordered[:0]
	for _, s := range ordered {
		if s.Valid() {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return Grid{Empty: true}
	}

	merged := make(map[cellKey]Cell, len(entries))
	for _, e := range entries {
		k := cellKey{timeRange: e.TimeRange, day: e.Weekday}
		merged[k] = append(merged[k], e.Content)
	}

	var rows []GridRow
	for i, s := range valid {
		if i > 0 {
			rows = append(rows, GridRow{Break: true})
		}
		for _, tr := range s.TimeRanges() {
			row := GridRow{Shift: s, TimeRange: tr}
			for _, day := range domain.Weekdays {
				row.Cells[day] = merged[cellKey{timeRange: tr, day: day}]
			}
			rows = append(rows, row)
		}
	}

	return Grid{Rows: rows}
}
