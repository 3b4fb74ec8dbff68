package schedule

import (
	"testing"

	"github.com/alexanderramin/horarios/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(code string, content string) domain.ScheduleEntry {
	slot, err := Decode(code)
	if err != nil {
		panic(err)
	}
	return domain.ScheduleEntry{
		TimeRange: slot.TimeRange,
		Weekday:   slot.Weekday,
		Shift:     slot.Shift,
		Content:   content,
	}
}

func TestAssemble_EmptyShiftsIsNoSchedule(t *testing.T) {
	grid := Assemble(nil, domain.NewShiftSet())
	assert.True(t, grid.Empty)
	assert.Empty(t, grid.Rows)

	grid = Assemble([]domain.ScheduleEntry{entry("211", "X")}, nil)
	assert.True(t, grid.Empty)
}

func TestAssemble_MorningAndEveningHaveOneBreak(t *testing.T) {
	entries := []domain.ScheduleEntry{entry("211", "A"), entry("331", "B")}
	grid := Assemble(entries, ShiftsOf(entries))

	require.False(t, grid.Empty)
	assert.Len(t, grid.Rows, 5+5+1)
	assert.Equal(t, 1, grid.Breaks())
	assert.False(t, grid.Rows[0].Break)
	assert.True(t, grid.Rows[5].Break)
	assert.False(t, grid.Rows[len(grid.Rows)-1].Break)
	assert.Equal(t, "19:00-19:50", grid.Rows[6].TimeRange)
}

func TestAssemble_AllShifts(t *testing.T) {
	entries := []domain.ScheduleEntry{entry("331", "C"), entry("211", "A"), entry("421", "B")}
	grid := Assemble(entries, ShiftsOf(entries))

	assert.Len(t, grid.Rows, 5+6+5+2)
	assert.Equal(t, 2, grid.Breaks())
	assert.True(t, grid.Rows[5].Break)
	assert.True(t, grid.Rows[12].Break)
	assert.Equal(t, domain.ShiftAfternoon, grid.Rows[6].Shift)
}

func TestAssemble_SingleShiftHasNoBreak(t *testing.T) {
	entries := []domain.ScheduleEntry{entry("421", "B")}
	grid := Assemble(entries, ShiftsOf(entries))

	assert.Len(t, grid.Rows, 6)
	assert.Zero(t, grid.Breaks())
	assert.Equal(t, "13:30-14:20", grid.Rows[0].TimeRange)
	assert.Equal(t, Cell{"B"}, grid.Rows[0].Cell(domain.Wednesday))
}

func TestAssemble_CollisionsMergedInOrder(t *testing.T) {
	entries := []domain.ScheduleEntry{
		entry("211", "first"),
		entry("212", "other"),
		entry("211", "second"),
	}
	grid := Assemble(entries, ShiftsOf(entries))

	cell := grid.Rows[0].Cell(domain.Monday)
	assert.Equal(t, Cell{"first", "second"}, cell)
	assert.Equal(t, "first<br>second", cell.Joined(CellSeparator))
	assert.Equal(t, Cell{"other"}, grid.Rows[1].Cell(domain.Monday))

	filled := 0
	for _, row := range grid.Rows {
		for _, day := range domain.Weekdays {
			if len(row.Cell(day)) > 0 {
				filled++
			}
		}
	}
	assert.Equal(t, 2, filled, "colliding entries share exactly one cell")
}

func TestAssemble_GapsStayVisible(t *testing.T) {
	entries := []domain.ScheduleEntry{entry("615", "late friday")}
	grid := Assemble(entries, ShiftsOf(entries))

	require.Len(t, grid.Rows, 5)
	for i, row := range grid.Rows[:4] {
		for _, day := range domain.Weekdays {
			assert.Empty(t, row.Cell(day), "row %d day %s", i, day)
		}
	}
	assert.Equal(t, Cell{"late friday"}, grid.Rows[4].Cell(domain.Friday))
	assert.Empty(t, grid.Rows[4].Cell(domain.Monday))
}

func TestAssemble_BreakRowsHaveNoCells(t *testing.T) {
	entries := []domain.ScheduleEntry{entry("211", "A"), entry("221", "B")}
	grid := Assemble(entries, ShiftsOf(entries))

	br := grid.Rows[5]
	require.True(t, br.Break)
	for _, day := range domain.Weekdays {
		assert.Nil(t, br.Cell(day))
	}
}

func TestAssemble_RowsFollowCalendarOrder(t *testing.T) {
	entries := []domain.ScheduleEntry{entry("225", "B"), entry("211", "A")}
	grid := Assemble(entries, ShiftsOf(entries))

	var got []string
	for _, row := range grid.Rows {
		if !row.Break {
			got = append(got, row.TimeRange)
		}
	}
	want := append(domain.ShiftMorning.TimeRanges(), domain.ShiftAfternoon.TimeRanges()...)
	assert.Equal(t, want, got)
}
