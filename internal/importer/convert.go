package importer

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
)

// Convert turns raw sheet rows into source rows. It never fails: invalid
// numbers fall back to their documented defaults and the classification
// step decides what to do with each row.
func Convert(raw []map[string]string) []domain.SourceRow {
	return ConvertRecords(Normalize(raw))
}

// Normalize applies NormalizeRecord to every raw row.
func Normalize(raw []map[string]string) []Record {
	recs := make([]Record, 0, len(raw))
	for _, m := range raw {
		recs = append(recs, NormalizeRecord(m))
	}
	return recs
}

// ConvertRecords maps normalised records onto source rows, numbering
// them from 1 in input order.
func ConvertRecords(recs []Record) []domain.SourceRow {
	rows := make([]domain.SourceRow, 0, len(recs))
	for i, rec := range recs {
		rows = append(rows, ConvertRecord(i+1, rec))
	}
	return rows
}

// ConvertRecord maps one normalised record onto a SourceRow.
func ConvertRecord(line int, rec Record) domain.SourceRow {
	row := domain.SourceRow{
		Line:        line,
		Code:        rec.Get(ColCode),
		CourseName:  rec.Get(ColCourseName),
		Section:     rec.Get(ColSection),
		Instructor:  rec.Get(ColInstructor),
		Department:  rec.Get(ColDepartment),
		Campus:      rec.Get(ColCampus),
		SemesterRaw: rec.Get(ColSemester),
		Semester:    ParseSemester(rec.Get(ColSemester)),
		Credits:     ParseCredits(rec.Get(ColCredits)),
		Students:    CountStudents(rec.Get(ColStudents)),
	}
	for i := range row.Slots {
		row.Slots[i] = domain.SlotAssignment{
			Code: rec.Get(SlotColumn(i + 1)),
			Room: rec.Get(RoomColumn(i + 1)),
		}
	}
	return row
}

// ParseSemester returns nil unless v is an integer.
func ParseSemester(v string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}

// ParseCredits returns the credit count, or 0 when v is not a
// non-negative integer.
func ParseCredits(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CountStudents estimates enrolment from a comma-separated id list.
func CountStudents(v string) int {
	n := 0
	for _, id := range strings.Split(v, ",") {
		if strings.TrimSpace(id) != "" {
			n++
		}
	}
	return n
}
