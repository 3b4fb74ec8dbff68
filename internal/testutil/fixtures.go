package testutil

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
)

// Row options
type RowOption func(*domain.SourceRow)

func WithName(name string) RowOption {
	return func(r *domain.SourceRow) {
		r.CourseName = name
	}
}

func WithSection(section string) RowOption {
	return func(r *domain.SourceRow) {
		r.Section = section
	}
}

func WithInstructor(name string) RowOption {
	return func(r *domain.SourceRow) {
		r.Instructor = name
	}
}

func WithCredits(n int) RowOption {
	return func(r *domain.SourceRow) {
		r.Credits = n
	}
}

func WithStudents(n int) RowOption {
	return func(r *domain.SourceRow) {
		r.Students = n
	}
}

// WithSlot sets slot column i (1-based) to the given code and room.
func WithSlot(i int, code, room string) RowOption {
	return func(r *domain.SourceRow) {
		r.Slots[i-1] = domain.SlotAssignment{Code: code, Room: room}
	}
}

// WithSlots fills the slot columns in order, leaving rooms blank.
func WithSlots(codes ...string) RowOption {
	return func(r *domain.SourceRow) {
		for i, c := range codes {
			r.Slots[i].Code = c
		}
	}
}

func WithLine(n int) RowOption {
	return func(r *domain.SourceRow) {
		r.Line = n
	}
}

// NewTestRow builds a row for the given course code and raw semester
// value. The semester is parsed the same way the importer parses it.
func NewTestRow(code, semester string, opts ...RowOption) domain.SourceRow {
	r := domain.SourceRow{
		Code:        code,
		CourseName:  "Course " + code,
		SemesterRaw: semester,
	}
	if n, err := strconv.Atoi(strings.TrimSpace(semester)); err == nil {
		r.Semester = &n
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// SheetRow builds a raw row mapping with the standard sheet columns. Extra
// key/value pairs override or add columns.
func SheetRow(code, name, semester string, kv ...string) map[string]string {
	m := map[string]string{
		"codigo":     code,
		"disciplina": name,
		"semestre":   semester,
	}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}
