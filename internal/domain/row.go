package domain

// MaxSlots is the number of (slot code, room) column pairs per row.
const MaxSlots = 6

// SlotAssignment is one "horario N" / "sala N" column pair.
type SlotAssignment struct {
	Code string
	Room string
}

// SourceRow is one course-section record from the schedule sheet.
type SourceRow struct {
	Line int // 1-based data line in the source, for logs

	Code        string
	CourseName  string
	Section     string
	Credits     int
	Instructor  string
	Department  string
	Campus      string
	Students    int
	SemesterRaw string
	// Semester is nil when SemesterRaw is not an integer.
	Semester *int

	Slots [MaxSlots]SlotAssignment
}

// Key returns the structural identity of the section.
func (r SourceRow) Key() SectionKey {
	return SectionKey{Code: r.Code, Section: r.Section}
}

// DisplayName joins the course name and section, as instructors see it.
func (r SourceRow) DisplayName() string {
	if r.Section == "" {
		return r.CourseName
	}
	return r.CourseName + " " + r.Section
}

// SectionKey identifies a course section independent of how it is displayed.
type SectionKey struct {
	Code    string
	Section string
}
