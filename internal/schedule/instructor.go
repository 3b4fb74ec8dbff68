package schedule

import (
	"sort"
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
)

// CourseLoad is one line of an instructor's course table.
type CourseLoad struct {
	Code     string
	Name     string // course name with section
	Credits  int
	Students int
}

// InstructorSchedule is the per-instructor view: every course the
// instructor teaches plus the timetable of the slots that decoded.
type InstructorSchedule struct {
	Name    string
	Courses []CourseLoad
	Entries []domain.ScheduleEntry
	Shifts  domain.ShiftSet
}

// TotalCredits sums the credits of every course line.
func (s *InstructorSchedule) TotalCredits() int {
	total := 0
	for _, c := range s.Courses {
		total += c.Credits
	}
	return total
}

// Grid assembles the instructor's timetable. An instructor with no
// decodable slot gets an empty grid.
func (s *InstructorSchedule) Grid() Grid {
	return Assemble(s.Entries, s.Shifts)
}

// ByInstructor groups rows by instructor, regardless of semester. Rows with
// a blank instructor are left out. The result is sorted by name.
func ByInstructor(rows []domain.SourceRow) []*InstructorSchedule {
	byName := make(map[string]*InstructorSchedule)
	for _, row := range rows {
		name := strings.TrimSpace(row.Instructor)
		if name == "" {
			continue
		}
		s, ok := byName[name]
		if !ok {
			s = &InstructorSchedule{Name: name, Shifts: domain.NewShiftSet()}
			byName[name] = s
		}

		s.Courses = append(s.Courses, CourseLoad{
			Code:     row.Code,
			Name:     row.DisplayName(),
			Credits:  row.Credits,
			Students: row.Students,
		})

		for _, slot := range row.Slots {
			decoded, err := Decode(slot.Code)
			if err != nil {
				continue
			}
			s.Entries = append(s.Entries, domain.ScheduleEntry{
				TimeRange: decoded.TimeRange,
				Weekday:   decoded.Weekday,
				Shift:     decoded.Shift,
				Content:   InstructorContent(row, slot.Room),
				Section:   row.Key(),
			})
			s.Shifts.Add(decoded.Shift)
		}
	}

	out := make([]*InstructorSchedule, 0, len(byName))
	for _, s := range byName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// InstructorContent is the cell text of an instructor timetable. The three
// parts are newline separated; the renderer lays them out.
func InstructorContent(row domain.SourceRow, room string) string {
	r := cleanRoom(room)
	if r == "" {
		r = "Sala Indef."
	}
	return row.Code + "\n" + row.DisplayName() + "\n" + r
}
