package domain

// ScheduleEntry is one course occupying one weekday/time-range cell.
type ScheduleEntry struct {
	TimeRange string
	Weekday   Weekday
	Shift     Shift
	Content   string
	Section   SectionKey
}

// DetailRecord is one row of the metadata table shown below a grid.
type DetailRecord struct {
	Code       string
	CourseName string
	Section    string
	Instructor string
	Department string
	Room       string
	Campus     string
}

func (d DetailRecord) Key() SectionKey {
	return SectionKey{Code: d.Code, Section: d.Section}
}
