package domain

// Weekday is a teaching day. Only Monday through Friday are scheduled.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays is the fixed column order of every timetable.
var Weekdays = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = [...]string{
	Monday:    "segunda-feira",
	Tuesday:   "terça-feira",
	Wednesday: "quarta-feira",
	Thursday:  "quinta-feira",
	Friday:    "sexta-feira",
}

var weekdayTitles = [...]string{
	Monday:    "Segunda-feira",
	Tuesday:   "Terça-feira",
	Wednesday: "Quarta-feira",
	Thursday:  "Quinta-feira",
	Friday:    "Sexta-feira",
}

// WeekdayFromCode maps the first digit of a slot code ('2'..'6') to a weekday.
func WeekdayFromCode(c byte) (Weekday, bool) {
	if c < '2' || c > '6' {
		return 0, false
	}
	return Weekday(c - '2'), true
}

// Valid reports whether d is one of the five teaching days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Friday
}

// String returns the lower-case name used as the pivot key.
func (d Weekday) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return weekdayNames[d]
}

// Title returns the capitalised name used in table headers.
func (d Weekday) Title() string {
	if !d.Valid() {
		return "Unknown"
	}
	return weekdayTitles[d]
}
