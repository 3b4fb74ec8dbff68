package domain

import "sort"

// Shift is one of the three daily teaching periods.
type Shift int

const (
	ShiftMorning   Shift = 1
	ShiftAfternoon Shift = 2
	ShiftEvening   Shift = 3
)

// shiftCalendar holds the fixed time ranges of each shift, in order.
var shiftCalendar = map[Shift][]string{
	ShiftMorning:   {"08:00-08:50", "08:50-09:40", "10:00-10:50", "10:50-11:40", "11:40-12:30"},
	ShiftAfternoon: {"13:30-14:20", "14:20-15:10", "15:10-16:00", "16:00-16:50", "17:10-18:00", "18:00-18:50"},
	ShiftEvening:   {"19:00-19:50", "19:50-20:40", "20:40-21:30", "21:30-22:20", "22:20-23:10"},
}

// ShiftFromCode maps the second digit of a slot code ('1'..'3') to a shift.
func ShiftFromCode(c byte) (Shift, bool) {
	s := Shift(c - '0')
	if c < '0' || c > '9' || !s.Valid() {
		return 0, false
	}
	return s, true
}

// Valid reports whether s is one of the three teaching shifts.
func (s Shift) Valid() bool {
	_, ok := shiftCalendar[s]
	return ok
}

// TimeRanges returns a copy of the shift's ordered time-range labels.
func (s Shift) TimeRanges() []string {
	ranges := shiftCalendar[s]
	out := make([]string, len(ranges))
	copy(out, ranges)
	return out
}

// TimeRange returns the label at the 0-based position within the shift.
func (s Shift) TimeRange(pos int) (string, bool) {
	ranges := shiftCalendar[s]
	if pos < 0 || pos >= len(ranges) {
		return "", false
	}
	return ranges[pos], true
}

func (s Shift) String() string {
	switch s {
	case ShiftMorning:
		return "morning"
	case ShiftAfternoon:
		return "afternoon"
	case ShiftEvening:
		return "evening"
	default:
		return "unknown"
	}
}

// ShiftSet is the set of shifts used by a group of entries.
type ShiftSet map[Shift]struct{}

// NewShiftSet returns a set holding the given shifts.
func NewShiftSet(shifts ...Shift) ShiftSet {
	set := make(ShiftSet, len(shifts))
	for _, s := range shifts {
		set.Add(s)
	}
	return set
}

// Add puts s in the set.
func (ss ShiftSet) Add(s Shift) {
	ss[s] = struct{}{}
}

// Has reports whether s is in the set.
func (ss ShiftSet) Has(s Shift) bool {
	_, ok := ss[s]
	return ok
}

// Sorted returns the shifts in ascending numeric order.
func (ss ShiftSet) Sorted() []Shift {
	out := make([]Shift, 0, len(ss))
	for s := range ss {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
