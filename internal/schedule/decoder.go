package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
)

// Decode failures. None of them is fatal: a slot that fails to decode is
// dropped and the rest of the row is still processed.
var (
	ErrMalformedCode  = errors.New("malformed slot code")
	ErrUnknownWeekday = errors.New("unknown weekday")
	ErrUnknownShift   = errors.New("unknown shift")
	ErrSlotOutOfRange = errors.New("slot out of range")
)

// Slot is a decoded slot code.
type Slot struct {
	Weekday   domain.Weekday
	Shift     domain.Shift
	Position  int // 0-based index into the shift's time ranges
	TimeRange string
}

// Decode turns a slot code such as "211" into its weekday and time range.
//
// The code must be an optionally signed run of decimal digits and is read
// from its canonical form, so "0211" and " 211 " decode like "211". Digits
// past the third are ignored, however many there are. Blank input is
// reported as ErrMalformedCode, which callers treat as "no class in this
// slot".
func Decode(code string) (Slot, error) {
	digits, ok := canonicalDigits(strings.TrimSpace(code))
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", ErrMalformedCode, code)
	}
	if len(digits) < 3 {
		return Slot{}, fmt.Errorf("%w: %q has fewer than 3 digits", ErrMalformedCode, code)
	}

	day, ok := domain.WeekdayFromCode(digits[0])
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, digits[:1])
	}
	shift, ok := domain.ShiftFromCode(digits[1])
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", ErrUnknownShift, digits[1:2])
	}
	pos := int(digits[2]-'0') - 1
	timeRange, ok := shift.TimeRange(pos)
	if !ok {
		return Slot{}, fmt.Errorf("%w: position %d in %s shift", ErrSlotOutOfRange, pos+1, shift)
	}

	return Slot{
		Weekday:   day,
		Shift:     shift,
		Position:  pos,
		TimeRange: timeRange,
	}, nil
}

// canonicalDigits returns the integer form of s without leading zeros,
// keeping a minus sign for negative values. It accepts any length.
func canonicalDigits(s string) (string, bool) {
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0", true
	}
	if neg {
		s = "-" + s
	}
	return s, true
}
