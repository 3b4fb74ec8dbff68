package render

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/alexanderramin/horarios/internal/domain"
)

// CalendarOptions place the weekly timetable on real dates.
type CalendarOptions struct {
	Name      string
	TermStart time.Time // first day of term; its location is used for every event
	Weeks     int       // recurrence count of each weekly event
	Stamp     time.Time // DTSTAMP; defaults to TermStart
}

// Calendar writes every entry of every section as a weekly recurring
// event. Each event starts on the first matching weekday on or after the
// term start.
func Calendar(w io.Writer, sections []Section, opts CalendarOptions) error {
	if opts.Weeks <= 0 {
		return fmt.Errorf("calendar: weeks must be positive, got %d", opts.Weeks)
	}
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = opts.TermStart
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//horarios//timetable//PT")
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	for _, sec := range sections {
		for _, e := range sec.Entries {
			start, end, err := occurrence(opts.TermStart, e)
			if err != nil {
				return err
			}
			event := cal.AddEvent(eventID(sec.Title, e))
			event.SetDtStampTime(stamp)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(e.Content)
			event.SetDescription(sec.Title)
			event.SetProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", opts.Weeks))
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// occurrence returns the first start and end of e on or after termStart.
func occurrence(termStart time.Time, e domain.ScheduleEntry) (time.Time, time.Time, error) {
	from, to, ok := strings.Cut(e.TimeRange, "-")
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("calendar: bad time range %q", e.TimeRange)
	}
	startClock, err := time.Parse("15:04", from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("calendar: bad time range %q: %w", e.TimeRange, err)
	}
	endClock, err := time.Parse("15:04", to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("calendar: bad time range %q: %w", e.TimeRange, err)
	}

	want := time.Weekday(int(e.Weekday) + 1)
	offset := (int(want) - int(termStart.Weekday()) + 7) % 7
	y, m, d := termStart.AddDate(0, 0, offset).Date()
	loc := termStart.Location()

	start := time.Date(y, m, d, startClock.Hour(), startClock.Minute(), 0, 0, loc)
	end := time.Date(y, m, d, endClock.Hour(), endClock.Minute(), 0, 0, loc)
	return start, end, nil
}

// eventID is stable across runs for the same term view, content, weekday
// and time range.
func eventID(title string, e domain.ScheduleEntry) string {
	hash := md5.New()
	hash.Write([]byte(title + e.Content + e.Weekday.String() + e.TimeRange))
	return hex.EncodeToString(hash.Sum(nil)) + "@horarios"
}
