package schedule

import (
	"errors"
	"sort"
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
)

type SkipReason string

const (
	SkipSemester  SkipReason = "semester_not_numeric"
	SkipDiscarded SkipReason = "outside_term_views"
	SkipNoSlots   SkipReason = "no_valid_slots"
)

// SkippedRow records a row that contributed to no bucket.
type SkippedRow struct {
	Line   int
	Code   string
	Reason SkipReason
	Value  string
}

// SlotFailure records a non-blank slot code that could not be decoded.
type SlotFailure struct {
	Line  int
	Code  string
	Index int // 1-based slot column
	Err   error
}

// Bucket is one term view: its schedule entries, its detail records and
// the shifts those entries occupy.
type Bucket struct {
	Key     domain.BucketKey
	Entries []domain.ScheduleEntry
	Details []domain.DetailRecord
	Shifts  domain.ShiftSet

	seen map[domain.SectionKey]bool
}

// Grid assembles the bucket's timetable.
func (b *Bucket) Grid() Grid {
	return Assemble(b.Entries, b.Shifts)
}

// Classification is the result of one Classify call.
type Classification struct {
	buckets      map[domain.BucketKey]*Bucket
	Skipped      []SkippedRow
	SlotFailures []SlotFailure
}

// Bucket looks up a term view by key.
func (c *Classification) Bucket(key domain.BucketKey) (*Bucket, bool) {
	b, ok := c.buckets[key]
	return b, ok
}

// Ordered returns the non-empty buckets: odd semesters ascending, then
// re-offerings, then electives.
func (c *Classification) Ordered() []*Bucket {
	out := make([]*Bucket, 0, len(c.buckets))
	for _, b := range c.buckets {
		if len(b.Entries) > 0 {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// Classify places every row into exactly one term view and builds the
// schedule entries and detail records of each view.
//
// A row only reaches a view when its semester is numeric, maps to a view,
// and at least one of its slots decodes. Invalid slots are dropped one by
// one; they never discard the rest of the row.
func Classify(rows []domain.SourceRow) *Classification {
	c := &Classification{buckets: make(map[domain.BucketKey]*Bucket)}

	for _, row := range rows {
		if row.Semester == nil {
			c.skip(row, SkipSemester)
			continue
		}
		key := domain.BucketFor(row.Semester)
		if key.Kind == domain.BucketDiscarded {
			c.skip(row, SkipDiscarded)
			continue
		}

		entries := c.decodeRow(row)
		if len(entries) == 0 {
			c.skip(row, SkipNoSlots)
			continue
		}

		c.bucket(key).add(row, entries)
	}

	for _, b := range c.buckets {
		sort.SliceStable(b.Details, func(i, j int) bool {
			return b.Details[i].CourseName < b.Details[j].CourseName
		})
	}

	return c
}

func (c *Classification) decodeRow(row domain.SourceRow) []domain.ScheduleEntry {
	var entries []domain.ScheduleEntry
	for i, slot := range row.Slots {
		if domain.IsBlank(slot.Code) {
			continue
		}
		decoded, err := Decode(slot.Code)
		if err != nil {
			c.SlotFailures = append(c.SlotFailures, SlotFailure{
				Line:  row.Line,
				Code:  row.Code,
				Index: i + 1,
				Err:   err,
			})
			continue
		}
		entries = append(entries, domain.ScheduleEntry{
			TimeRange: decoded.TimeRange,
			Weekday:   decoded.Weekday,
			Shift:     decoded.Shift,
			Content:   EntryContent(row, slot.Room),
			Section:   row.Key(),
		})
	}
	return entries
}

func (c *Classification) bucket(key domain.BucketKey) *Bucket {
	b, ok := c.buckets[key]
	if !ok {
		b = &Bucket{
			Key:    key,
			Shifts: domain.NewShiftSet(),
			seen:   make(map[domain.SectionKey]bool),
		}
		c.buckets[key] = b
	}
	return b
}

func (c *Classification) skip(row domain.SourceRow, reason SkipReason) {
	c.Skipped = append(c.Skipped, SkippedRow{
		Line:   row.Line,
		Code:   row.Code,
		Reason: reason,
		Value:  row.SemesterRaw,
	})
}

func (b *Bucket) add(row domain.SourceRow, entries []domain.ScheduleEntry) {
	b.Entries = append(b.Entries, entries...)
	for s := range ShiftsOf(entries) {
		b.Shifts.Add(s)
	}

	key := row.Key()
	if b.seen[key] {
		return
	}
	b.seen[key] = true
	b.Details = append(b.Details, domain.DetailRecord{
		Code:       row.Code,
		CourseName: row.CourseName,
		Section:    row.Section,
		Instructor: row.Instructor,
		Department: row.Department,
		Room:       cleanRoom(row.Slots[0].Room),
		Campus:     row.Campus,
	})
}

// EntryContent is the cell text of a term timetable:
// "<code> - <name> <section> - sala <room>".
func EntryContent(row domain.SourceRow, room string) string {
	return row.Code + " - " + row.DisplayName() + " - " + RoomLabel(room)
}

// RoomLabel renders a room for term timetables.
func RoomLabel(room string) string {
	if r := cleanRoom(room); r != "" {
		return "sala " + r
	}
	return "sala indefinida"
}

func cleanRoom(room string) string {
	if domain.IsBlank(room) {
		return ""
	}
	return strings.TrimSpace(room)
}

// IsDecodeFailure reports whether err came from Decode.
func IsDecodeFailure(err error) bool {
	return errors.Is(err, ErrMalformedCode) ||
		errors.Is(err, ErrUnknownWeekday) ||
		errors.Is(err, ErrUnknownShift) ||
		errors.Is(err, ErrSlotOutOfRange)
}
