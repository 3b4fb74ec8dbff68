// Package report runs one batch: fetch the sheet, classify its rows and
// render the requested output.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexanderramin/horarios/internal/domain"
	"github.com/alexanderramin/horarios/internal/importer"
	"github.com/alexanderramin/horarios/internal/render"
	"github.com/alexanderramin/horarios/internal/schedule"
	"github.com/alexanderramin/horarios/internal/source"
)

// Builder turns a row source into timetables.
type Builder struct {
	source   source.RowSource
	logger   *zap.Logger
	observer UseCaseObserver
	now      func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

func WithObserver(o UseCaseObserver) Option {
	return func(b *Builder) {
		if o != nil {
			b.observer = o
		}
	}
}

// WithClock replaces time.Now, for the last-updated stamp and durations.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

func NewBuilder(src source.RowSource, opts ...Option) *Builder {
	b := &Builder{
		source:   src,
		logger:   zap.NewNop(),
		observer: NoopUseCaseObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is everything derived from one fetch of the sheet.
type Result struct {
	RunID          string
	GeneratedAt    time.Time
	Rows           []domain.SourceRow
	Classification *schedule.Classification
	Sections       []render.Section
	ColumnProblems []error
}

// BucketSummary describes one rendered term view.
type BucketSummary struct {
	Title   string
	Courses int
	Entries int
	Shifts  []domain.Shift
}

// Summary lists the rendered term views in output order.
func (r *Result) Summary() []BucketSummary {
	out := make([]BucketSummary, 0, len(r.Sections))
	for _, b := range r.Classification.Ordered() {
		out = append(out, BucketSummary{
			Title:   b.Key.Title(),
			Courses: len(b.Details),
			Entries: len(b.Entries),
			Shifts:  b.Shifts.Sorted(),
		})
	}
	return out
}

// Instructors groups the fetched rows per instructor.
func (r *Result) Instructors() []*schedule.InstructorSchedule {
	return schedule.ByInstructor(r.Rows)
}

// Build fetches every row and classifies it. A source failure aborts the
// run; row and slot problems are logged and skipped.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	return b.build(ctx, uuid.NewString())
}

func (b *Builder) build(ctx context.Context, runID string) (res *Result, err error) {
	start := b.now()
	log := b.logger.With(zap.String("run_id", runID))
	defer func() {
		fields := map[string]any{}
		if res != nil {
			fields["rows"] = len(res.Rows)
			fields["sections"] = len(res.Sections)
			fields["skipped_rows"] = len(res.Classification.Skipped)
			fields["skipped_slots"] = len(res.Classification.SlotFailures)
		}
		b.observe(ctx, "build_timetables", runID, start, err, fields)
	}()

	raw, err := b.source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching rows: %w", err)
	}

	records := importer.Normalize(raw)
	problems := importer.ValidateColumns(records)
	for _, p := range problems {
		log.Warn("sheet column check failed", zap.Error(p))
	}

	rows := importer.ConvertRecords(records)
	c := schedule.Classify(rows)
	logSkips(log, c)

	ordered := c.Ordered()
	sections := make([]render.Section, 0, len(ordered))
	for _, bucket := range ordered {
		sections = append(sections, render.NewSection(bucket))
	}

	return &Result{
		RunID:          runID,
		GeneratedAt:    start,
		Rows:           rows,
		Classification: c,
		Sections:       sections,
		ColumnProblems: problems,
	}, nil
}

func logSkips(log *zap.Logger, c *schedule.Classification) {
	for _, s := range c.Skipped {
		fields := []zap.Field{
			zap.Int("line", s.Line),
			zap.String("code", s.Code),
			zap.String("reason", string(s.Reason)),
			zap.String("semester", s.Value),
		}
		switch s.Reason {
		case schedule.SkipSemester:
			log.Warn("row skipped", fields...)
		case schedule.SkipNoSlots:
			log.Info("row skipped", fields...)
		default:
			log.Debug("row skipped", fields...)
		}
	}
	for _, f := range c.SlotFailures {
		log.Debug("slot skipped",
			zap.Int("line", f.Line),
			zap.String("code", f.Code),
			zap.Int("slot", f.Index),
			zap.Bool("decode_failure", schedule.IsDecodeFailure(f.Err)),
			zap.Error(f.Err),
		)
	}
}

// RenderHTML builds the term timetables document.
func (b *Builder) RenderHTML(ctx context.Context, w io.Writer, opts PageOptions) (*Result, error) {
	res, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}
	start := b.now()
	err = render.Document(w, res.Sections, opts.forRun(res))
	b.observe(ctx, "render_html", res.RunID, start, err, map[string]any{"sections": len(res.Sections)})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RenderInstructors builds the per-instructor report.
func (b *Builder) RenderInstructors(ctx context.Context, w io.Writer, opts PageOptions) (*Result, error) {
	res, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}
	start := b.now()
	instructors := res.Instructors()
	err = render.InstructorReport(w, instructors, opts.forRun(res))
	b.observe(ctx, "render_instructors", res.RunID, start, err, map[string]any{"instructors": len(instructors)})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RenderCalendar exports every term view as one iCalendar feed.
func (b *Builder) RenderCalendar(ctx context.Context, w io.Writer, opts render.CalendarOptions) (*Result, error) {
	res, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}
	start := b.now()
	if opts.Stamp.IsZero() {
		opts.Stamp = res.GeneratedAt
	}
	err = render.Calendar(w, res.Sections, opts)
	b.observe(ctx, "render_calendar", res.RunID, start, err, map[string]any{"weeks": opts.Weeks})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// PageOptions control the HTML page around the tables.
type PageOptions struct {
	Title       string
	Standalone  bool
	ShowUpdated bool // footer stamped with the run's start time
	Location    *time.Location
}

func (p PageOptions) forRun(res *Result) render.Options {
	opts := render.Options{Title: p.Title, Standalone: p.Standalone, Location: p.Location}
	if p.ShowUpdated {
		opts.UpdatedAt = res.GeneratedAt
	}
	return opts
}

func (b *Builder) observe(ctx context.Context, name, runID string, start time.Time, err error, fields map[string]any) {
	b.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		RunID:     runID,
		Duration:  b.now().Sub(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
