package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/horarios/internal/domain"
	"github.com/alexanderramin/horarios/internal/render"
	"github.com/alexanderramin/horarios/internal/schedule"
	"github.com/alexanderramin/horarios/internal/source"
	"github.com/alexanderramin/horarios/internal/testutil"
	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func sheet() source.Static {
	return source.Static{
		testutil.SheetRow("MAT01", "Cálculo I", "3",
			"turma", "T1", "professor", "Ana Souza", "creditos", "4",
			"horario 1", "211", "sala 1", "101", "horario 2", "312"),
		testutil.SheetRow("ELE01", "Tópicos", "88",
			"professor", "Bruno Lima", "horario 1", "nan"),
		testutil.SheetRow("ESP01", "Estágio", "estágio",
			"horario 1", "211"),
		testutil.SheetRow("FIS05", "Física V", "5",
			"horario 1", "999"),
		testutil.SheetRow("RE02", "Química", "2",
			"horario 1", "321", "sala 1", "Lab 2"),
	}
}

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newTestBuilder(src source.RowSource, opts ...Option) *Builder {
	return NewBuilder(src, append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func TestBuild_ClassifiesAndLogsSkips(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := &recordingObserver{}
	b := newTestBuilder(sheet(), WithLogger(zap.New(core)), WithObserver(rec))

	res, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, fixedNow, res.GeneratedAt)
	assert.Len(t, res.Rows, 5)
	assert.Empty(t, res.ColumnProblems)

	titles := make([]string, len(res.Sections))
	for i, s := range res.Sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{"3º semestre", "Reofertas"}, titles)

	warn := logs.FilterMessage("row skipped").FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warn, 1)
	assert.Equal(t, "ESP01", warn[0].ContextMap()["code"])
	assert.Equal(t, string(schedule.SkipSemester), warn[0].ContextMap()["reason"])
	assert.Equal(t, res.RunID, warn[0].ContextMap()["run_id"])

	info := logs.FilterMessage("row skipped").FilterLevelExact(zapcore.InfoLevel).All()
	assert.Len(t, info, 2, "elective and fifth semester rows have no decodable slot")

	slots := logs.FilterMessage("slot skipped").All()
	require.Len(t, slots, 1)
	assert.Equal(t, "FIS05", slots[0].ContextMap()["code"])
	assert.Equal(t, true, slots[0].ContextMap()["decode_failure"])

	require.Equal(t, []string{"build_timetables"}, rec.names())
	ev := rec.events[0]
	assert.True(t, ev.Success)
	assert.Equal(t, res.RunID, ev.RunID)
	assert.Equal(t, 5, ev.Fields["rows"])
	assert.Equal(t, 2, ev.Fields["sections"])
}

func TestBuild_SourceFailureIsFatal(t *testing.T) {
	rec := &recordingObserver{}
	b := newTestBuilder(source.Static(nil), WithObserver(rec))

	res, err := b.Build(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, source.ErrNoRows)
	assert.True(t, strings.HasPrefix(err.Error(), "fetching rows: "))

	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.ErrorIs(t, rec.events[0].Err, source.ErrNoRows)
}

func TestBuild_WarnsOnMissingColumns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := source.Static{{"Código": "X", "Semestre": "3"}}

	res, err := newTestBuilder(src, WithLogger(zap.New(core))).Build(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.ColumnProblems, 3)
	assert.Equal(t, 3, logs.FilterMessage("sheet column check failed").Len())
	assert.Empty(t, res.Sections)
}

func TestBuild_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := source.Func(func(ctx context.Context) ([]map[string]string, error) {
		return nil, ctx.Err()
	})
	_, err := newTestBuilder(src).Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Summary(t *testing.T) {
	res, err := newTestBuilder(sheet()).Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []BucketSummary{
		{Title: "3º semestre", Courses: 1, Entries: 2, Shifts: []domain.Shift{domain.ShiftMorning}},
		{Title: "Reofertas", Courses: 1, Entries: 1, Shifts: []domain.Shift{domain.ShiftAfternoon}},
	}, res.Summary())
}

func TestRenderHTML(t *testing.T) {
	rec := &recordingObserver{}
	b := newTestBuilder(sheet(), WithObserver(rec))

	var buf bytes.Buffer
	_, err := b.RenderHTML(context.Background(), &buf, PageOptions{Standalone: true, ShowUpdated: true, Location: time.UTC})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "MAT01 - Cálculo I T1 - sala 101")
	assert.Contains(t, out, "RE02 - Química - sala Lab 2")
	assert.Contains(t, out, "Última atualização: 14/10/2026 12:00:00 (Quarta-feira)")
	assert.NotContains(t, out, "ELE01")
	assert.Equal(t, []string{"build_timetables", "render_html"}, rec.names())
}

func TestRenderHTML_NoFooterByDefault(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestBuilder(sheet()).RenderHTML(context.Background(), &buf, PageOptions{})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Última atualização")
}

func TestRenderInstructors(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestBuilder(sheet()).RenderInstructors(context.Background(), &buf, PageOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Ana Souza")
	assert.Contains(t, out, "Bruno Lima")
	assert.Contains(t, out, "Sem horários alocados.", "Bruno has no decodable slot")
	assert.Less(t, strings.Index(out, "Ana Souza"), strings.Index(out, "Bruno Lima"))
}

func TestRenderCalendar(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestBuilder(sheet()).RenderCalendar(context.Background(), &buf, render.CalendarOptions{
		TermStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Weeks:     18,
	})
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(&buf)
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 3)
}

func TestRenderCalendar_ErrorIsObserved(t *testing.T) {
	rec := &recordingObserver{}
	_, err := newTestBuilder(sheet(), WithObserver(rec)).RenderCalendar(context.Background(), &bytes.Buffer{}, render.CalendarOptions{})
	require.Error(t, err)
	require.Len(t, rec.events, 2)
	assert.False(t, rec.events[1].Success)
}

func TestLogUseCaseObserver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "render_html", RunID: "r1", Duration: 1500 * time.Millisecond, Success: true,
		Fields: map[string]any{"sections": 3},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "build_timetables", RunID: "r1", Err: errors.New("boom"),
	})

	all := logs.All()
	require.Len(t, all, 2)
	assert.Equal(t, zapcore.InfoLevel, all[0].Level)
	assert.Equal(t, "render_html", all[0].ContextMap()["use_case"])
	assert.Equal(t, int64(1500), all[0].ContextMap()["duration_ms"])
	assert.Equal(t, int64(3), all[0].ContextMap()["sections"])
	assert.Equal(t, zapcore.ErrorLevel, all[1].Level)
	assert.Equal(t, "boom", all[1].ContextMap()["error"])

	_, ok := NewLogUseCaseObserver(nil).(NoopUseCaseObserver)
	assert.True(t, ok)
}
