// Package render turns assembled grids and detail records into HTML
// tables and iCalendar feeds. Nothing here reorders its input.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/horarios/internal/domain"
	"github.com/alexanderramin/horarios/internal/schedule"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	termBreakLabel       = "Intervalo entre Turnos"
	instructorBreakLabel = "Intervalo / Troca de Turno"
	termEmptyText        = "Nenhum horário cadastrado."
	instructorEmptyText  = "Sem horários alocados."
	missingValue         = "---"
)

var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"weekdays":       func() []domain.Weekday { return domain.Weekdays[:] },
	"cell":           cellHTML,
	"dash":           dash,
	"anchor":         anchor,
	"termGrid":       func(g schedule.Grid) gridView { return gridView{g, termBreakLabel, termEmptyText} },
	"instructorGrid": func(g schedule.Grid) gridView { return gridView{g, instructorBreakLabel, instructorEmptyText} },
}).ParseFS(templateFS, "templates/*.html"))

type gridView struct {
	Grid       schedule.Grid
	BreakLabel string
	EmptyText  string
}

// Section is one term view in the output document.
type Section struct {
	Title   string
	Grid    schedule.Grid
	Details []domain.DetailRecord
	Entries []domain.ScheduleEntry
}

// NewSection assembles the grid of b and captures its details.
func NewSection(b *schedule.Bucket) Section {
	return Section{
		Title:   b.Key.Title(),
		Grid:    b.Grid(),
		Details: b.Details,
		Entries: b.Entries,
	}
}

// Options control the page around the tables.
type Options struct {
	Title      string
	Standalone bool      // full page with <head> and styles; fragment otherwise
	UpdatedAt  time.Time // zero omits the last-updated footer
	Location   *time.Location
}

type documentView struct {
	Title       string
	Standalone  bool
	Updated     string
	Sections    []Section
	Instructors []*schedule.InstructorSchedule
}

func newView(opts Options) documentView {
	v := documentView{Title: opts.Title, Standalone: opts.Standalone}
	if !opts.UpdatedAt.IsZero() {
		v.Updated = LastUpdated(opts.UpdatedAt, opts.Location)
	}
	return v
}

// GridTable writes one timetable. An empty grid becomes a short notice.
func GridTable(w io.Writer, g schedule.Grid) error {
	return execute(w, "grid", gridView{g, termBreakLabel, termEmptyText})
}

// DetailTable writes the detail records in the order given. Blank fields
// show as "---".
func DetailTable(w io.Writer, details []domain.DetailRecord) error {
	return execute(w, "details", details)
}

// Document writes every section, header then grid then details.
func Document(w io.Writer, sections []Section, opts Options) error {
	v := newView(opts)
	if v.Title == "" {
		v.Title = "Horários"
	}
	v.Sections = sections
	return execute(w, "document", v)
}

// InstructorReport writes one block per instructor: course load with the
// credit total, then the instructor's timetable.
func InstructorReport(w io.Writer, instructors []*schedule.InstructorSchedule, opts Options) error {
	v := newView(opts)
	if v.Title == "" {
		v.Title = "Horários por Professor"
	}
	v.Instructors = instructors
	return execute(w, "instructors", v)
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// cellHTML escapes every entry of c, turns embedded newlines into line
// breaks and joins colliding entries with schedule.CellSeparator.
func cellHTML(c schedule.Cell) template.HTML {
	parts := make([]string, len(c))
	for i, content := range c {
		lines := strings.Split(content, "\n")
		for j, l := range lines {
			lines[j] = template.HTMLEscapeString(l)
		}
		parts[i] = strings.Join(lines, "<br>")
	}
	return template.HTML(strings.Join(parts, schedule.CellSeparator))
}

func dash(s string) string {
	if domain.IsBlank(s) {
		return missingValue
	}
	return s
}

func anchor(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

var dayNames = [...]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// LastUpdated formats the footer stamp, e.g.
// "Última atualização: 14/10/2026 09:30:00 (Quarta-feira)".
func LastUpdated(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("Última atualização: %s (%s)", t.Format("02/01/2006 15:04:05"), dayNames[t.Weekday()])
}
