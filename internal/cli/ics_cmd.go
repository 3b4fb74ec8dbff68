package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/horarios/internal/render"
)

func newICSCmd(app *App) *cobra.Command {
	var out, termStart string
	var weeks int

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export every term view as an iCalendar feed",
		Long: `Each timetable slot becomes a weekly event starting on the first matching
weekday on or after the term start and repeating for the configured number
of weeks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				out = app.Config.Output.CalendarPath
			}
			if cmd.Flags().Changed("term-start") {
				app.Config.Calendar.TermStart = termStart
			}
			if cmd.Flags().Changed("weeks") {
				app.Config.Calendar.Weeks = weeks
			}
			if errs := app.Config.Validate(); len(errs) > 0 {
				return fmt.Errorf("invalid calendar settings: %w", errors.Join(errs...))
			}

			start, err := app.Config.TermStart(app.Now())
			if err != nil {
				return err
			}
			b, err := app.builder()
			if err != nil {
				return err
			}

			ctx, cancel := runContext(cmd, app)
			defer cancel()
			return withOutput(cmd, out, func(w io.Writer) error {
				_, err := b.RenderCalendar(ctx, w, render.CalendarOptions{
					Name:      "Horários",
					TermStart: start,
					Weeks:     app.Config.Calendar.Weeks,
				})
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&termStart, "term-start", "", "first day of term (YYYY-MM-DD)")
	cmd.Flags().IntVar(&weeks, "weeks", 0, "number of weekly occurrences")
	return cmd
}
