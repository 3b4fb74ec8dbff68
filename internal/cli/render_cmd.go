package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var out string
	var fragment bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the term timetables as HTML",
		Long: `Reads the schedule sheet and writes one HTML document with a timetable
and a course detail table per term view: odd semesters, re-offerings and
electives.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				out = app.Config.Output.Path
			}
			b, err := app.builder()
			if err != nil {
				return err
			}
			opts, err := app.pageOptions("Horários", fragment)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(cmd, app)
			defer cancel()
			return withOutput(cmd, out, func(w io.Writer) error {
				_, err := b.RenderHTML(ctx, w, opts)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "write only the tables, without <html> and styles")
	return cmd
}

func newInstructorsCmd(app *App) *cobra.Command {
	var out string
	var fragment bool

	cmd := &cobra.Command{
		Use:   "instructors",
		Short: "Render one timetable and course load per instructor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				out = app.Config.Output.InstructorsPath
			}
			b, err := app.builder()
			if err != nil {
				return err
			}
			opts, err := app.pageOptions("Horários por Professor", fragment)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(cmd, app)
			defer cancel()
			return withOutput(cmd, out, func(w io.Writer) error {
				_, err := b.RenderInstructors(ctx, w, opts)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "write only the tables, without <html> and styles")
	return cmd
}
