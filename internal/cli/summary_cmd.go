package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/horarios/internal/cli/formatter"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show which term views the sheet produces and what was skipped",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.builder()
			if err != nil {
				return err
			}

			ctx, cancel := runContext(cmd, app)
			defer cancel()
			res, err := b.Build(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(formatter.NewSummaryView(res)))
			return nil
		},
	}
}
