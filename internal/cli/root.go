package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alexanderramin/horarios/internal/config"
	"github.com/alexanderramin/horarios/internal/logging"
	"github.com/alexanderramin/horarios/internal/report"
	"github.com/alexanderramin/horarios/internal/source"
)

// App holds what the commands share. Nil fields are filled in from the
// loaded configuration before any command runs.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	NewSource func(config.SourceConfig) (source.RowSource, error)
	Now       func() time.Time

	configPath string
	sourceKind string
	input      string
	logLevel   string
}

// NewRootCmd creates the top-level "horarios" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "horarios",
		Short:         "Build class timetables from the course schedule sheet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "horarios.yaml", "path to the YAML config file")
	flags.StringVar(&app.sourceKind, "source", "", "row source: csv, json, sqlite, sheets or html")
	flags.StringVar(&app.input, "in", "", "source location: file path, spreadsheet id or page URL")
	flags.StringVar(&app.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newRenderCmd(app),
		newInstructorsCmd(app),
		newICSCmd(app),
		newSummaryCmd(app),
	)

	return root
}

func (app *App) prepare(cmd *cobra.Command) error {
	if app.Config == nil {
		cfg, err := config.Load(app.configPath)
		if err != nil {
			return err
		}
		app.Config = cfg
	}
	app.applyFlags(cmd.Flags())

	if errs := app.Config.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	if app.Logger == nil {
		logger, err := logging.New(app.Config.Log.Level)
		if err != nil {
			return err
		}
		app.Logger = logger
	}
	if app.NewSource == nil {
		app.NewSource = source.FromConfig
	}
	if app.Now == nil {
		app.Now = time.Now
	}
	return nil
}

// applyFlags lets the persistent flags win over file and environment.
func (app *App) applyFlags(flags *pflag.FlagSet) {
	src := &app.Config.Source
	if flags.Changed("source") {
		src.Kind = app.sourceKind
	}
	if flags.Changed("in") {
		switch src.Kind {
		case config.SourceSheets:
			src.SpreadsheetID = app.input
		case config.SourceHTML:
			src.URL = app.input
		default:
			src.Path = app.input
		}
	}
	if flags.Changed("log-level") {
		app.Config.Log.Level = app.logLevel
	}
}

func (app *App) builder() (*report.Builder, error) {
	src, err := app.NewSource(app.Config.Source)
	if err != nil {
		return nil, fmt.Errorf("configuring source: %w", err)
	}
	return report.NewBuilder(src,
		report.WithLogger(app.Logger),
		report.WithObserver(report.NewLogUseCaseObserver(app.Logger)),
		report.WithClock(app.Now),
	), nil
}

func (app *App) pageOptions(title string, fragment bool) (report.PageOptions, error) {
	loc, err := app.Config.Location()
	if err != nil {
		return report.PageOptions{}, err
	}
	return report.PageOptions{
		Title:       title,
		Standalone:  app.Config.Output.Standalone && !fragment,
		ShowUpdated: app.Config.Output.ShowUpdated,
		Location:    loc,
	}, nil
}
