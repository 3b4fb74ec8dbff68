// Package config loads run settings from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	SourceCSV    = "csv"
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
	SourceSheets = "sheets"
	SourceHTML   = "html"
)

var validSourceKinds = map[string]bool{
	SourceCSV: true, SourceJSON: true, SourceSQLite: true, SourceSheets: true, SourceHTML: true,
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config holds everything one run needs.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Calendar CalendarConfig `yaml:"calendar"`
	Log      LogConfig      `yaml:"log"`
}

// SourceConfig selects and parameterises the row source.
type SourceConfig struct {
	Kind string `yaml:"kind"`

	// csv, json, sqlite
	Path  string `yaml:"path"`
	Comma string `yaml:"comma,omitempty"`
	Table string `yaml:"table,omitempty"`

	// sheets
	SpreadsheetID   string `yaml:"spreadsheet_id,omitempty"`
	Range           string `yaml:"range,omitempty"`
	CredentialsFile string `yaml:"credentials_file,omitempty"`

	// html
	URL      string `yaml:"url,omitempty"`
	Selector string `yaml:"selector,omitempty"`

	TimeoutSec int `yaml:"timeout_sec"`
}

// OutputConfig controls the rendered documents. Empty paths mean stdout.
type OutputConfig struct {
	Path            string `yaml:"path"` // term timetables
	InstructorsPath string `yaml:"instructors_path"`
	CalendarPath    string `yaml:"calendar_path"`
	Standalone  bool   `yaml:"standalone"`
	Timezone    string `yaml:"timezone"`
	ShowUpdated bool   `yaml:"show_updated"`
}

// CalendarConfig controls the iCalendar export.
type CalendarConfig struct {
	TermStart string `yaml:"term_start"` // YYYY-MM-DD
	Weeks     int    `yaml:"weeks"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config reading horarios.csv from the working
// directory and writing HTML to stdout.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:            SourceCSV,
			Path:            "horarios.csv",
			Table:           "horarios",
			Range:           "Planilha1",
			CredentialsFile: "gcreds.json",
			TimeoutSec:      30,
		},
		Output: OutputConfig{
			Standalone:  true,
			Timezone:    "America/Sao_Paulo",
			ShowUpdated: true,
		},
		Calendar: CalendarConfig{
			Weeks: 18,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// HORARIOS_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setString(&c.Source.Kind, "HORARIOS_SOURCE")
	setString(&c.Source.Path, "HORARIOS_SOURCE_PATH")
	setString(&c.Source.Table, "HORARIOS_SOURCE_TABLE")
	setString(&c.Source.SpreadsheetID, "HORARIOS_SPREADSHEET_ID")
	setString(&c.Source.Range, "HORARIOS_SHEET_RANGE")
	setString(&c.Source.CredentialsFile, "HORARIOS_CREDENTIALS")
	setString(&c.Source.URL, "HORARIOS_SOURCE_URL")
	setString(&c.Output.Path, "HORARIOS_OUTPUT")
	setString(&c.Output.InstructorsPath, "HORARIOS_INSTRUCTORS_OUTPUT")
	setString(&c.Output.CalendarPath, "HORARIOS_CALENDAR_OUTPUT")
	setString(&c.Output.Timezone, "HORARIOS_TIMEZONE")
	setString(&c.Calendar.TermStart, "HORARIOS_TERM_START")
	setString(&c.Log.Level, "HORARIOS_LOG_LEVEL")

	if v := os.Getenv("HORARIOS_TERM_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Calendar.Weeks = n
		}
	}
	if v := os.Getenv("HORARIOS_SOURCE_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Source.TimeoutSec = n
		}
	}
	if v := os.Getenv("HORARIOS_STANDALONE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Output.Standalone = b
		}
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// Validate returns every problem found in the configuration.
func (c *Config) Validate() []error {
	var errs []error

	s := c.Source
	if !validSourceKinds[s.Kind] {
		errs = append(errs, fmt.Errorf("source.kind: invalid value %q", s.Kind))
	}
	switch s.Kind {
	case SourceCSV, SourceJSON, SourceSQLite:
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("source.path is required for %s sources", s.Kind))
		}
	case SourceSheets:
		if s.SpreadsheetID == "" {
			errs = append(errs, fmt.Errorf("source.spreadsheet_id is required for sheets sources"))
		}
	case SourceHTML:
		if s.URL == "" {
			errs = append(errs, fmt.Errorf("source.url is required for html sources"))
		}
	}
	if len([]rune(s.Comma)) > 1 {
		errs = append(errs, fmt.Errorf("source.comma must be a single character, got %q", s.Comma))
	}
	if s.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("source.timeout_sec must be positive"))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("output.timezone: %w", err))
	}

	if c.Calendar.TermStart != "" {
		if _, err := time.Parse("2006-01-02", c.Calendar.TermStart); err != nil {
			errs = append(errs, fmt.Errorf("calendar.term_start: invalid date format %q (expected YYYY-MM-DD)", c.Calendar.TermStart))
		}
	}
	if c.Calendar.Weeks <= 0 {
		errs = append(errs, fmt.Errorf("calendar.weeks must be positive"))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level: invalid value %q", c.Log.Level))
	}

	return errs
}

// Location resolves the output timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Output.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Output.Timezone)
}

// TermStart resolves the first day of term in the output timezone. Without
// a configured date it falls back to the Monday of now's week.
func (c *Config) TermStart(now time.Time) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	if c.Calendar.TermStart == "" {
		n := now.In(loc)
		offset := (int(n.Weekday()) + 6) % 7
		y, m, d := n.AddDate(0, 0, -offset).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	return time.ParseInLocation("2006-01-02", c.Calendar.TermStart, loc)
}

// CommaRune returns the CSV delimiter, or 0 for the default.
func (s SourceConfig) CommaRune() rune {
	for _, r := range s.Comma {
		return r
	}
	return 0
}

// Timeout is the deadline applied to the row fetch.
func (s SourceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}
