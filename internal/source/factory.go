package source

import (
	"fmt"
	"net/http"

	"github.com/alexanderramin/horarios/internal/config"
)

// FromConfig builds the RowSource selected by cfg.Kind.
func FromConfig(cfg config.SourceConfig) (RowSource, error) {
	switch cfg.Kind {
	case config.SourceCSV:
		return CSV{Path: cfg.Path, Comma: cfg.CommaRune()}, nil
	case config.SourceJSON:
		return JSON{Path: cfg.Path}, nil
	case config.SourceSQLite:
		return SQLite{Path: cfg.Path, Table: cfg.Table}, nil
	case config.SourceSheets:
		return Sheets{
			SpreadsheetID:   cfg.SpreadsheetID,
			Range:           cfg.Range,
			CredentialsFile: cfg.CredentialsFile,
		}, nil
	case config.SourceHTML:
		return HTMLTable{
			URL:      cfg.URL,
			Selector: cfg.Selector,
			Client:   &http.Client{Timeout: cfg.Timeout()},
		}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}
