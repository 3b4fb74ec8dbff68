package source

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets reads the schedule straight from a Google spreadsheet using a
// service-account credentials file. Every value is read as displayed text.
type Sheets struct {
	SpreadsheetID   string
	Range           string // A1 notation, e.g. "Planilha1"
	CredentialsFile string

	// Options are appended after the defaults; tests use them to point the
	// client at a local server.
	Options []option.ClientOption
}

func (s Sheets) Rows(ctx context.Context) ([]map[string]string, error) {
	if s.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}
	rng := s.Range
	if rng == "" {
		rng = "Planilha1"
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if s.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(s.CredentialsFile))
	}
	opts = append(opts, s.Options...)

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	resp, err := srv.Spreadsheets.Values.Get(s.SpreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rng, err)
	}

	table := make([][]string, 0, len(resp.Values))
	for _, line := range resp.Values {
		cells := make([]string, len(line))
		for i, v := range line {
			cells[i] = stringify(v)
		}
		table = append(table, cells)
	}
	return fromTable(table)
}
