package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSV reads a sheet exported as comma-separated values.
type CSV struct {
	Path  string
	Comma rune // defaults to ','
}

func (c CSV) Rows(ctx context.Context) ([]map[string]string, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()
	return readCSV(ctx, f, c.Comma)
}

func readCSV(ctx context.Context, r io.Reader, comma rune) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if comma != 0 {
		cr.Comma = comma
	}

	var table [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		table = append(table, rec)
	}
	if len(table) > 0 && len(table[0]) > 0 {
		table[0][0] = trimBOM(table[0][0])
	}
	return fromTable(table)
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
