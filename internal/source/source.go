// Package source fetches the schedule sheet as flat key→string rows.
//
// Every source returns the whole sheet at once. A sheet with a header but
// no data rows is reported as ErrNoRows, which aborts the run.
package source

import (
	"context"
	"errors"
	"strings"
)

// ErrNoRows means the source was reachable but held no usable data.
var ErrNoRows = errors.New("source returned no rows")

// RowSource yields the schedule sheet, one mapping per data row, keyed by
// header cell.
type RowSource interface {
	Rows(ctx context.Context) ([]map[string]string, error)
}

// Func adapts a plain function to RowSource.
type Func func(ctx context.Context) ([]map[string]string, error)

func (f Func) Rows(ctx context.Context) ([]map[string]string, error) {
	return f(ctx)
}

// Static serves fixed rows. Used by tests and by callers that already hold
// the sheet in memory.
type Static []map[string]string

func (s Static) Rows(context.Context) ([]map[string]string, error) {
	if len(s) == 0 {
		return nil, ErrNoRows
	}
	return s, nil
}

// fromTable turns a header-first table into row mappings. Short rows are
// padded with empty cells, cells past the header are dropped, and lines
// with no content at all are skipped.
func fromTable(table [][]string) ([]map[string]string, error) {
	if len(table) < 2 {
		return nil, ErrNoRows
	}
	header := table[0]

	rows := make([]map[string]string, 0, len(table)-1)
	for _, line := range table[1:] {
		if blankLine(line) {
			continue
		}
		m := make(map[string]string, len(header))
		for i, col := range header {
			if strings.TrimSpace(col) == "" {
				continue
			}
			if i < len(line) {
				m[col] = line[i]
			} else {
				m[col] = ""
			}
		}
		rows = append(rows, m)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

func blankLine(line []string) bool {
	for _, c := range line {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
