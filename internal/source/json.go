package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// JSON reads a sheet exported as an array of objects, the shape a
// "get all records" call returns. Numbers keep their literal form, so a
// slot code written as 211 reads as "211".
type JSON struct {
	Path string
}

func (j JSON) Rows(ctx context.Context) ([]map[string]string, error) {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decodeRecords(data)
}

func decodeRecords(data []byte) ([]map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}

	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		m := make(map[string]string, len(rec))
		for k, v := range rec {
			m[k] = stringify(v)
		}
		rows = append(rows, m)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
