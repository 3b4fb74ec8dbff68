package importer

import "fmt"

// ValidateColumns checks that the header carries the required columns.
// Missing columns are not fatal, since absent cells read as empty, but a
// sheet without them produces an empty report and is worth a warning.
func ValidateColumns(records []Record) []error {
	if len(records) == 0 {
		return nil
	}
	present := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			present[k] = true
		}
	}

	var errs []error
	for _, col := range RequiredColumns {
		if !present[col] {
			errs = append(errs, fmt.Errorf("column %q is missing", col))
		}
	}
	return errs
}
