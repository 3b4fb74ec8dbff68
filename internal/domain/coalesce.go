package domain

import "strings"

// CoalesceStr returns the first value that is not blank after trimming.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// nullLiterals are spreadsheet placeholders that mean "no value".
var nullLiterals = map[string]bool{"nan": true, "none": true, "null": true}

// IsBlank reports whether a sheet cell carries no usable value.
func IsBlank(v string) bool {
	t := strings.TrimSpace(v)
	return t == "" || nullLiterals[strings.ToLower(t)]
}
