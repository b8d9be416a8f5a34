package csvio

import "strings"

// Columns maps canonical field names to column positions in a Document header.
type Columns map[string]int

// ResolveColumns matches header names against aliases (canonical field -> accepted names).
// Matching ignores case, spaces, underscores and hyphens. The first alias found wins.
// Returns the resolved columns and the required fields that could not be found.
func ResolveColumns(header []string, aliases map[string][]string, required []string) (Columns, []string) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	cols := make(Columns, len(aliases))
	for field, names := range aliases {
		for _, name := range names {
			if i, ok := positions[normalizeHeader(name)]; ok {
				cols[field] = i
				break
			}
		}
	}

	var missing []string
	for _, field := range required {
		if _, ok := cols[field]; !ok {
			missing = append(missing, field)
		}
	}
	return cols, missing
}

// Get returns the trimmed cell for field, or "" when the column is absent.
func (c Columns) Get(row Row, field string) string {
	i, ok := c[field]
	if !ok || i >= len(row.Cells) {
		return ""
	}
	return strings.TrimSpace(row.Cells[i])
}

func normalizeHeader(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
