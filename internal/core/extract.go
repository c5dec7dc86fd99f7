package core

import "strings"

// ExtractText flattens a record into a single text blob for analysis: title,
// then description, then each item's text/description/title, joined with
// single spaces. Absent fields contribute nothing. An empty result is valid
// and short-circuits classification to the neutral default.
func ExtractText(record *Record) string {
	if record == nil {
		return ""
	}

	parts := make([]string, 0, 2+3*len(record.Items))
	if record.Title != "" {
		parts = append(parts, record.Title)
	}
	if record.Description != "" {
		parts = append(parts, record.Description)
	}
	for _, item := range record.Items {
		if item.Text != "" {
			parts = append(parts, item.Text)
		}
		if item.Description != "" {
			parts = append(parts, item.Description)
		}
		if item.Title != "" {
			parts = append(parts, item.Title)
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
