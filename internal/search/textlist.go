package search

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// ParseList parses a stored list field. JSON arrays ("[\"a\",\"b\"]") are decoded,
// anything else is treated as a comma-separated list. Blank items are dropped.
// A malformed JSON array returns an empty list and an error.
func ParseList(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
			return []string{}, fmt.Errorf("malformed list %q: %w", truncate(trimmed, 64), err)
		}
		return compact(items), nil
	}

	return compact(strings.Split(trimmed, ",")), nil
}

// SplitList is ParseList that logs a data-quality warning instead of failing
func SplitList(log *slog.Logger, field, raw string) []string {
	items, err := ParseList(raw)
	if err != nil && log != nil {
		log.Warn("data quality: unparseable list field, using empty list",
			"field", field,
			"error", err,
		)
	}
	return items
}

// DedupeKeywords trims the inputs and removes case-insensitive duplicates, keeping first occurrence order
func DedupeKeywords(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range lists {
		for _, item := range list {
			item = strings.TrimSpace(item)
			key := strings.ToLower(item)
			if item == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// truncate keeps at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
