package search

import (
	"strings"

	"github.com/tinysprout/garbha/backend/internal/catalog"
)

// Suggest builds a bounded mixed suggestion list for a partial query: first
// matching item titles, then matching category names, then matching
// key-concept values, stopping as soon as limit is reached. Only the
// concept pass de-duplicates case-insensitively; titles are unique per
// catalog and categories are walked as distinct values.
func Suggest(query string, items []catalog.Item, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []string{}
	}
	q := strings.ToLower(query)

	suggestions := make([]string, 0, limit)

	for _, it := range items {
		if len(suggestions) >= limit {
			return suggestions
		}
		if strings.Contains(strings.ToLower(it.Title), q) {
			suggestions = append(suggestions, it.Title)
		}
	}

	seenCategory := map[string]bool{}
	for _, it := range items {
		if len(suggestions) >= limit {
			return suggestions
		}
		if seenCategory[it.Category] {
			continue
		}
		seenCategory[it.Category] = true
		if strings.Contains(strings.ToLower(it.Category), q) {
			suggestions = append(suggestions, it.Category)
		}
	}

	seenConcept := map[string]bool{}
	for _, it := range items {
		for _, c := range it.KeyConcepts {
			if len(suggestions) >= limit {
				return suggestions
			}
			key := strings.ToLower(c)
			if seenConcept[key] {
				continue
			}
			seenConcept[key] = true
			if strings.Contains(key, q) {
				suggestions = append(suggestions, c)
			}
		}
	}

	return suggestions
}
