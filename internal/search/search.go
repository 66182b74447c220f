package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/tinysprout/garbha/backend/internal/catalog"
)

// Field weights. The primary name field dominates, tag-like repeatable
// fields weigh less but accumulate per matching element.
const (
	WeightTitle       = 10
	WeightCategory    = 6
	WeightDescription = 5
	WeightConcept     = 3
	WeightAnalogy     = 2
)

// Highlight is a [Start,End) rune range into a matched field's text.
type Highlight struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FieldMatch reports one matched field with every occurrence of the query.
type FieldMatch struct {
	Field      string      `json:"field"`
	Text       string      `json:"text"`
	Highlights []Highlight `json:"highlights"`
}

// Result is one scored catalog hit. Ephemeral, never persisted.
type Result struct {
	Item    catalog.Item `json:"item"`
	Score   int          `json:"score"`
	Matches []FieldMatch `json:"matches"`
}

// Search matches the query case-insensitively as a substring against every
// searchable field of every item. Results carry score > 0 only and are
// sorted by descending score; ties keep catalog order (stable sort).
// An empty or whitespace-only query yields no results.
func Search(query string, items []catalog.Item) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{}
	}

	results := make([]Result, 0)
	for _, it := range items {
		res := scoreItem(query, it)
		if res.Score > 0 {
			results = append(results, res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func scoreItem(query string, it catalog.Item) Result {
	res := Result{Item: it, Matches: []FieldMatch{}}

	res.addField("title", it.Title, query, WeightTitle)
	res.addField("category", it.Category, query, WeightCategory)
	res.addField("description", it.Description, query, WeightDescription)
	for _, c := range it.KeyConcepts {
		res.addField("key_concept", c, query, WeightConcept)
	}
	for _, a := range it.Analogies {
		res.addField("analogy", a, query, WeightAnalogy)
	}
	return res
}

func (r *Result) addField(name, text, query string, weight int) {
	highlights := findOccurrences(text, query)
	if len(highlights) == 0 {
		return
	}
	r.Score += weight
	r.Matches = append(r.Matches, FieldMatch{
		Field:      name,
		Text:       text,
		Highlights: highlights,
	})
}

// findOccurrences returns every occurrence of q in text as [start,end) rune
// ranges. The scan resumes past the end of each match, so ranges within one
// field never overlap. Case folding is per rune, never via strings.ToLower:
// special-case mappings such as U+0130 lower to a different rune count and
// would shift the indices against the original text.
func findOccurrences(text, q string) []Highlight {
	haystack := []rune(text)
	needle := []rune(q)
	if len(needle) == 0 || len(haystack) < len(needle) {
		return nil
	}

	var out []Highlight
	for i := 0; i+len(needle) <= len(haystack); {
		if runesEqualFold(haystack[i:i+len(needle)], needle) {
			out = append(out, Highlight{Start: i, End: i + len(needle)})
			i += len(needle)
			continue
		}
		i++
	}
	return out
}

func runesEqualFold(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
