package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinysprout/garbha/backend/internal/catalog"
)

func searchFixture() []catalog.Item {
	return []catalog.Item{
		{
			ID:          "title-hit",
			Title:       "Love Before Birth",
			Description: "Talking to your baby.",
			KeyConcepts: []string{"bonding"},
			Analogies:   []string{},
			Category:    "bonding",
		},
		{
			ID:          "analogy-hit",
			Title:       "Quiet Evenings",
			Description: "Winding down together.",
			KeyConcepts: []string{"rest"},
			Analogies:   []string{"unconditional love flowing like a river"},
			Category:    "wellness",
		},
		{
			ID:          "concept-hits",
			Title:       "Daily Rhythms",
			Description: "Routines for calm days.",
			KeyConcepts: []string{"self-love", "love languages", "loved ones"},
			Analogies:   []string{},
			Category:    "wellness",
		},
		{
			ID:          "no-hit",
			Title:       "Iron and Folate",
			Description: "Nutrient basics.",
			KeyConcepts: []string{"nutrition"},
			Analogies:   []string{},
			Category:    "nutrition",
		},
	}
}

func TestSearch_TitleOutranksTagFields(t *testing.T) {
	results := Search("love", searchFixture())
	require.NotEmpty(t, results)

	assert.Equal(t, "title-hit", results[0].Item.ID)
	for _, r := range results[1:] {
		assert.LessOrEqual(t, r.Score, results[0].Score)
	}
}

func TestSearch_RepeatableFieldsAccumulate(t *testing.T) {
	results := Search("love", searchFixture())

	var conceptScore, analogyScore int
	for _, r := range results {
		switch r.Item.ID {
		case "concept-hits":
			conceptScore = r.Score
		case "analogy-hit":
			analogyScore = r.Score
		}
	}

	// Three matching concepts at weight 3 each.
	assert.Equal(t, 3*WeightConcept, conceptScore)
	// One matching analogy element.
	assert.Equal(t, WeightAnalogy, analogyScore)
}

func TestSearch_NoZeroScoreResults(t *testing.T) {
	results := Search("love", searchFixture())
	for _, r := range results {
		assert.Greater(t, r.Score, 0)
		assert.NotEqual(t, "no-hit", r.Item.ID)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Empty(t, Search("", searchFixture()))
	assert.Empty(t, Search("   \t ", searchFixture()))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	lower := Search("love", searchFixture())
	upper := Search("LOVE", searchFixture())
	assert.Equal(t, lower, upper)
}

func TestSearch_TiesKeepCatalogOrder(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Title: "calm waters", KeyConcepts: []string{}, Analogies: []string{}},
		{ID: "b", Title: "calm skies", KeyConcepts: []string{}, Analogies: []string{}},
	}
	results := Search("calm", items)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Item.ID)
	assert.Equal(t, "b", results[1].Item.ID)
}

func TestHighlights_EveryOccurrence(t *testing.T) {
	items := []catalog.Item{{
		ID:          "x",
		Title:       "Love is love is Love",
		KeyConcepts: []string{},
		Analogies:   []string{},
	}}

	results := Search("love", items)
	require.Len(t, results, 1)
	require.Len(t, results[0].Matches, 1)

	m := results[0].Matches[0]
	require.Len(t, m.Highlights, 3)

	text := []rune(m.Text)
	for _, hl := range m.Highlights {
		got := strings.ToLower(string(text[hl.Start:hl.End]))
		assert.Equal(t, "love", got)
	}
}

func TestHighlights_NeverOverlap(t *testing.T) {
	items := []catalog.Item{{
		ID:          "x",
		Title:       "aaaa",
		KeyConcepts: []string{},
		Analogies:   []string{},
	}}

	results := Search("aa", items)
	require.Len(t, results, 1)

	hls := results[0].Matches[0].Highlights
	require.Len(t, hls, 2)
	for i := 1; i < len(hls); i++ {
		assert.GreaterOrEqual(t, hls[i].Start, hls[i-1].End)
	}
}

func TestSuggest_OrderAndBound(t *testing.T) {
	items := searchFixture()

	suggestions := Suggest("love", items, 5)
	require.NotEmpty(t, suggestions)

	// Titles come first.
	assert.Equal(t, "Love Before Birth", suggestions[0])
	assert.LessOrEqual(t, len(suggestions), 5)
}

func TestSuggest_ConceptDedup(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Title: "Alpha", KeyConcepts: []string{"Bonding"}, Analogies: []string{}, Category: "one"},
		{ID: "b", Title: "Beta", KeyConcepts: []string{"bonding"}, Analogies: []string{}, Category: "two"},
	}

	suggestions := Suggest("bond", items, 10)
	count := 0
	for _, s := range suggestions {
		if strings.EqualFold(s, "bonding") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSuggest_EmptyQuery(t *testing.T) {
	assert.Empty(t, Suggest("", searchFixture(), 5))
	assert.Empty(t, Suggest("love", searchFixture(), 0))
}

func TestSearch_HighlightIndicesSurviveSpecialCaseFolds(t *testing.T) {
	// U+0130 lowers to two runes under strings.ToLower; highlight offsets
	// must still index the original field text exactly.
	items := []catalog.Item{
		{ID: "tr", Title: "İkiz Kalpler", KeyConcepts: []string{}, Analogies: []string{}, Category: "bonding"},
	}

	results := Search("ikiz", items)
	require.Len(t, results, 1)

	match := results[0].Matches[0]
	require.Len(t, match.Highlights, 1)
	assert.Equal(t, 0, match.Highlights[0].Start)
	assert.Equal(t, 4, match.Highlights[0].End)
	assert.LessOrEqual(t, match.Highlights[0].End, len([]rune(match.Text)))
}
