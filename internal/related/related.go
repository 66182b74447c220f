package related

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tinysprout/garbha/backend/internal/catalog"
)

// Signal weights. The not-yet-completed bonus outweighs every similarity
// signal so recommendations steer toward unexplored content.
const (
	WeightNotCompleted   = 5
	WeightSameCategory   = 3
	WeightSharedConcept  = 2
	WeightSameDifficulty = 1
)

// minOverlapWordLen ignores short connective words in concept overlap.
const minOverlapWordLen = 3

// Item is one scored recommendation with the human-readable reasons that
// produced its score. Ephemeral, never persisted.
type Item struct {
	Item    catalog.Item `json:"item"`
	Score   int          `json:"score"`
	Reasons []string     `json:"reasons"`
}

// RelatedTo scores every other catalog item against the source and returns
// the top limit, sorted by descending score with ties keeping catalog
// order. An unknown sourceID yields an empty list. Zero-score candidates
// are excluded.
//
// O(n² · tags²) over the pairwise concept comparison; fine for the
// tens-of-items catalogs this serves, not for anything larger.
func RelatedTo(sourceID string, cat *catalog.Catalog, completed map[string]bool, limit int) []Item {
	source, ok := cat.ByID(sourceID)
	if !ok {
		return []Item{}
	}
	if limit <= 0 {
		return []Item{}
	}

	scored := make([]Item, 0)
	for _, candidate := range cat.Items() {
		if candidate.ID == source.ID {
			continue
		}

		rel := Item{Item: candidate, Reasons: []string{}}

		if candidate.Category != "" && candidate.Category == source.Category {
			rel.Score += WeightSameCategory
			rel.Reasons = append(rel.Reasons, "Same category")
		}
		if candidate.Difficulty != "" && candidate.Difficulty == source.Difficulty {
			rel.Score += WeightSameDifficulty
			rel.Reasons = append(rel.Reasons, "Same difficulty")
		}
		if shared := sharedConcepts(source.KeyConcepts, candidate.KeyConcepts); shared > 0 {
			rel.Score += shared * WeightSharedConcept
			rel.Reasons = append(rel.Reasons, fmt.Sprintf("Shared concepts: %d", shared))
		}
		if !completed[candidate.ID] {
			rel.Score += WeightNotCompleted
			rel.Reasons = append(rel.Reasons, "Not yet completed")
		}

		if rel.Score > 0 {
			scored = append(scored, rel)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// sharedConcepts counts candidate tags that word-overlap any source tag.
// Each distinct candidate tag counts once no matter how many words overlap.
func sharedConcepts(source, candidate []string) int {
	shared := 0
	for _, ct := range candidate {
		if overlapsAny(ct, source) {
			shared++
		}
	}
	return shared
}

func overlapsAny(tag string, against []string) bool {
	for _, st := range against {
		if tagsOverlap(st, tag) {
			return true
		}
	}
	return false
}

// tagsOverlap tests word-level overlap between two tags, case-insensitive,
// skipping words shorter than three characters. Containment in either
// direction counts, not just whole-word equality.
func tagsOverlap(a, b string) bool {
	aw := strings.Fields(strings.ToLower(a))
	bw := strings.Fields(strings.ToLower(b))
	for _, wa := range aw {
		if len(wa) < minOverlapWordLen {
			continue
		}
		for _, wb := range bw {
			if len(wb) < minOverlapWordLen {
				continue
			}
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				return true
			}
		}
	}
	return false
}
