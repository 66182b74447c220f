package catalog

// ByKind resolves a compiled-in catalog from its kind tag.
func ByKind(kind Kind) (*Catalog, bool) {
	switch kind {
	case KindStory:
		return Stories, true
	case KindWord:
		return Words, true
	case KindPuzzle:
		return Puzzles, true
	case KindFact:
		return Facts, true
	case KindTeaser:
		return Teasers, true
	case KindMindfulness:
		return Mindfulness, true
	default:
		return nil, false
	}
}

// All returns every compiled-in catalog, used by the seed tool for
// integrity checks.
func All() []*Catalog {
	return []*Catalog{Stories, Words, Puzzles, Facts, Teasers, Mindfulness}
}
