package catalog

import (
	"fmt"
)

// Kind tags each content catalog.
type Kind string

const (
	KindStory       Kind = "story"
	KindWord        Kind = "word"
	KindPuzzle      Kind = "puzzle"
	KindFact        Kind = "fact"
	KindTeaser      Kind = "teaser"
	KindMindfulness Kind = "mindfulness"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Language string

const (
	LanguageSanskrit Language = "sanskrit"
	LanguageSpanish  Language = "spanish"
	LanguageFrench   Language = "french"
	LanguageEnglish  Language = "english"
)

// DifficultyOrder is the fixed partition order for difficulty-stratified
// daily selections.
var DifficultyOrder = []string{
	string(DifficultyEasy),
	string(DifficultyMedium),
	string(DifficultyHard),
}

// LanguageOrder is the fixed partition order for language-stratified
// daily selections.
var LanguageOrder = []string{
	string(LanguageSanskrit),
	string(LanguageSpanish),
	string(LanguageFrench),
	string(LanguageEnglish),
}

// Item is one immutable content record. Text fields are always present
// (possibly empty), never nil, so search code needs no null checks.
type Item struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	KeyConcepts []string   `json:"key_concepts"`
	Analogies   []string   `json:"analogies"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Language    Language   `json:"language,omitempty"`
}

// Catalog is a fixed, in-memory collection of items of one kind. Built once
// at process start and never mutated afterwards.
type Catalog struct {
	kind  Kind
	items []Item
	byID  map[string]int
}

// New builds a catalog, enforcing that identifiers are unique within the
// kind and that repeatable fields are non-nil.
func New(kind Kind, items []Item) (*Catalog, error) {
	byID := make(map[string]int, len(items))
	for i := range items {
		it := &items[i]
		if it.ID == "" {
			return nil, fmt.Errorf("%s catalog: item %d has empty id", kind, i)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("%s catalog: duplicate id %q", kind, it.ID)
		}
		byID[it.ID] = i
		it.Kind = kind
		if it.KeyConcepts == nil {
			it.KeyConcepts = []string{}
		}
		if it.Analogies == nil {
			it.Analogies = []string{}
		}
	}
	return &Catalog{kind: kind, items: items, byID: byID}, nil
}

// MustNew is New for the compiled-in catalogs, where a malformed catalog is
// a programming error caught at startup.
func MustNew(kind Kind, items []Item) *Catalog {
	c, err := New(kind, items)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Kind() Kind { return c.kind }

func (c *Catalog) Len() int { return len(c.items) }

// Items returns the catalog contents in declaration order. Callers must
// treat the slice as read-only.
func (c *Catalog) Items() []Item { return c.items }

// ByID looks up an item by identifier.
func (c *Catalog) ByID(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}
