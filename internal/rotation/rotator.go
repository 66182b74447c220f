package rotation

import (
	"math/rand"
	"time"

	"github.com/tinysprout/garbha/backend/internal/catalog"
)

// DailySelection is the ordered set of items chosen for one date. It is
// recomputed on every call; the same date and catalog always reproduce the
// same selection.
type DailySelection struct {
	Date  string         `json:"date"`
	Items []catalog.Item `json:"items"`
}

// SelectForDate deterministically picks count items for the given date:
// items[(idx+k) % len(items)] for k = 0..count-1, where idx is the day of
// year. Consecutive offsets guarantee the window advances by one item per
// day. count is clamped to the catalog size so no item repeats within one
// selection.
func SelectForDate(date time.Time, items []catalog.Item, count int) []catalog.Item {
	if len(items) == 0 || count <= 0 {
		return []catalog.Item{}
	}
	if count > len(items) {
		count = len(items)
	}

	idx := DayOfYear(date)
	selected := make([]catalog.Item, 0, count)
	for k := 0; k < count; k++ {
		selected = append(selected, items[(idx+k)%len(items)])
	}
	return selected
}

// SelectStratified partitions items by keyOf and draws exactly one item per
// partition, visiting partitions in the fixed declared order. Each partition
// uses partition[(idx+offset) % len(partition)] with offset equal to the
// partition's position in order, so partitions don't repeat in lockstep.
// Empty partitions contribute nothing; callers tolerate fewer results.
func SelectStratified(date time.Time, items []catalog.Item, keyOf func(catalog.Item) string, order []string) []catalog.Item {
	partitions := make(map[string][]catalog.Item, len(order))
	for _, it := range items {
		key := keyOf(it)
		partitions[key] = append(partitions[key], it)
	}

	idx := DayOfYear(date)
	selected := make([]catalog.Item, 0, len(order))
	for offset, key := range order {
		part := partitions[key]
		if len(part) == 0 {
			continue
		}
		selected = append(selected, part[(idx+offset)%len(part)])
	}
	return selected
}

// Daily wraps SelectForDate with its date key.
func Daily(date time.Time, items []catalog.Item, count int) DailySelection {
	return DailySelection{Date: DateKey(date), Items: SelectForDate(date, items, count)}
}

// DailyStratified wraps SelectStratified with its date key.
func DailyStratified(date time.Time, items []catalog.Item, keyOf func(catalog.Item) string, order []string) DailySelection {
	return DailySelection{Date: DateKey(date), Items: SelectStratified(date, items, keyOf, order)}
}

// Shuffle is the explicitly non-deterministic refresh path. It samples count
// items keyed off a caller-supplied refresh counter rather than the date, so
// repeated refreshes on one day produce different sets.
func Shuffle(items []catalog.Item, count int, refresh int64) []catalog.Item {
	if len(items) == 0 || count <= 0 {
		return []catalog.Item{}
	}
	if count > len(items) {
		count = len(items)
	}

	rng := rand.New(rand.NewSource(refresh ^ time.Now().UnixNano()))
	perm := rng.Perm(len(items))

	selected := make([]catalog.Item, 0, count)
	for _, i := range perm[:count] {
		selected = append(selected, items[i])
	}
	return selected
}

// ByDifficulty is the stratification key for puzzle and mindfulness rotation.
func ByDifficulty(it catalog.Item) string { return string(it.Difficulty) }

// ByLanguage is the stratification key for word-of-the-day rotation.
func ByLanguage(it catalog.Item) string { return string(it.Language) }
