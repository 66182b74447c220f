package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/catalog"
	"github.com/tinysprout/garbha/backend/internal/rotation"
)

// DefaultDailyCount applies to unstratified kinds when the caller gives no
// count.
const DefaultDailyCount = 3

const dailyCacheTTL = 24 * time.Hour

// SelectionCache is the slice of the Redis cache the daily service reads
// and writes. Satisfied by *database.Cache.
type SelectionCache interface {
	GetCachedDailySelection(ctx context.Context, kind, date string, count int, result interface{}) error
	CacheDailySelection(ctx context.Context, kind, date string, count int, selection interface{}, expiration time.Duration) error
}

// DailyService serves the deterministic daily enrichment selections with a
// Redis cache-aside, and the non-deterministic refresh path without one.
type DailyService struct {
	cache  SelectionCache
	logger *logrus.Logger
}

func NewDailyService(cache SelectionCache, logger *logrus.Logger) *DailyService {
	return &DailyService{
		cache:  cache,
		logger: logger,
	}
}

// Selection returns the selection of the given kind for the date. Words are
// stratified one per language, puzzles and mindfulness exercises one per
// difficulty tier; other kinds take count consecutive offsets.
func (s *DailyService) Selection(ctx context.Context, kind catalog.Kind, date time.Time, count int) (rotation.DailySelection, error) {
	cat, ok := catalog.ByKind(kind)
	if !ok {
		return rotation.DailySelection{}, fmt.Errorf("unknown content kind: %s", kind)
	}
	if count <= 0 {
		count = DefaultDailyCount
	}

	dateKey := rotation.DateKey(date)
	var cached rotation.DailySelection
	if s.cache != nil {
		if err := s.cache.GetCachedDailySelection(ctx, string(kind), dateKey, count, &cached); err == nil {
			s.logger.WithFields(logrus.Fields{"kind": kind, "date": dateKey, "count": count}).Debug("Daily selection served from cache")
			return cached, nil
		}
	}

	selection := s.compute(kind, date, cat, count)

	if s.cache != nil {
		if err := s.cache.CacheDailySelection(ctx, string(kind), dateKey, count, selection, dailyCacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache daily selection")
		}
	}
	return selection, nil
}

// Refresh is the shuffle path: a fresh non-deterministic sample keyed off
// the caller's refresh counter. Never cached and never date-seeded.
func (s *DailyService) Refresh(kind catalog.Kind, count int, refresh int64) ([]catalog.Item, error) {
	cat, ok := catalog.ByKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown content kind: %s", kind)
	}
	if count <= 0 {
		count = DefaultDailyCount
	}
	return rotation.Shuffle(cat.Items(), count, refresh), nil
}

func (s *DailyService) compute(kind catalog.Kind, date time.Time, cat *catalog.Catalog, count int) rotation.DailySelection {
	switch kind {
	case catalog.KindWord:
		return rotation.DailyStratified(date, cat.Items(), rotation.ByLanguage, catalog.LanguageOrder)
	case catalog.KindPuzzle, catalog.KindMindfulness:
		return rotation.DailyStratified(date, cat.Items(), rotation.ByDifficulty, catalog.DifficultyOrder)
	default:
		return rotation.Daily(date, cat.Items(), count)
	}
}
