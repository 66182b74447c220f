package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	recentKeyPattern = "search:recent:%s"

	// MaxRecentSearches caps the per-profile recent-search list.
	MaxRecentSearches = 10
)

// RecentSearches keeps a capped, most-recent-first list of search queries
// per profile, de-duplicated case-insensitively.
type RecentSearches struct {
	kv     KV
	logger *logrus.Logger
}

func NewRecentSearches(kv KV, logger *logrus.Logger) *RecentSearches {
	return &RecentSearches{kv: kv, logger: logger}
}

// Add pushes a query to the front, dropping any earlier case-insensitive
// duplicate and trimming to the cap. Blank queries are ignored.
func (s *RecentSearches) Add(ctx context.Context, profileID, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	list := s.List(ctx, profileID)

	updated := make([]string, 0, MaxRecentSearches)
	updated = append(updated, query)
	lower := strings.ToLower(query)
	for _, q := range list {
		if strings.ToLower(q) == lower {
			continue
		}
		updated = append(updated, q)
		if len(updated) == MaxRecentSearches {
			break
		}
	}

	key := fmt.Sprintf(recentKeyPattern, profileID)
	data, err := json.Marshal(updated)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to marshal recent searches")
		return false
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to write recent searches")
		return false
	}
	return true
}

// List returns the profile's recent queries, most recent first.
func (s *RecentSearches) List(ctx context.Context, profileID string) []string {
	key := fmt.Sprintf(recentKeyPattern, profileID)

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			s.logger.WithError(err).WithField("key", key).Warn("Recent searches read failed, using empty state")
		}
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Malformed recent searches, using empty state")
		return []string{}
	}
	return list
}

// Clear removes the profile's recent-search list.
func (s *RecentSearches) Clear(ctx context.Context, profileID string) error {
	key := fmt.Sprintf(recentKeyPattern, profileID)
	if err := s.kv.Del(ctx, key); err != nil {
		return fmt.Errorf("clear recent searches: %w", err)
	}
	return nil
}
