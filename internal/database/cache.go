package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Cache wraps Redis for ephemeral derived data: search results and daily
// selections. Both are pure functions of their inputs, so cache entries
// never need invalidation beyond TTL expiry.
type Cache struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewCache(client *redis.Client, logger *logrus.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger,
	}
}

// Cache key constants
const (
	SearchResultsKey  = "search:results:%s"
	DailySelectionKey = "daily:%s:%s:%d" // kind, date, count
)

// CacheSearchResults caches search results for a query hash.
func (c *Cache) CacheSearchResults(ctx context.Context, queryHash string, results interface{}, expiration time.Duration) error {
	key := fmt.Sprintf(SearchResultsKey, queryHash)

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal search results: %w", err)
	}

	return c.client.Set(ctx, key, data, expiration).Err()
}

// GetCachedSearchResults retrieves cached search results.
func (c *Cache) GetCachedSearchResults(ctx context.Context, queryHash string, result interface{}) error {
	key := fmt.Sprintf(SearchResultsKey, queryHash)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), result)
}

// CacheDailySelection caches one kind's selection for a date and item count.
// count is part of the key: callers asking for different counts must never
// share an entry.
func (c *Cache) CacheDailySelection(ctx context.Context, kind, date string, count int, selection interface{}, expiration time.Duration) error {
	key := fmt.Sprintf(DailySelectionKey, kind, date, count)

	data, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("failed to marshal daily selection: %w", err)
	}

	return c.client.Set(ctx, key, data, expiration).Err()
}

// GetCachedDailySelection retrieves a cached daily selection.
func (c *Cache) GetCachedDailySelection(ctx context.Context, kind, date string, count int, result interface{}) error {
	key := fmt.Sprintf(DailySelectionKey, kind, date, count)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), result)
}

// InvalidateSearchCache removes cached results for a query hash.
func (c *Cache) InvalidateSearchCache(ctx context.Context, queryHash string) error {
	key := fmt.Sprintf(SearchResultsKey, queryHash)
	return c.client.Del(ctx, key).Err()
}
