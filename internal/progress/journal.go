package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const journalKeyPattern = "journal:%s"

// JournalEntry is one dated free-text entry, upserted by ID.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type journalRecord struct {
	Entries     []JournalEntry `json:"entries"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Version     int64          `json:"version"`
}

// JournalStore keeps each profile's journal as one JSON blob.
type JournalStore struct {
	kv     KV
	logger *logrus.Logger
}

func NewJournalStore(kv KV, logger *logrus.Logger) *JournalStore {
	return &JournalStore{kv: kv, logger: logger}
}

// Save upserts an entry by ID. Failures are logged and reported as false.
func (s *JournalStore) Save(ctx context.Context, profileID string, entry JournalEntry) bool {
	record := s.load(ctx, profileID)

	replaced := false
	for i := range record.Entries {
		if record.Entries[i].ID == entry.ID {
			record.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		record.Entries = append(record.Entries, entry)
	}

	record.LastUpdated = time.Now().UTC()
	record.Version++

	key := fmt.Sprintf(journalKeyPattern, profileID)
	data, err := json.Marshal(record)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to marshal journal record")
		return false
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to write journal record")
		return false
	}
	return true
}

// Entries lists the profile's journal, newest first.
func (s *JournalStore) Entries(ctx context.Context, profileID string) []JournalEntry {
	entries := s.load(ctx, profileID).Entries
	sorted := make([]JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// Reset bulk-clears the profile's journal.
func (s *JournalStore) Reset(ctx context.Context, profileID string) error {
	key := fmt.Sprintf(journalKeyPattern, profileID)
	if err := s.kv.Del(ctx, key); err != nil {
		return fmt.Errorf("reset journal: %w", err)
	}
	return nil
}

func (s *JournalStore) load(ctx context.Context, profileID string) journalRecord {
	key := fmt.Sprintf(journalKeyPattern, profileID)

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			s.logger.WithError(err).WithField("key", key).Warn("Journal read failed, using empty state")
		}
		return journalRecord{Entries: []JournalEntry{}}
	}

	var record journalRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Malformed journal record, using empty state")
		return journalRecord{Entries: []JournalEntry{}}
	}
	if record.Entries == nil {
		record.Entries = []JournalEntry{}
	}
	return record
}
