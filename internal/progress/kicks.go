package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const kickKeyPattern = "kicks:%s"

// KickEvent is one user-logged kick. Events are append-only: never mutated
// or deleted individually, bulk-cleared only via a profile data reset.
type KickEvent struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profile_id"`
	StoryID     string `json:"story_id"`
	SectionName string `json:"section_name"`
	Timestamp   int64  `json:"timestamp"` // epoch milliseconds
	SessionID   string `json:"session_id"`
}

// Validate rejects an event missing any required field. A violation is a
// programming error in the caller, reported synchronously before any write.
func (e KickEvent) Validate() error {
	switch {
	case e.ID == "":
		return fmt.Errorf("kick event: id is required")
	case e.ProfileID == "":
		return fmt.Errorf("kick event: profile id is required")
	case e.StoryID == "":
		return fmt.Errorf("kick event: story id is required")
	case e.SectionName == "":
		return fmt.Errorf("kick event: section name is required")
	case e.Timestamp <= 0:
		return fmt.Errorf("kick event: timestamp must be positive")
	case e.SessionID == "":
		return fmt.Errorf("kick event: session id is required")
	}
	return nil
}

// KickSession summarises one counting session.
type KickSession struct {
	SessionID string `json:"session_id"`
	Kicks     int    `json:"kicks"`
	FirstAt   int64  `json:"first_at"`
	LastAt    int64  `json:"last_at"`
}

type kickRecord struct {
	Events      []KickEvent `json:"events"`
	LastUpdated time.Time   `json:"lastUpdated"`
	Version     int64       `json:"version"`
}

// KickStore keeps each profile's kick log as one JSON blob.
type KickStore struct {
	kv     KV
	logger *logrus.Logger
}

func NewKickStore(kv KV, logger *logrus.Logger) *KickStore {
	return &KickStore{kv: kv, logger: logger}
}

// LogKick validates and appends one event. Validation failures return
// before any storage access; storage failures surface as errors too, so
// callers can show a "not saved" state.
func (s *KickStore) LogKick(ctx context.Context, event KickEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	record := s.load(ctx, event.ProfileID)
	record.Events = append(record.Events, event)
	record.LastUpdated = time.Now().UTC()
	record.Version++

	key := fmt.Sprintf(kickKeyPattern, event.ProfileID)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal kick record: %w", err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.logger.WithError(err).WithField("profile", event.ProfileID).Error("Failed to write kick record")
		return fmt.Errorf("write kick record: %w", err)
	}
	return nil
}

// Kicks returns the profile's full kick log in append order.
func (s *KickStore) Kicks(ctx context.Context, profileID string) []KickEvent {
	return s.load(ctx, profileID).Events
}

// Sessions aggregates kicks per counting session, newest session first.
func (s *KickStore) Sessions(ctx context.Context, profileID string) []KickSession {
	byID := map[string]*KickSession{}
	var order []string
	for _, ev := range s.load(ctx, profileID).Events {
		sess, ok := byID[ev.SessionID]
		if !ok {
			sess = &KickSession{SessionID: ev.SessionID, FirstAt: ev.Timestamp, LastAt: ev.Timestamp}
			byID[ev.SessionID] = sess
			order = append(order, ev.SessionID)
		}
		sess.Kicks++
		if ev.Timestamp < sess.FirstAt {
			sess.FirstAt = ev.Timestamp
		}
		if ev.Timestamp > sess.LastAt {
			sess.LastAt = ev.Timestamp
		}
	}

	sessions := make([]KickSession, 0, len(order))
	for _, id := range order {
		sessions = append(sessions, *byID[id])
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].LastAt > sessions[j].LastAt
	})
	return sessions
}

// Reset bulk-clears the profile's kick log. Part of profile data reset,
// the only deletion path for kick events.
func (s *KickStore) Reset(ctx context.Context, profileID string) error {
	key := fmt.Sprintf(kickKeyPattern, profileID)
	if err := s.kv.Del(ctx, key); err != nil {
		return fmt.Errorf("reset kick record: %w", err)
	}
	return nil
}

func (s *KickStore) load(ctx context.Context, profileID string) kickRecord {
	key := fmt.Sprintf(kickKeyPattern, profileID)

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			s.logger.WithError(err).WithField("key", key).Warn("Kick record read failed, using empty state")
		}
		return kickRecord{Events: []KickEvent{}}
	}

	var record kickRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Malformed kick record, using empty state")
		return kickRecord{Events: []KickEvent{}}
	}
	if record.Events == nil {
		record.Events = []KickEvent{}
	}
	return record
}
