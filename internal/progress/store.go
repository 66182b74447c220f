package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const exerciseKeyPattern = "progress:exercises:%s"

// ExerciseStore persists exercise responses and completion history as one
// JSON blob per profile. Writes rewrite the whole blob (last-write-wins);
// reads degrade to an empty default when the backend is unavailable or the
// stored blob is malformed.
type ExerciseStore struct {
	kv     KV
	logger *logrus.Logger
}

func NewExerciseStore(kv KV, logger *logrus.Logger) *ExerciseStore {
	return &ExerciseStore{kv: kv, logger: logger}
}

// SaveResponse upserts by (exerciseID, topicID). A completed response also
// upserts its CompletionRecord under the same key. Failures are logged and
// reported as false, never as an error.
func (s *ExerciseStore) SaveResponse(ctx context.Context, profileID string, resp ExerciseResponse) bool {
	blob := s.load(ctx, profileID)

	replaced := false
	for i := range blob.Responses {
		if blob.Responses[i].ExerciseID == resp.ExerciseID && blob.Responses[i].TopicID == resp.TopicID {
			blob.Responses[i] = resp
			replaced = true
			break
		}
	}
	if !replaced {
		blob.Responses = append(blob.Responses, resp)
	}

	if resp.Completed {
		record := CompletionRecord{
			TopicID:     resp.TopicID,
			ExerciseID:  resp.ExerciseID,
			CompletedAt: resp.Timestamp,
			Score:       resp.Score,
		}
		upserted := false
		for i := range blob.CompletionHistory {
			if blob.CompletionHistory[i].TopicID == record.TopicID && blob.CompletionHistory[i].ExerciseID == record.ExerciseID {
				blob.CompletionHistory[i] = record
				upserted = true
				break
			}
		}
		if !upserted {
			blob.CompletionHistory = append(blob.CompletionHistory, record)
		}
	}

	return s.write(ctx, profileID, blob)
}

// Responses returns all responses for a topic, unfiltered by completion
// state. Ordering across upserts is not guaranteed; callers must not rely
// on it.
func (s *ExerciseStore) Responses(ctx context.Context, profileID, topicID string) []ExerciseResponse {
	blob := s.load(ctx, profileID)
	out := make([]ExerciseResponse, 0)
	for _, r := range blob.Responses {
		if r.TopicID == topicID {
			out = append(out, r)
		}
	}
	return out
}

// CompletionHistory returns all completion records across all topics.
func (s *ExerciseStore) CompletionHistory(ctx context.Context, profileID string) []CompletionRecord {
	return s.load(ctx, profileID).CompletionHistory
}

// ClearResponses removes every response and completion record for the
// topic. Idempotent: a second call is a no-op.
func (s *ExerciseStore) ClearResponses(ctx context.Context, profileID, topicID string) bool {
	blob := s.load(ctx, profileID)

	responses := blob.Responses[:0]
	for _, r := range blob.Responses {
		if r.TopicID != topicID {
			responses = append(responses, r)
		}
	}
	blob.Responses = responses

	history := blob.CompletionHistory[:0]
	for _, c := range blob.CompletionHistory {
		if c.TopicID != topicID {
			history = append(history, c)
		}
	}
	blob.CompletionHistory = history

	return s.write(ctx, profileID, blob)
}

func (s *ExerciseStore) load(ctx context.Context, profileID string) exerciseBlob {
	key := fmt.Sprintf(exerciseKeyPattern, profileID)

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			s.logger.WithError(err).WithField("key", key).Warn("Exercise blob read failed, using empty state")
		}
		return emptyExerciseBlob()
	}

	var blob exerciseBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		// Malformed data is ignored until the next write overwrites it.
		s.logger.WithError(err).WithField("key", key).Warn("Malformed exercise blob, using empty state")
		return emptyExerciseBlob()
	}
	if blob.Responses == nil {
		blob.Responses = []ExerciseResponse{}
	}
	if blob.CompletionHistory == nil {
		blob.CompletionHistory = []CompletionRecord{}
	}
	return blob
}

func (s *ExerciseStore) write(ctx context.Context, profileID string, blob exerciseBlob) bool {
	key := fmt.Sprintf(exerciseKeyPattern, profileID)
	blob.LastUpdated = time.Now().UTC()
	blob.Version++

	data, err := json.Marshal(blob)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to marshal exercise blob")
		return false
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to write exercise blob")
		return false
	}
	return true
}
