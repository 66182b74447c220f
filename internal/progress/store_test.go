package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV simulates an unavailable storage backend.
type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}
func (failingKV) Set(context.Context, string, []byte) error {
	return errors.New("storage unavailable")
}
func (failingKV) Del(context.Context, string) error {
	return errors.New("storage unavailable")
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func intPtr(v int) *int { return &v }

func sampleResponse() ExerciseResponse {
	return ExerciseResponse{
		ExerciseID: "ex-1",
		TopicID:    "first-flutter",
		Timestamp:  time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		Kind:       ExerciseQuiz,
		Completed:  true,
		Score:      intPtr(80),
		Quiz: &QuizPayload{
			Answers: map[string]string{"q1": "b"},
			Correct: 4,
			Total:   5,
		},
	}
}

func TestSaveResponse_RoundTrip(t *testing.T) {
	store := NewExerciseStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	resp := sampleResponse()
	require.True(t, store.SaveResponse(ctx, "profile-1", resp))

	got := store.Responses(ctx, "profile-1", "first-flutter")
	require.Len(t, got, 1)
	assert.Equal(t, resp, got[0])
}

func TestSaveResponse_UpsertKeepsOneRecord(t *testing.T) {
	store := NewExerciseStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	first := sampleResponse()
	first.Completed = false
	first.Score = nil
	require.True(t, store.SaveResponse(ctx, "p", first))

	updated := sampleResponse()
	updated.Score = intPtr(95)
	require.True(t, store.SaveResponse(ctx, "p", updated))

	got := store.Responses(ctx, "p", "first-flutter")
	require.Len(t, got, 1)
	assert.Equal(t, 95, *got[0].Score)
	assert.True(t, got[0].Completed)
}

func TestSaveResponse_CompletionUpserted(t *testing.T) {
	store := NewExerciseStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	require.True(t, store.SaveResponse(ctx, "p", sampleResponse()))

	// Saving again must not duplicate the completion record.
	again := sampleResponse()
	again.Score = intPtr(100)
	require.True(t, store.SaveResponse(ctx, "p", again))

	history := store.CompletionHistory(ctx, "p")
	require.Len(t, history, 1)
	assert.Equal(t, "first-flutter", history[0].TopicID)
	assert.Equal(t, "ex-1", history[0].ExerciseID)
	assert.Equal(t, 100, *history[0].Score)
}

func TestSaveResponse_IncompleteLeavesHistoryAlone(t *testing.T) {
	store := NewExerciseStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	resp := sampleResponse()
	resp.Completed = false
	require.True(t, store.SaveResponse(ctx, "p", resp))

	assert.Empty(t, store.CompletionHistory(ctx, "p"))
}

func TestResponses_FilteredByTopic(t *testing.T) {
	store := NewExerciseStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	a := sampleResponse()
	b := sampleResponse()
	b.ExerciseID = "ex-2"
	b.TopicID = "plate-for-two"
	require.True(t, store.SaveResponse(ctx, "p", a))
	require.True(t, store.SaveResponse(ctx, "p", b))

	assert.Len(t, store.Responses(ctx, "p", "first-flutter"), 1)
	assert.Len(t, store.Responses(ctx, "p", "plate-for-two"), 1)
	assert.Empty(t, store.Responses(ctx, "p", "unknown"))
}

func TestClearResponses_Idempotent(t *testing.T) {
	kv := NewMemoryKV()
	store := NewExerciseStore(kv, testLogger())
	ctx := context.Background()

	require.True(t, store.SaveResponse(ctx, "p", sampleResponse()))
	require.True(t, store.ClearResponses(ctx, "p", "first-flutter"))

	afterOnce, err := kv.Get(ctx, fmt.Sprintf(exerciseKeyPattern, "p"))
	require.NoError(t, err)

	require.True(t, store.ClearResponses(ctx, "p", "first-flutter"))
	afterTwice, err := kv.Get(ctx, fmt.Sprintf(exerciseKeyPattern, "p"))
	require.NoError(t, err)

	assert.Empty(t, store.Responses(ctx, "p", "first-flutter"))
	assert.Empty(t, store.CompletionHistory(ctx, "p"))

	// Same logical state either way: only bookkeeping fields may differ.
	var once, twice exerciseBlob
	require.NoError(t, json.Unmarshal(afterOnce, &once))
	require.NoError(t, json.Unmarshal(afterTwice, &twice))
	assert.Equal(t, once.Responses, twice.Responses)
	assert.Equal(t, once.CompletionHistory, twice.CompletionHistory)
}

func TestClearResponses_OnlyTargetTopic(t *testing.T) {
	store := NewExerciseStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	a := sampleResponse()
	b := sampleResponse()
	b.ExerciseID = "ex-2"
	b.TopicID = "plate-for-two"
	require.True(t, store.SaveResponse(ctx, "p", a))
	require.True(t, store.SaveResponse(ctx, "p", b))

	require.True(t, store.ClearResponses(ctx, "p", "first-flutter"))

	assert.Empty(t, store.Responses(ctx, "p", "first-flutter"))
	assert.Len(t, store.Responses(ctx, "p", "plate-for-two"), 1)
	require.Len(t, store.CompletionHistory(ctx, "p"), 1)
	assert.Equal(t, "plate-for-two", store.CompletionHistory(ctx, "p")[0].TopicID)
}

func TestMalformedBlobDegradesToEmpty(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, fmt.Sprintf(exerciseKeyPattern, "p"), []byte("{not json")))

	store := NewExerciseStore(kv, testLogger())
	assert.Empty(t, store.Responses(ctx, "p", "any"))
	assert.Empty(t, store.CompletionHistory(ctx, "p"))

	// A save overwrites the malformed blob and recovers.
	require.True(t, store.SaveResponse(ctx, "p", sampleResponse()))
	assert.Len(t, store.Responses(ctx, "p", "first-flutter"), 1)
}

func TestStorageUnavailable_NeverErrors(t *testing.T) {
	store := NewExerciseStore(failingKV{}, testLogger())
	ctx := context.Background()

	assert.False(t, store.SaveResponse(ctx, "p", sampleResponse()))
	assert.Empty(t, store.Responses(ctx, "p", "first-flutter"))
	assert.Empty(t, store.CompletionHistory(ctx, "p"))
	assert.False(t, store.ClearResponses(ctx, "p", "first-flutter"))
}
