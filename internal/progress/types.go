package progress

import (
	"time"
)

// ExerciseKind is the closed set of exercise payload variants.
type ExerciseKind string

const (
	ExerciseQuiz       ExerciseKind = "quiz"
	ExerciseReflection ExerciseKind = "reflection"
	ExerciseMatching   ExerciseKind = "matching"
	ExerciseBreathing  ExerciseKind = "breathing"
)

// QuizPayload records the selected option per question.
type QuizPayload struct {
	Answers map[string]string `json:"answers"`
	Correct int               `json:"correct"`
	Total   int               `json:"total"`
}

// ReflectionPayload is free-text journaling attached to an exercise.
type ReflectionPayload struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

// MatchingPayload records concept-pair matches.
type MatchingPayload struct {
	Pairs   map[string]string `json:"pairs"`
	Correct int               `json:"correct"`
}

// BreathingPayload records a completed breathing session.
type BreathingPayload struct {
	Rounds          int `json:"rounds"`
	DurationSeconds int `json:"duration_seconds"`
}

// ExerciseResponse is one persisted answer to (part of) an exercise.
// Exactly one payload pointer matching Kind is set; the tagged union is
// closed so storage code can switch exhaustively.
type ExerciseResponse struct {
	ExerciseID string       `json:"exercise_id"`
	TopicID    string       `json:"topic_id"`
	Timestamp  time.Time    `json:"timestamp"`
	Kind       ExerciseKind `json:"kind"`
	Completed  bool         `json:"completed"`
	Score      *int         `json:"score,omitempty"` // 0-100 when present

	Quiz       *QuizPayload       `json:"quiz,omitempty"`
	Reflection *ReflectionPayload `json:"reflection,omitempty"`
	Matching   *MatchingPayload   `json:"matching,omitempty"`
	Breathing  *BreathingPayload  `json:"breathing,omitempty"`
}

// CompletionRecord is derived whenever a response transitions to completed,
// one per (topicID, exerciseID) pair.
type CompletionRecord struct {
	TopicID     string    `json:"topic_id"`
	ExerciseID  string    `json:"exercise_id"`
	CompletedAt time.Time `json:"completed_at"`
	Score       *int      `json:"score,omitempty"`
}

// exerciseBlob is the single JSON document each profile's exercise state
// lives in. Version is reserved for optimistic concurrency; it is bumped on
// every write but not yet checked on read.
type exerciseBlob struct {
	Responses         []ExerciseResponse `json:"responses"`
	CompletionHistory []CompletionRecord `json:"completionHistory"`
	LastUpdated       time.Time          `json:"lastUpdated"`
	Version           int64              `json:"version"`
}

func emptyExerciseBlob() exerciseBlob {
	return exerciseBlob{
		Responses:         []ExerciseResponse{},
		CompletionHistory: []CompletionRecord{},
	}
}
