package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinysprout/garbha/backend/internal/progress"
	"github.com/tinysprout/garbha/backend/internal/services"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	kv := progress.NewMemoryKV()
	exercises := progress.NewExerciseStore(kv, logger)
	kicks := progress.NewKickStore(kv, logger)
	recent := progress.NewRecentSearches(kv, logger)

	searchHandler := NewSearchHandler(services.NewSearchService(nil, logger), nil, recent, nil, logger)
	dailyHandler := NewDailyHandler(services.NewDailyService(nil, logger), logger)
	storyHandler := NewStoryHandler(services.NewRelatedService(exercises, logger), logger)
	progressHandler := NewProgressHandler(exercises, services.NewStreakService(exercises, logger), logger)
	kickHandler := NewKickHandler(kicks, logger)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/search", searchHandler.HandleSearch)
		v1.GET("/search/suggestions", searchHandler.HandleSuggestions)
		v1.GET("/search/recent", searchHandler.HandleRecentSearches)
		v1.GET("/daily/:kind", dailyHandler.HandleDaily)
		v1.GET("/stories", storyHandler.HandleList)
		v1.GET("/stories/:id", storyHandler.HandleGet)
		v1.GET("/stories/:id/related", storyHandler.HandleRelated)
		v1.POST("/progress/responses", progressHandler.HandleSaveResponse)
		v1.GET("/progress/responses/:topicId", progressHandler.HandleResponses)
		v1.GET("/progress/completions", progressHandler.HandleCompletions)
		v1.GET("/progress/streak", progressHandler.HandleStreak)
		v1.DELETE("/progress/responses/:topicId", progressHandler.HandleClearResponses)
		v1.POST("/kicks", kickHandler.HandleLogKick)
		v1.GET("/kicks/sessions", kickHandler.HandleSessions)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Profile-ID", "test-profile")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestHandleSearch_EmptyQueryRejected(t *testing.T) {
	router := testRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]string{"query": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
}

func TestHandleSearch_ReturnsScoredResults(t *testing.T) {
	router := testRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]string{"query": "kick"})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	results, ok := data["results"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, results)
	assert.EqualValues(t, len(results), data["total"])
}

func TestHandleSearch_QueryTooLong(t *testing.T) {
	router := testRouter(t)

	long := bytes.Repeat([]byte("a"), 201)
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]string{"query": string(long)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecentSearches_TracksQueries(t *testing.T) {
	router := testRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]string{"query": "sleep"})
	doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]string{"query": "music"})

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/search/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)

	recent, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, recent, 2)
	assert.Equal(t, "music", recent[0])
	assert.Equal(t, "sleep", recent[1])
}

func TestHandleSuggestions_RequiresQuery(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/search/suggestions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDaily_UnknownKind(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/daily/poem", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDaily_SameDateIsStable(t *testing.T) {
	router := testRouter(t)

	w1, first := doJSON(t, router, http.MethodGet, "/api/v1/daily/fact?date=2025-03-15", nil)
	w2, second := doJSON(t, router, http.MethodGet, "/api/v1/daily/fact?date=2025-03-15", nil)
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, first.Data, second.Data)
}

func TestHandleDaily_InvalidDate(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/daily/fact?date=15-03-2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDaily_RefreshReturnsItems(t *testing.T) {
	router := testRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/daily/word?refresh=1&count=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestHandleGetStory_NotFound(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/stories/no-such-story", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListStories(t *testing.T) {
	router := testRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/stories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stories, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, stories)
}

func TestHandleRelated_UnknownStoryYieldsEmptyList(t *testing.T) {
	router := testRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/stories/no-such-story/related", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.Empty(t, envelope.Data)
}

func TestHandleSaveResponse_RequiresIdentifiers(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/progress/responses", map[string]interface{}{
		"kind": "quiz",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSaveResponse_RejectsOutOfRangeScore(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/progress/responses", map[string]interface{}{
		"exercise_id": "quiz-1",
		"topic_id":    "first-flutter",
		"kind":        "quiz",
		"score":       150,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgress_SaveThenReadBack(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/progress/responses", map[string]interface{}{
		"exercise_id": "quiz-1",
		"topic_id":    "first-flutter",
		"kind":        "quiz",
		"completed":   true,
		"score":       80,
		"timestamp":   time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
		"quiz":        map[string]interface{}{"answers": map[string]string{"q1": "b"}, "correct": 4, "total": 5},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/progress/responses/first-flutter", nil)
	require.Equal(t, http.StatusOK, w.Code)

	responses, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, responses, 1)

	w, envelope = doJSON(t, router, http.MethodGet, "/api/v1/progress/completions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	completions, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, completions, 1)
}

func TestProgress_ClearIsIdempotent(t *testing.T) {
	router := testRouter(t)

	for i := 0; i < 2; i++ {
		w, envelope := doJSON(t, router, http.MethodDelete, "/api/v1/progress/responses/first-flutter", nil)
		require.Equal(t, http.StatusOK, w.Code, "attempt %d", i)
		assert.True(t, envelope.Success)
	}
}

func TestHandleStreak_ReflectsCompletions(t *testing.T) {
	router := testRouter(t)

	today := time.Now().UTC().Format(time.RFC3339)
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/progress/responses", map[string]interface{}{
		"exercise_id": "quiz-1",
		"topic_id":    "first-flutter",
		"kind":        "quiz",
		"completed":   true,
		"timestamp":   today,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/progress/streak", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, data["current"])
	assert.EqualValues(t, 1, data["longest"])
}

func TestHandleLogKick_RejectsIncompleteEvent(t *testing.T) {
	router := testRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/kicks", map[string]interface{}{
		"story_id": "first-flutter",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKicks_LogThenListSessions(t *testing.T) {
	router := testRouter(t)

	for i := 0; i < 3; i++ {
		w, _ := doJSON(t, router, http.MethodPost, "/api/v1/kicks", map[string]interface{}{
			"story_id":     "first-flutter",
			"section_name": "intro",
			"session_id":   "session-1",
			"timestamp":    time.Now().UnixMilli() + int64(i),
		})
		require.Equal(t, http.StatusCreated, w.Code, fmt.Sprintf("kick %d", i))
	}

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/kicks/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	sessions, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, sessions, 1)

	session, ok := sessions[0].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, session["kicks"])
}
