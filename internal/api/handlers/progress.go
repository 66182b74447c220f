package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/progress"
	"github.com/tinysprout/garbha/backend/internal/services"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

type ProgressHandler struct {
	exercises     *progress.ExerciseStore
	streakService *services.StreakService
	logger        *logrus.Logger
}

func NewProgressHandler(exercises *progress.ExerciseStore, streakService *services.StreakService, logger *logrus.Logger) *ProgressHandler {
	return &ProgressHandler{
		exercises:     exercises,
		streakService: streakService,
		logger:        logger,
	}
}

// HandleSaveResponse upserts an exercise response for the caller's profile.
func (h *ProgressHandler) HandleSaveResponse(c *gin.Context) {
	var resp progress.ExerciseResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid response format", err)
		return
	}

	if resp.ExerciseID == "" || resp.TopicID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "exercise_id and topic_id are required", nil)
		return
	}
	if resp.Score != nil && (*resp.Score < 0 || *resp.Score > 100) {
		utils.ErrorResponse(c, http.StatusBadRequest, "score must be between 0 and 100", nil)
		return
	}
	if resp.Timestamp.IsZero() {
		resp.Timestamp = time.Now().UTC()
	}

	if !h.exercises.SaveResponse(c.Request.Context(), profileID(c), resp) {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Progress not saved", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response saved", nil)
}

// HandleResponses returns every saved response for a topic.
func (h *ProgressHandler) HandleResponses(c *gin.Context) {
	responses := h.exercises.Responses(c.Request.Context(), profileID(c), c.Param("topicId"))
	utils.SuccessResponse(c, http.StatusOK, "Responses retrieved", responses)
}

// HandleCompletions returns the caller's full completion history.
func (h *ProgressHandler) HandleCompletions(c *gin.Context) {
	history := h.exercises.CompletionHistory(c.Request.Context(), profileID(c))
	utils.SuccessResponse(c, http.StatusOK, "Completion history retrieved", history)
}

// HandleStreak returns the caller's completion streaks.
func (h *ProgressHandler) HandleStreak(c *gin.Context) {
	streak := h.streakService.Streak(c.Request.Context(), profileID(c), time.Now())
	utils.SuccessResponse(c, http.StatusOK, "Streak computed", streak)
}

// HandleClearResponses removes a topic's responses and completion records.
// Idempotent: clearing an already-empty topic succeeds.
func (h *ProgressHandler) HandleClearResponses(c *gin.Context) {
	if !h.exercises.ClearResponses(c.Request.Context(), profileID(c), c.Param("topicId")) {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to clear responses", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Responses cleared", nil)
}
