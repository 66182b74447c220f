package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/models"
	"github.com/tinysprout/garbha/backend/internal/progress"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

type KickHandler struct {
	kicks  *progress.KickStore
	logger *logrus.Logger
}

func NewKickHandler(kicks *progress.KickStore, logger *logrus.Logger) *KickHandler {
	return &KickHandler{
		kicks:  kicks,
		logger: logger,
	}
}

// HandleLogKick appends one kick event. Validation failures reject the
// event before anything is written.
func (h *KickHandler) HandleLogKick(c *gin.Context) {
	var req models.KickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid kick format", err)
		return
	}

	if req.Timestamp == 0 {
		req.Timestamp = time.Now().UnixMilli()
	}

	event := progress.KickEvent{
		ID:          utils.GenerateRandomID(12),
		ProfileID:   profileID(c),
		StoryID:     req.StoryID,
		SectionName: req.SectionName,
		Timestamp:   req.Timestamp,
		SessionID:   req.SessionID,
	}

	if err := h.kicks.LogKick(c.Request.Context(), event); err != nil {
		h.logger.WithError(err).Warn("Kick rejected")
		utils.ErrorResponse(c, http.StatusBadRequest, "Kick not recorded", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Kick recorded", event)
}

// HandleSessions summarises the caller's kick-counting sessions.
func (h *KickHandler) HandleSessions(c *gin.Context) {
	sessions := h.kicks.Sessions(c.Request.Context(), profileID(c))
	utils.SuccessResponse(c, http.StatusOK, "Kick sessions retrieved", sessions)
}

// HandleReset bulk-clears the profile's kick log, the only deletion path.
func (h *KickHandler) HandleReset(c *gin.Context) {
	if err := h.kicks.Reset(c.Request.Context(), profileID(c)); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to reset kick log", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Kick log reset", nil)
}
