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

type JournalHandler struct {
	journal *progress.JournalStore
	logger  *logrus.Logger
}

func NewJournalHandler(journal *progress.JournalStore, logger *logrus.Logger) *JournalHandler {
	return &JournalHandler{
		journal: journal,
		logger:  logger,
	}
}

// HandleSave upserts a journal entry. A request without an ID creates a
// new entry.
func (h *JournalHandler) HandleSave(c *gin.Context) {
	var req models.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid journal entry", err)
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
		return
	}

	entry := progress.JournalEntry{
		ID:        req.ID,
		Date:      req.Date,
		Title:     req.Title,
		Body:      req.Body,
		Mood:      req.Mood,
		CreatedAt: time.Now().UTC(),
	}
	if entry.ID == "" {
		entry.ID = utils.GenerateRandomID(12)
	}

	if !h.journal.Save(c.Request.Context(), profileID(c), entry) {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Entry not saved", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Journal entry saved", entry)
}

// HandleList returns the caller's journal, newest first.
func (h *JournalHandler) HandleList(c *gin.Context) {
	entries := h.journal.Entries(c.Request.Context(), profileID(c))
	utils.SuccessResponse(c, http.StatusOK, "Journal retrieved", entries)
}
