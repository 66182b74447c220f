package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/catalog"
	"github.com/tinysprout/garbha/backend/internal/services"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

type StoryHandler struct {
	relatedService *services.RelatedService
	logger         *logrus.Logger
}

func NewStoryHandler(relatedService *services.RelatedService, logger *logrus.Logger) *StoryHandler {
	return &StoryHandler{
		relatedService: relatedService,
		logger:         logger,
	}
}

// HandleList returns the full story library.
func (h *StoryHandler) HandleList(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Stories retrieved", catalog.Stories.Items())
}

// HandleGet returns one story by ID.
func (h *StoryHandler) HandleGet(c *gin.Context) {
	story, ok := catalog.Stories.ByID(c.Param("id"))
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "Story not found", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Story retrieved", story)
}

// HandleRelated returns the related-topic recommendations for a story.
// An unknown story yields an empty list, matching the scorer's contract.
func (h *StoryHandler) HandleRelated(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if limit > 10 {
		limit = 10
	}

	items := h.relatedService.Related(c.Request.Context(), profileID(c), c.Param("id"), limit)
	utils.SuccessResponse(c, http.StatusOK, "Related stories retrieved", items)
}
