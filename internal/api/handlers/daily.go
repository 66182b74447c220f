package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/catalog"
	"github.com/tinysprout/garbha/backend/internal/services"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

type DailyHandler struct {
	dailyService *services.DailyService
	logger       *logrus.Logger
}

func NewDailyHandler(dailyService *services.DailyService, logger *logrus.Logger) *DailyHandler {
	return &DailyHandler{
		dailyService: dailyService,
		logger:       logger,
	}
}

// HandleDaily serves the enrichment selection for a kind. An optional
// `date` (YYYY-MM-DD) overrides today; a non-zero `refresh` counter routes
// to the shuffle path instead of the deterministic rotation.
func (h *DailyHandler) HandleDaily(c *gin.Context) {
	kind := catalog.Kind(c.Param("kind"))
	if _, ok := catalog.ByKind(kind); !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "Unknown content kind", nil)
		return
	}

	count, _ := strconv.Atoi(c.DefaultQuery("count", "0"))

	if refresh, _ := strconv.ParseInt(c.DefaultQuery("refresh", "0"), 10, 64); refresh > 0 {
		items, err := h.dailyService.Refresh(kind, count, refresh)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to refresh selection", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Selection refreshed", items)
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
			return
		}
		date = parsed
	}

	selection, err := h.dailyService.Selection(c.Request.Context(), kind, date, count)
	if err != nil {
		h.logger.WithError(err).WithField("kind", kind).Error("Daily selection failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute daily selection", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Daily selection retrieved", selection)
}
