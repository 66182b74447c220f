// backend/internal/api/handlers/search.go
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/database"
	"github.com/tinysprout/garbha/backend/internal/models"
	"github.com/tinysprout/garbha/backend/internal/progress"
	"github.com/tinysprout/garbha/backend/internal/repository"
	"github.com/tinysprout/garbha/backend/internal/services"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
	repoManager   *repository.RepositoryManager
	recent        *progress.RecentSearches
	cache         *database.Cache
	logger        *logrus.Logger
}

func NewSearchHandler(
	searchService *services.SearchService,
	repoManager *repository.RepositoryManager,
	recent *progress.RecentSearches,
	cache *database.Cache,
	logger *logrus.Logger,
) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		repoManager:   repoManager,
		recent:        recent,
		cache:         cache,
		logger:        logger,
	}
}

// HandleSearch processes library search requests
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	startTime := time.Now()

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid search request")
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query cannot be empty", nil)
		return
	}

	if len(query) > 200 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query too long (max 200 characters)", nil)
		return
	}

	profile := profileID(c)

	h.logger.WithFields(logrus.Fields{
		"query":   query,
		"profile": profile,
	}).Info("Processing search request")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cacheKey := h.generateCacheKey(query)
	cached := &models.SearchResponse{}

	var response models.SearchResponse
	if h.cache != nil && h.cache.GetCachedSearchResults(ctx, cacheKey, cached) == nil {
		h.logger.Debug("Search results served from cache")
		response = *cached
	} else {
		results := h.searchService.Search(query)
		response = models.SearchResponse{
			Results:      results,
			Total:        len(results),
			ResponseTime: int(time.Since(startTime).Milliseconds()),
		}

		if h.cache != nil {
			if err := h.cache.CacheSearchResults(ctx, cacheKey, &response, 5*time.Minute); err != nil {
				h.logger.WithError(err).Warn("Failed to cache search results")
			}
		}
	}

	responseTime := time.Since(startTime)
	response.ResponseTime = int(responseTime.Milliseconds())

	if h.recent != nil {
		h.recent.Add(ctx, profile, query)
	}

	go h.trackSearchQuery(profile, query, response.Total, responseTime, c.GetHeader("User-Agent"), c.ClientIP())
	go h.updatePopularQueries(query, response.Total, responseTime)

	h.logger.WithFields(logrus.Fields{
		"results_count": response.Total,
		"response_time": responseTime.Milliseconds(),
	}).Info("Search completed successfully")

	utils.SuccessResponse(c, http.StatusOK, "Search completed", response)
}

// HandleSuggestions returns search completions
func (h *SearchHandler) HandleSuggestions(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query parameter 'q' is required", nil)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit > 10 {
		limit = 10
	}

	suggestions := h.searchService.Suggestions(query, limit)

	utils.SuccessResponse(c, http.StatusOK, "Suggestions retrieved", suggestions)
}

// HandleRecentSearches returns the caller's recent queries
func (h *SearchHandler) HandleRecentSearches(c *gin.Context) {
	recent := h.recent.List(c.Request.Context(), profileID(c))
	utils.SuccessResponse(c, http.StatusOK, "Recent searches retrieved", recent)
}

// Helper methods

func (h *SearchHandler) generateCacheKey(query string) string {
	return utils.MD5Hash(strings.ToLower(strings.TrimSpace(query)))
}

func (h *SearchHandler) trackSearchQuery(profile, query string, resultsCount int, responseTime time.Duration, userAgent, ip string) {
	if h.repoManager == nil {
		return
	}
	searchQuery := &models.SearchQuery{
		QueryText:       query,
		ProfileID:       profile,
		ResultsCount:    resultsCount,
		SearchTimestamp: time.Now(),
		ResponseTimeMs:  int(responseTime.Milliseconds()),
		UserAgent:       userAgent,
		IPAddress:       ip,
	}

	if err := h.repoManager.SearchQuery.Create(searchQuery); err != nil {
		h.logger.WithError(err).Error("Failed to track search query")
	}
}

func (h *SearchHandler) updatePopularQueries(query string, resultsCount int, responseTime time.Duration) {
	if h.repoManager == nil {
		return
	}
	if err := h.repoManager.PopularQuery.IncrementCount(query); err != nil {
		h.logger.WithError(err).Error("Failed to update popular queries")
		return
	}

	if err := h.repoManager.PopularQuery.UpdateStats(query, float64(resultsCount), int(responseTime.Milliseconds())); err != nil {
		h.logger.WithError(err).Error("Failed to update query stats")
	}
}
