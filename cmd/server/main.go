// backend/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/tinysprout/garbha/backend/internal/api/handlers"
	"github.com/tinysprout/garbha/backend/internal/config"
	"github.com/tinysprout/garbha/backend/internal/database"
	"github.com/tinysprout/garbha/backend/internal/health"
	"github.com/tinysprout/garbha/backend/internal/middleware"
	"github.com/tinysprout/garbha/backend/internal/models"
	"github.com/tinysprout/garbha/backend/internal/progress"
	"github.com/tinysprout/garbha/backend/internal/repository"
	"github.com/tinysprout/garbha/backend/internal/services"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	logger := utils.GetLogger()
	logger.Info("Starting garbha backend...")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Configuration validation failed")
	}

	dbConfig := &database.Config{
		DatabaseURL: cfg.Database.URL,
		RedisURL:    cfg.Redis.URL,
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	dbManager, err := database.NewManager(dbConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database manager")
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		logger.WithError(err).Fatal("Database migration failed")
	}

	repoManager := repository.NewRepositoryManager(dbManager.DB)
	cache := database.NewCache(dbManager.Redis, logger)
	kv := database.NewRedisKV(dbManager.Redis)

	exercises := progress.NewExerciseStore(kv, logger)
	kicks := progress.NewKickStore(kv, logger)
	journal := progress.NewJournalStore(kv, logger)
	recent := progress.NewRecentSearches(kv, logger)

	searchService := services.NewSearchService(repoManager, logger)
	dailyService := services.NewDailyService(cache, logger)
	relatedService := services.NewRelatedService(exercises, logger)
	streakService := services.NewStreakService(exercises, logger)

	searchHandler := handlers.NewSearchHandler(searchService, repoManager, recent, cache, logger)
	dailyHandler := handlers.NewDailyHandler(dailyService, logger)
	storyHandler := handlers.NewStoryHandler(relatedService, logger)
	progressHandler := handlers.NewProgressHandler(exercises, streakService, logger)
	kickHandler := handlers.NewKickHandler(kicks, logger)
	journalHandler := handlers.NewJournalHandler(journal, logger)

	checker := health.NewHealthChecker(dbManager, repoManager.SystemHealth, logger)

	if os.Getenv("LOG_LEVEL") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.NewRateLimiter(cfg.RateLimit.PerMinute).RateLimit())

	router.GET("/health", func(c *gin.Context) {
		overall := checker.CheckAll()
		servicesStatus := map[string]string{}
		for _, s := range overall.Services {
			servicesStatus[s.Name] = s.Status
		}
		code := http.StatusOK
		if overall.Status == "unhealthy" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, models.HealthResponse{
			Status:    overall.Status,
			Service:   "garbha-backend",
			Timestamp: time.Now().Format(time.RFC3339),
			Services:  servicesStatus,
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/search", searchHandler.HandleSearch)
		v1.GET("/search/suggestions", searchHandler.HandleSuggestions)
		v1.GET("/search/recent", searchHandler.HandleRecentSearches)

		v1.GET("/stories", storyHandler.HandleList)
		v1.GET("/stories/:id", storyHandler.HandleGet)
		v1.GET("/stories/:id/related", storyHandler.HandleRelated)

		v1.GET("/daily/:kind", dailyHandler.HandleDaily)

		v1.POST("/progress/responses", progressHandler.HandleSaveResponse)
		v1.GET("/progress/responses/:topicId", progressHandler.HandleResponses)
		v1.GET("/progress/completions", progressHandler.HandleCompletions)
		v1.GET("/progress/streak", progressHandler.HandleStreak)
		v1.DELETE("/progress/responses/:topicId", progressHandler.HandleClearResponses)

		v1.POST("/kicks", kickHandler.HandleLogKick)
		v1.GET("/kicks/sessions", kickHandler.HandleSessions)
		v1.DELETE("/kicks", kickHandler.HandleReset)

		v1.POST("/journal", journalHandler.HandleSave)
		v1.GET("/journal", journalHandler.HandleList)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Server stopped")
}
