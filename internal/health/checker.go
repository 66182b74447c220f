package health

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/database"
	"github.com/tinysprout/garbha/backend/internal/models"
)

// HealthChecker manages health checks for the backing services.
type HealthChecker struct {
	dbManager  *database.Manager
	healthRepo models.SystemHealthRepository
	logger     *logrus.Logger
	startedAt  time.Time
}

func NewHealthChecker(dbManager *database.Manager, healthRepo models.SystemHealthRepository, logger *logrus.Logger) *HealthChecker {
	return &HealthChecker{
		dbManager:  dbManager,
		healthRepo: healthRepo,
		logger:     logger,
		startedAt:  time.Now(),
	}
}

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// OverallHealth represents the overall system health
type OverallHealth struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
	Uptime   string          `json:"uptime"`
}

// CheckPostgreSQL checks PostgreSQL database health
func (h *HealthChecker) CheckPostgreSQL() ServiceHealth {
	start := time.Now()
	err := h.dbManager.PingDatabase()
	responseTime := int(time.Since(start).Milliseconds())

	status := "healthy"
	errorMsg := ""
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
		h.logger.WithError(err).Error("PostgreSQL health check failed")
	}

	h.healthRepo.UpdateServiceHealth("postgresql", status, responseTime, errorMsg)

	return ServiceHealth{
		Name:         "postgresql",
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckRedis checks Redis health
func (h *HealthChecker) CheckRedis() ServiceHealth {
	start := time.Now()
	err := h.dbManager.PingRedis()
	responseTime := int(time.Since(start).Milliseconds())

	status := "healthy"
	errorMsg := ""
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
		h.logger.WithError(err).Error("Redis health check failed")
	}

	h.healthRepo.UpdateServiceHealth("redis", status, responseTime, errorMsg)

	return ServiceHealth{
		Name:         "redis",
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckAll runs every check and folds them into an overall status. The
// overall status is degraded when any single service is unhealthy, and
// unhealthy only when all are.
func (h *HealthChecker) CheckAll() OverallHealth {
	services := []ServiceHealth{
		h.CheckPostgreSQL(),
		h.CheckRedis(),
	}

	healthy := 0
	for _, s := range services {
		if s.Status == "healthy" {
			healthy++
		}
	}

	status := "healthy"
	switch {
	case healthy == 0:
		status = "unhealthy"
	case healthy < len(services):
		status = "degraded"
	}

	return OverallHealth{
		Status:   status,
		Services: services,
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
	}
}
