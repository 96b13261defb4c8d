package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stockwatch/internal/caching"
	"stockwatch/internal/repositories"
)

// HealthHandlers handles health check endpoints
type HealthHandlers struct {
	db           repositories.Database
	cacheService caching.CacheService
}

func NewHealthHandlers(db repositories.Database, cacheService caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cacheService: cacheService}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck reports database and cache connectivity
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	if _, err := h.db.Exec(ctx, "SELECT 1"); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services["database"] = "healthy"
	}

	if h.cacheService != nil {
		if err := h.cacheService.Ping(ctx); err != nil {
			health.Services["cache"] = "unhealthy"
			health.Status = "degraded"
		} else {
			health.Services["cache"] = "healthy"
		}
	}

	statusCode := http.StatusOK
	if health.Status == "degraded" {
		statusCode = http.StatusPartialContent
	}
	return c.JSON(statusCode, health)
}

// ReadinessCheck determines if the application is ready to serve traffic.
// Only the database is critical; the cache degrades gracefully.
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.db.Exec(ctx, "SELECT 1"); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "Database unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"message": "All systems operational",
	})
}
