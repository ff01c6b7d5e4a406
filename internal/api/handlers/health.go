package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bleck-backend/internal/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// HealthHandler reports liveness and readiness of the credential store and the state store
type HealthHandler struct {
	db    *gorm.DB
	cache cache.CacheService
}

// NewHealthHandler creates a new health handler. cacheService may be nil.
func NewHealthHandler(db *gorm.DB, cacheService cache.CacheService) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheService}
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.check(c.Request.Context(), "healthy", "error: ")

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   Version,
		Services:  services,
	})
}

// Ready handles GET /health/ready
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.check(c.Request.Context(), "ready", "not ready: ")

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live handles GET /health/live
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context, okValue, failPrefix string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	services := map[string]string{}
	healthy := true

	if err := h.pingDatabase(ctx); err != nil {
		services["database"] = failPrefix + err.Error()
		healthy = false
	} else {
		services["database"] = okValue
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			services["cache"] = failPrefix + err.Error()
			healthy = false
		} else {
			services["cache"] = okValue
		}
	}
	return services, healthy
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
