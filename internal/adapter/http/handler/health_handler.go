package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Rupesh4061/Emotion-app/internal/adapter/client"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	modelClient *client.ModelClient
	redis       *redis.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(modelClient *client.ModelClient, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		modelClient: modelClient,
		redis:       redis,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check model server
	if h.modelClient != nil {
		if _, err := h.modelClient.Health(ctx); err != nil {
			components["model_server"] = "error: " + err.Error()
			healthy = false
		} else {
			components["model_server"] = "ok"
		}
	} else {
		components["model_server"] = "not configured"
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// The service is only useful when the model server responds
	if h.modelClient != nil {
		if err := h.modelClient.Ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model server unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
