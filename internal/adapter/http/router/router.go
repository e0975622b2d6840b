package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Rupesh4061/Emotion-app/internal/adapter/client"
	"github.com/Rupesh4061/Emotion-app/internal/adapter/http/handler"
	"github.com/Rupesh4061/Emotion-app/internal/adapter/http/middleware"
	"github.com/Rupesh4061/Emotion-app/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(predictionUC usecase.PredictionUsecase, modelClient *client.ModelClient, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(modelClient, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize handlers
	predictionHandler := handler.NewPredictionHandler(predictionUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		predictions := v1.Group("/predictions")
		{
			predictions.POST("", predictionHandler.Predict)
			predictions.GET("/export", predictionHandler.ExportLog)
			predictions.GET("/stats", predictionHandler.LogStats)
			predictions.DELETE("", predictionHandler.ClearLog)
		}
	}

	return router
}
