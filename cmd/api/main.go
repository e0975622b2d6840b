package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rupesh4061/Emotion-app/internal/adapter/client"
	"github.com/Rupesh4061/Emotion-app/internal/adapter/http/router"
	"github.com/Rupesh4061/Emotion-app/internal/adapter/repository/csvstore"
	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
	"github.com/Rupesh4061/Emotion-app/internal/infrastructure/cache"
	"github.com/Rupesh4061/Emotion-app/internal/infrastructure/config"
	"github.com/Rupesh4061/Emotion-app/internal/infrastructure/logger"
	"github.com/Rupesh4061/Emotion-app/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize Redis (optional, continue without it)
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		log.Info("Connected to Redis")
	}

	// Model serving client and classifier
	modelClient := client.NewModelClient(cfg.Model.BaseURL, cfg.Model.Timeout)
	models := map[entity.LanguageMode]string{
		entity.LanguageModeEnglish:      cfg.Model.EnglishModel,
		entity.LanguageModeMultilingual: cfg.Model.MultilingualModel,
	}

	var resultCache client.ResultCache
	if redisClient != nil {
		resultCache = cache.NewPredictionCache(redisClient, cfg.Redis.TTL)
	}
	classifier := client.NewModelClassifier(modelClient, models, resultCache)

	// Prediction log store
	predictionLog := csvstore.NewPredictionLog(cfg.Store.Path)
	log.Info("Prediction log ready", zap.String("path", cfg.Store.Path))

	// Initialize usecase
	predictionUC := usecase.NewPredictionUsecase(classifier, predictionLog, log)

	// Setup router
	r := router.Setup(predictionUC, modelClient, redisClient, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
