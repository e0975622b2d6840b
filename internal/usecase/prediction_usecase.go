package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
	"github.com/Rupesh4061/Emotion-app/internal/domain/repository"
	"github.com/Rupesh4061/Emotion-app/internal/domain/service"
)

// Error definitions for prediction usecase
var (
	ErrEmptyText = errors.New("text is empty")
)

// TopK is the fixed number of ranked emotions returned per prediction
const TopK = 3

// PredictInput represents the input for a prediction request
type PredictInput struct {
	Text         string `json:"text" binding:"required"`
	LanguageMode string `json:"language_mode"`
	RequestID    string `json:"-"`
}

// PredictOutput represents the output of a prediction
type PredictOutput struct {
	Top          []entity.RankedEmotion `json:"top"`
	Distribution entity.Distribution    `json:"distribution"`
	LanguageMode string                 `json:"language_mode"`
	Logged       bool                   `json:"logged"`
	LatencyMs    int64                  `json:"latency_ms"`
}

// LogStatsOutput represents prediction log statistics
type LogStatsOutput struct {
	TotalPredictions int64 `json:"total_predictions"`
}

// PredictionUsecase defines the interface for the classify-rank-log pipeline
type PredictionUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error)
	ExportLog(ctx context.Context) ([]byte, error)
	LogStats(ctx context.Context) (*LogStatsOutput, error)
	ClearLog(ctx context.Context) error
}

type predictionUsecase struct {
	classifier    service.Classifier
	predictionLog repository.PredictionLog
	logger        *zap.Logger
}

// NewPredictionUsecase creates a new prediction usecase
func NewPredictionUsecase(classifier service.Classifier, predictionLog repository.PredictionLog, logger *zap.Logger) PredictionUsecase {
	return &predictionUsecase{
		classifier:    classifier,
		predictionLog: predictionLog,
		logger:        logger,
	}
}

func (u *predictionUsecase) Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	mode := entity.LanguageMode(input.LanguageMode)
	if input.LanguageMode == "" {
		mode = entity.LanguageModeEnglish
	}

	start := time.Now()
	dist, err := u.classifier.Classify(ctx, text, mode, input.RequestID)
	if err != nil {
		return nil, err
	}
	if len(dist) == 0 {
		return nil, fmt.Errorf("%w: model returned no labels", service.ErrModelUnavailable)
	}
	latencyMs := time.Since(start).Milliseconds()

	result := entity.Rank(dist, TopK)
	top := result.Top[0]

	// A failed append must not block the classify-and-display flow; the
	// result is still returned with logged=false.
	logged := true
	record := entity.NewLogRecord(text, top.Label, top.Probability)
	if err := u.predictionLog.Append(ctx, record); err != nil {
		logged = false
		u.logger.Warn("failed to append prediction log",
			zap.Error(err),
			zap.String("request_id", input.RequestID),
		)
	}

	return &PredictOutput{
		Top:          result.Top,
		Distribution: result.Distribution,
		LanguageMode: string(mode),
		Logged:       logged,
		LatencyMs:    latencyMs,
	}, nil
}

func (u *predictionUsecase) ExportLog(ctx context.Context) ([]byte, error) {
	return u.predictionLog.Export(ctx)
}

func (u *predictionUsecase) LogStats(ctx context.Context) (*LogStatsOutput, error) {
	total, err := u.predictionLog.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &LogStatsOutput{TotalPredictions: total}, nil
}

func (u *predictionUsecase) ClearLog(ctx context.Context) error {
	return u.predictionLog.Clear(ctx)
}
