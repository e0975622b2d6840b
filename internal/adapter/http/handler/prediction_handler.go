package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rupesh4061/Emotion-app/internal/usecase"
)

// PredictionHandler handles prediction-related HTTP requests
type PredictionHandler struct {
	predictionUC usecase.PredictionUsecase
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionUC usecase.PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{predictionUC: predictionUC}
}

// Predict handles POST /api/v1/predictions
func (h *PredictionHandler) Predict(c *gin.Context) {
	var input usecase.PredictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if input.LanguageMode != "" && !IsValidLanguageMode(input.LanguageMode) {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid language_mode")
		return
	}

	input.RequestID = c.GetString("request_id")

	output, err := h.predictionUC.Predict(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, output)
}

// ExportLog handles GET /api/v1/predictions/export
func (h *PredictionHandler) ExportLog(c *gin.Context) {
	data, err := h.predictionUC.ExportLog(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="predictions_log.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// LogStats handles GET /api/v1/predictions/stats
func (h *PredictionHandler) LogStats(c *gin.Context) {
	output, err := h.predictionUC.LogStats(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// ClearLog handles DELETE /api/v1/predictions
func (h *PredictionHandler) ClearLog(c *gin.Context) {
	if err := h.predictionUC.ClearLog(c.Request.Context()); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"cleared": true})
}
