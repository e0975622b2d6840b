package service

import (
	"context"
	"errors"

	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
)

// ErrModelUnavailable is returned when model weights cannot be loaded or the
// serving backend cannot be reached. It is fatal to the request and is never
// retried automatically.
var ErrModelUnavailable = errors.New("model unavailable")

// Classifier defines the interface for emotion classification
type Classifier interface {
	// Classify returns the full probability distribution over the label set
	// of the model selected by mode, in model emission order
	Classify(ctx context.Context, text string, mode entity.LanguageMode, requestID string) (entity.Distribution, error)
}
