package repository

import (
	"context"
	"errors"

	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
)

// ErrNotWritable is returned when the underlying store rejects a write.
// Callers must not abort the classify flow on this error.
var ErrNotWritable = errors.New("prediction log not writable")

// PredictionLog defines the interface for the append-only prediction store
type PredictionLog interface {
	// Append durably writes one record before returning
	Append(ctx context.Context, record *entity.LogRecord) error

	// Export serializes all records in insertion order as CSV with a header row
	Export(ctx context.Context) ([]byte, error)

	// Count returns the number of stored records
	Count(ctx context.Context) (int64, error)

	// Clear removes the whole log
	Clear(ctx context.Context) error
}
