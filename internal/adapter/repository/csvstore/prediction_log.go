package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
	"github.com/Rupesh4061/Emotion-app/internal/domain/repository"
)

var csvHeader = []string{"timestamp", "input_text", "predicted_label", "confidence"}

// PredictionLog is an append-only CSV flat-file store. Each append opens,
// writes one row and closes the file, so every record is durable before the
// call returns. The mutex serializes writers: the pipeline is single-writer
// but the HTTP surface can carry concurrent requests.
type PredictionLog struct {
	path string
	mu   sync.Mutex
}

// NewPredictionLog creates a CSV store at the given path. The file is created
// on first append, with the header row written once.
func NewPredictionLog(path string) repository.PredictionLog {
	return &PredictionLog{path: path}
}

func (s *PredictionLog) Append(ctx context.Context, record *entity.LogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrNotWritable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrNotWritable, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrNotWritable, err)
		}
	}

	row := []string{
		record.Timestamp.UTC().Format(time.RFC3339Nano),
		record.InputText,
		record.PredictedLabel,
		strconv.FormatFloat(record.Confidence, 'f', -1, 64),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrNotWritable, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrNotWritable, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrNotWritable, err)
	}

	return nil
}

func (s *PredictionLog) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Nothing logged yet: export just the header.
			return []byte(strings.Join(csvHeader, ",") + "\n"), nil
		}
		return nil, fmt.Errorf("failed to read prediction log: %w", err)
	}

	return data, nil
}

func (s *PredictionLog) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read prediction log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse prediction log: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	// Header row is not a record.
	return int64(len(rows) - 1), nil
}

func (s *PredictionLog) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", repository.ErrNotWritable, err)
	}

	return nil
}
