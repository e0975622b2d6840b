package csvstore

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
	"github.com/Rupesh4061/Emotion-app/internal/domain/repository"
)

func newTestLog(t *testing.T) (repository.PredictionLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "predictions_log.csv")
	return NewPredictionLog(path), path
}

func testRecord(text, label string, confidence float64) *entity.LogRecord {
	return &entity.LogRecord{
		Timestamp:      time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
		InputText:      text,
		PredictedLabel: label,
		Confidence:     confidence,
	}
}

func TestPredictionLog_Append(t *testing.T) {
	t.Run("creates file with header on first append", func(t *testing.T) {
		store, path := newTestLog(t)

		err := store.Append(context.Background(), testRecord("I am so happy today!", "joy", 0.92))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, 2)
		assert.Equal(t, "timestamp,input_text,predicted_label,confidence", lines[0])
	})

	t.Run("writes header only once", func(t *testing.T) {
		store, path := newTestLog(t)

		require.NoError(t, store.Append(context.Background(), testRecord("first", "joy", 0.9)))
		require.NoError(t, store.Append(context.Background(), testRecord("second", "sadness", 0.7)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(string(data), "timestamp,input_text,predicted_label,confidence"))
	})

	t.Run("append then export yields last row matching the record", func(t *testing.T) {
		store, _ := newTestLog(t)
		ctx := context.Background()

		require.NoError(t, store.Append(ctx, testRecord("earlier text", "neutral", 0.4)))
		record := testRecord("I am so happy today!", "joy", 0.92)
		require.NoError(t, store.Append(ctx, record))

		data, err := store.Export(ctx)
		require.NoError(t, err)

		rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		require.NoError(t, err)

		last := rows[len(rows)-1]
		assert.Equal(t, record.Timestamp.Format(time.RFC3339Nano), last[0])
		assert.Equal(t, "I am so happy today!", last[1])
		assert.Equal(t, "joy", last[2])

		confidence, err := strconv.ParseFloat(last[3], 64)
		require.NoError(t, err)
		assert.Equal(t, 0.92, confidence)
	})

	t.Run("quotes input text containing commas and newlines", func(t *testing.T) {
		store, _ := newTestLog(t)
		ctx := context.Background()

		require.NoError(t, store.Append(ctx, testRecord("well, this is\nawkward", "surprise", 0.6)))

		data, err := store.Export(ctx)
		require.NoError(t, err)

		rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "well, this is\nawkward", rows[1][1])
	})

	t.Run("unwritable path returns ErrNotWritable", func(t *testing.T) {
		store := NewPredictionLog(filepath.Join(t.TempDir(), "missing", "predictions_log.csv"))

		err := store.Append(context.Background(), testRecord("hello", "joy", 0.9))

		assert.ErrorIs(t, err, repository.ErrNotWritable)
	})
}

func TestPredictionLog_Export(t *testing.T) {
	t.Run("returns header only when nothing logged", func(t *testing.T) {
		store, _ := newTestLog(t)

		data, err := store.Export(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "timestamp,input_text,predicted_label,confidence\n", string(data))
	})

	t.Run("export is idempotent", func(t *testing.T) {
		store, _ := newTestLog(t)
		ctx := context.Background()

		require.NoError(t, store.Append(ctx, testRecord("hello", "joy", 0.9)))

		first, err := store.Export(ctx)
		require.NoError(t, err)
		second, err := store.Export(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		store, _ := newTestLog(t)
		ctx := context.Background()

		for _, text := range []string{"one", "two", "three"} {
			require.NoError(t, store.Append(ctx, testRecord(text, "neutral", 0.5)))
		}

		data, err := store.Export(ctx)
		require.NoError(t, err)

		rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "one", rows[1][1])
		assert.Equal(t, "two", rows[2][1])
		assert.Equal(t, "three", rows[3][1])
	})
}

func TestPredictionLog_Count(t *testing.T) {
	t.Run("zero when file does not exist", func(t *testing.T) {
		store, _ := newTestLog(t)

		count, err := store.Count(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("counts records excluding header", func(t *testing.T) {
		store, _ := newTestLog(t)
		ctx := context.Background()

		require.NoError(t, store.Append(ctx, testRecord("one", "joy", 0.9)))
		require.NoError(t, store.Append(ctx, testRecord("two", "fear", 0.8)))

		count, err := store.Count(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestPredictionLog_Clear(t *testing.T) {
	t.Run("removes the log file", func(t *testing.T) {
		store, path := newTestLog(t)
		ctx := context.Background()

		require.NoError(t, store.Append(ctx, testRecord("hello", "joy", 0.9)))
		require.NoError(t, store.Clear(ctx))

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		count, err := store.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("clearing a missing log is not an error", func(t *testing.T) {
		store, _ := newTestLog(t)

		assert.NoError(t, store.Clear(context.Background()))
	})
}
