package entity

import (
	"sort"
	"time"
)

// LanguageMode selects which pretrained model variant services a request
type LanguageMode string

const (
	LanguageModeEnglish      LanguageMode = "english"
	LanguageModeMultilingual LanguageMode = "multilingual"
)

// EmotionScore is a single (label, probability) pair emitted by a model
type EmotionScore struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Distribution is the full probability distribution over a model's label set,
// in model emission order. The label set depends on the model, so there is no
// fixed emotion enum.
type Distribution []EmotionScore

// Sum returns the total probability mass of the distribution
func (d Distribution) Sum() float64 {
	var sum float64
	for _, s := range d {
		sum += s.Probability
	}
	return sum
}

// Sorted returns a copy sorted by probability descending. The sort is stable:
// ties keep the model emission order so output stays deterministic.
func (d Distribution) Sorted() Distribution {
	sorted := make(Distribution, len(d))
	copy(sorted, d)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Probability > sorted[j].Probability
	})
	return sorted
}

// TopK returns the k highest-probability entries in descending order.
// Truncation never reorders.
func (d Distribution) TopK(k int) Distribution {
	sorted := d.Sorted()
	if k < 0 {
		k = 0
	}
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

// RankedEmotion is a ranked label with its display glyph attached
type RankedEmotion struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Emoji       string  `json:"emoji"`
}

// PredictionResult holds the top-k ranked emotions plus the full sorted
// distribution for charting
type PredictionResult struct {
	Top          []RankedEmotion `json:"top"`
	Distribution Distribution    `json:"distribution"`
}

// Rank sorts a raw distribution, truncates to the top k entries and attaches
// an emoji per label. Unknown labels get the default glyph, never an error.
func Rank(d Distribution, k int) *PredictionResult {
	sorted := d.Sorted()
	topK := sorted
	if k >= 0 && k < len(topK) {
		topK = topK[:k]
	}

	top := make([]RankedEmotion, len(topK))
	for i, s := range topK {
		top[i] = RankedEmotion{
			Label:       s.Label,
			Probability: s.Probability,
			Emoji:       LabelEmoji(s.Label),
		}
	}

	return &PredictionResult{
		Top:          top,
		Distribution: sorted,
	}
}

// LogRecord is one persisted prediction. Records are immutable once written
// and never deleted individually (the log is append-only).
type LogRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	InputText      string    `json:"input_text"`
	PredictedLabel string    `json:"predicted_label"`
	Confidence     float64   `json:"confidence"`
}

// NewLogRecord creates a LogRecord stamped with the current UTC time
func NewLogRecord(inputText, predictedLabel string, confidence float64) *LogRecord {
	return &LogRecord{
		Timestamp:      time.Now().UTC(),
		InputText:      inputText,
		PredictedLabel: predictedLabel,
		Confidence:     confidence,
	}
}
