package client

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
	"github.com/Rupesh4061/Emotion-app/internal/domain/service"
)

// ResultCache caches full distributions keyed by model and text. A nil cache
// disables caching.
type ResultCache interface {
	Get(ctx context.Context, key string) (entity.Distribution, bool)
	Set(ctx context.Context, key string, dist entity.Distribution)
}

// ModelClassifier adapts ModelClient to the Classifier interface. It owns the
// process-wide model registry: the first classification per model triggers a
// warmup call, later calls reuse the loaded instance. The registry is mutex
// guarded so concurrent requests cannot trigger duplicate loads.
type ModelClassifier struct {
	client *ModelClient
	models map[entity.LanguageMode]string
	cache  ResultCache

	mu     sync.Mutex
	loaded map[string]bool
}

// NewModelClassifier creates a new ModelClassifier. The models map is the
// pure language-mode to model-ID lookup; cache may be nil.
func NewModelClassifier(mc *ModelClient, models map[entity.LanguageMode]string, cache ResultCache) service.Classifier {
	return &ModelClassifier{
		client: mc,
		models: models,
		cache:  cache,
		loaded: make(map[string]bool),
	}
}

// Classify classifies a single text with the model selected by mode
func (c *ModelClassifier) Classify(ctx context.Context, text string, mode entity.LanguageMode, requestID string) (entity.Distribution, error) {
	model, ok := c.models[mode]
	if !ok {
		return nil, fmt.Errorf("%w: no model configured for language mode %q", service.ErrModelUnavailable, mode)
	}

	if err := c.ensureLoaded(ctx, model); err != nil {
		return nil, err
	}

	key := cacheKey(model, text)
	if c.cache != nil {
		if dist, ok := c.cache.Get(ctx, key); ok {
			return dist, nil
		}
	}

	resp, err := c.client.Classify(ctx, model, text, requestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrModelUnavailable, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: model server reported failure", service.ErrModelUnavailable)
	}

	dist := make(entity.Distribution, len(resp.Scores))
	for i, s := range resp.Scores {
		dist[i] = entity.EmotionScore{Label: s.Label, Probability: s.Score}
	}

	if c.cache != nil {
		c.cache.Set(ctx, key, dist)
	}

	return dist, nil
}

// ensureLoaded performs the lazy once-per-model warmup. A failed load is not
// recorded, so the next request retries it.
func (c *ModelClassifier) ensureLoaded(ctx context.Context, model string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded[model] {
		return nil
	}

	resp, err := c.client.LoadModel(ctx, model)
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrModelUnavailable, err)
	}
	if !resp.Loaded {
		return fmt.Errorf("%w: model server did not load %s", service.ErrModelUnavailable, model)
	}

	c.loaded[model] = true
	return nil
}

func cacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "prediction:" + model + ":" + hex.EncodeToString(sum[:])
}
