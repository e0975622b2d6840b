package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rupesh4061/Emotion-app/internal/domain/entity"
	"github.com/Rupesh4061/Emotion-app/internal/infrastructure/config"
)

// NewRedisClient creates a new Redis client and verifies the connection
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}

// PredictionCache stores classification distributions in Redis with a TTL.
// Cache failures are swallowed: a miss is always safe, the model just runs
// again.
type PredictionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPredictionCache creates a Redis-backed result cache
func NewPredictionCache(rdb *redis.Client, ttl time.Duration) *PredictionCache {
	return &PredictionCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached distribution for key, if present
func (c *PredictionCache) Get(ctx context.Context, key string) (entity.Distribution, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var dist entity.Distribution
	if err := json.Unmarshal(data, &dist); err != nil {
		return nil, false
	}

	return dist, true
}

// Set stores the distribution for key with the configured TTL
func (c *PredictionCache) Set(ctx context.Context, key string, dist entity.Distribution) {
	data, err := json.Marshal(dist)
	if err != nil {
		return
	}

	_ = c.rdb.Set(ctx, key, data, c.ttl).Err()
}
