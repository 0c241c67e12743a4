package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=search_cache.go -destination=mock_search_cache.go -package=repository

var tracer = otel.Tracer("repository.search")

// SearchEntry is a cached engine answer for one position.
type SearchEntry struct {
	Score   int64 `json:"score"`
	Row     int   `json:"row"`
	Col     int   `json:"col"`
	HasMove bool  `json:"has_move"`
}

// SearchCache stores search results keyed by position.
type SearchCache interface {
	// Get returns the entry for key; found is false on a miss.
	Get(ctx context.Context, key string) (entry *SearchEntry, found bool, err error)
	Set(ctx context.Context, key string, entry SearchEntry) error
}

type redisSearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSearchCache creates a Redis-based SearchCache. Entries expire after ttl;
// zero keeps them forever.
func NewSearchCache(rdb *redis.Client, ttl time.Duration) SearchCache {
	return &redisSearchCache{rdb: rdb, ttl: ttl}
}

// Get looks up a cached result.
func (r *redisSearchCache) Get(ctx context.Context, key string) (*SearchEntry, bool, error) {
	ctx, span := tracer.Start(ctx, "SearchCache.Get", trace.WithAttributes(
		attribute.String("cache.key", cacheKey(key)),
	))
	defer span.End()

	data, err := r.rdb.Get(ctx, cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		span.SetAttributes(attribute.Bool("cache.hit", false))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get search entry from redis: %w", err)
	}

	var entry SearchEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal search entry: %w", err)
	}
	span.SetAttributes(attribute.Bool("cache.hit", true))
	return &entry, true, nil
}

// Set stores a result.
func (r *redisSearchCache) Set(ctx context.Context, key string, entry SearchEntry) error {
	ctx, span := tracer.Start(ctx, "SearchCache.Set")
	defer span.End()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal search entry: %w", err)
	}
	if err := r.rdb.Set(ctx, cacheKey(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store search entry in redis: %w", err)
	}
	return nil
}

func cacheKey(key string) string {
	return fmt.Sprintf("search:%s", key)
}
