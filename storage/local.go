package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"festival/metrics"

	"github.com/redis/go-redis/v9"
)

// RedisLocal keeps one JSON array blob per logical collection key in
// Redis, standing in for the browser's persistent local storage. Records
// are upserted individually on a decoded copy and the whole blob is
// rewritten on the way out.
type RedisLocal struct {
	client *redis.Client
}

func NewRedisLocal(client *redis.Client) *RedisLocal {
	return &RedisLocal{client: client}
}

func (l *RedisLocal) Get(ctx context.Context, key string) ([]json.RawMessage, error) {
	defer metrics.RecordStorageOperation("local", "get", key, time.Now())

	blob, err := l.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMisses.Inc()
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	metrics.CacheHits.Inc()
	return records, nil
}

func (l *RedisLocal) Set(ctx context.Context, key string, records []json.RawMessage) error {
	defer metrics.RecordStorageOperation("local", "set", key, time.Now())

	if records == nil {
		records = []json.RawMessage{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}
	if err := l.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Upsert replaces the record with a matching id, or appends it
func (l *RedisLocal) Upsert(ctx context.Context, key string, record json.RawMessage) error {
	records, err := l.Get(ctx, key)
	if err != nil {
		return err
	}
	return l.Set(ctx, key, upsertRecord(records, record))
}

// Remove drops the record with a matching id, if present
func (l *RedisLocal) Remove(ctx context.Context, key, id string) error {
	records, err := l.Get(ctx, key)
	if err != nil {
		return err
	}
	return l.Set(ctx, key, removeRecord(records, id))
}

func upsertRecord(records []json.RawMessage, record json.RawMessage) []json.RawMessage {
	id := RecordID(record)
	for i, existing := range records {
		if RecordID(existing) == id {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func removeRecord(records []json.RawMessage, id string) []json.RawMessage {
	filtered := records[:0]
	for _, existing := range records {
		if RecordID(existing) != id {
			filtered = append(filtered, existing)
		}
	}
	return filtered
}
