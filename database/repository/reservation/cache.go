// File: database/repository/reservation/cache.go
package reservationRepo

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"labreserve/models"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrCacheMiss is returned by Get when no list is cached.
	ErrCacheMiss = errors.New("reservation cache miss")
	// ErrStaleGeneration is returned by Set when a write invalidated the cache after
	// the list was read.
	ErrStaleGeneration = errors.New("reservation cache generation changed")
)

// ListCache holds the serialized reservation list between writes. Every Invalidate bumps
// a generation counter; Set only stores a list read under the current generation.
type ListCache interface {
	Get(ctx context.Context) ([]models.Reservation, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, gen int64, list []models.Reservation) error
	Invalidate(ctx context.Context) error
}

type redisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListCache returns a ListCache on client; entries expire after ttl.
func NewRedisListCache(client *redis.Client, ttl time.Duration) ListCache {
	return &redisListCache{client: client, ttl: ttl}
}

const (
	listCacheKey       = "reservations:all"
	generationCacheKey = "reservations:generation"
)

func (c *redisListCache) Get(ctx context.Context) ([]models.Reservation, error) {
	return decodeList(c.client.Get(ctx, listCacheKey).Bytes())
}

func (c *redisListCache) Generation(ctx context.Context) (int64, error) {
	return parseGeneration(c.client.Get(ctx, generationCacheKey).Result())
}

func (c *redisListCache) Set(ctx context.Context, gen int64, list []models.Reservation) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		current, err := parseGeneration(tx.Get(ctx, generationCacheKey).Result())
		if err != nil {
			return err
		}
		if current != gen {
			return ErrStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, listCacheKey, data, c.ttl)
			return nil
		})
		return err
	}

	err = c.client.Watch(ctx, txf, generationCacheKey)
	if errors.Is(err, redis.TxFailedErr) {
		// The generation moved between WATCH and EXEC.
		return ErrStaleGeneration
	}
	return err
}

// Invalidate bumps the generation before dropping the list so that a reader holding
// the old generation cannot write its list back.
func (c *redisListCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationCacheKey)
		pipe.Del(ctx, listCacheKey)
		return nil
	})
	return err
}

// decodeList maps a GET reply for the list key.
func decodeList(data []byte, err error) ([]models.Reservation, error) {
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var list []models.Reservation
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// parseGeneration maps a GET reply for the generation key; a missing key is generation 0.
func parseGeneration(s string, err error) (int64, error) {
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}
