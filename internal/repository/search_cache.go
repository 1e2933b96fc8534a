package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ValetTech/Valet/internal/entities"
	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "nearby:"

// SearchCacheRepository keeps nearby-search results in Redis for a fixed TTL.
type SearchCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCacheRepository(client *redis.Client, ttl time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient builds a client for addr and verifies it answers a PING.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func (r *SearchCacheRepository) Set(ctx context.Context, key string, result *entities.SearchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, searchKeyPrefix+key, data, r.ttl).Err()
}

// Get reports a miss as (nil, nil).
func (r *SearchCacheRepository) Get(ctx context.Context, key string) (*entities.SearchResult, error) {
	data, err := r.client.Get(ctx, searchKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result entities.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
