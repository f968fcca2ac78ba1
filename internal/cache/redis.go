package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"nutriclinic/internal/models"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// foodSearchKey covers every parameter that changes the result set;
// leaving one out would serve one request's rows to a different query.
func foodSearchKey(tenantID uint, query, category string, limit int) string {
	return fmt.Sprintf("foods:search:%d:%s:%s:%d", tenantID, query, category, limit)
}

// StoreFoodSearch caches a food search result with expiration.
func (r *RedisClient) StoreFoodSearch(tenantID uint, query, category string, limit int, foods []models.Food, duration time.Duration) error {
	data, err := json.Marshal(foods)
	if err != nil {
		return fmt.Errorf("failed to marshal foods: %w", err)
	}
	return r.client.Set(r.ctx, foodSearchKey(tenantID, query, category, limit), data, duration).Err()
}

// GetFoodSearch returns a cached food search result, or (nil, false)
// on a miss.
func (r *RedisClient) GetFoodSearch(tenantID uint, query, category string, limit int) ([]models.Food, bool) {
	data, err := r.client.Get(r.ctx, foodSearchKey(tenantID, query, category, limit)).Bytes()
	if err != nil {
		return nil, false
	}

	var foods []models.Food
	if err := json.Unmarshal(data, &foods); err != nil {
		return nil, false
	}
	return foods, true
}

// InvalidateFoodSearches drops every cached search for a tenant.
// Called after a custom food is created, updated or deleted.
func (r *RedisClient) InvalidateFoodSearches(tenantID uint) error {
	pattern := fmt.Sprintf("foods:search:%d:*", tenantID)

	iter := r.client.Scan(r.ctx, 0, pattern, 100).Iterator()
	for iter.Next(r.ctx) {
		if err := r.client.Del(r.ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
