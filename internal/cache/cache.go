package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetChangeRequestDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	log.Printf("getting entry in cache for change request #%s...", id)

	val, err := c.client.Get(ctx, getCacheKey(id.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return val, nil
}

func (c *Cache) SetChangeRequestDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	log.Printf("creating entry in cache for change request #%s...", id)

	if err := c.client.Set(ctx, getCacheKey(id.String()), data, ttl).Err(); err != nil {
		log.Printf("WARN: redis set failed for change request #%s: %v", id, err)
	}
}

func (c *Cache) DeleteChangeRequestDetails(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting entry in cache for change request #%s...", id)

	if err := c.client.Del(ctx, getCacheKey(id.String())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string) string {
	return "change_request:" + id
}
