package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/spacebooking/config"
	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client          *redis.Client
	destinationsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, destinationsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		destinationsTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, destinationsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, destinationsTTL: destinationsTTL}
}

// GetDestinations returns nil, nil on a cache miss.
func (c *RedisCache) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	data, err := c.client.Get(ctx, destinationsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, fmt.Errorf("decode cached destinations: %w", err)
	}
	return destinations, nil
}

func (c *RedisCache) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	payload, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, destinationsKey(), payload, c.destinationsTTL).Err()
}

func (c *RedisCache) InvalidateDestinations(ctx context.Context) error {
	return c.client.Del(ctx, destinationsKey()).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func destinationsKey() string {
	return "cache:destinations"
}
