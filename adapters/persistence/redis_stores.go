package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/application/usecase/auth"
)

const (
	oauthStatePrefix     = "oauth_state:"
	portfolioCachePrefix = "portfolio:"
)

type redisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) auth.StateStore {
	return &redisStateStore{client: client}
}

func (s *redisStateStore) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, oauthStatePrefix+state, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to save oauth state: %w", err)
	}
	return nil
}

func (s *redisStateStore) ConsumeState(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, oauthStatePrefix+state).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return true, nil
}

type redisPortfolioCache struct {
	client *redis.Client
}

func NewRedisPortfolioCache(client *redis.Client) service.PortfolioCache {
	return &redisPortfolioCache{client: client}
}

func (c *redisPortfolioCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, portfolioCachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read portfolio cache: %w", err)
	}
	return payload, true, nil
}

func (c *redisPortfolioCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, portfolioCachePrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write portfolio cache: %w", err)
	}
	return nil
}

func (c *redisPortfolioCache) Invalidate(ctx context.Context, keys ...string) error {
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		full = append(full, portfolioCachePrefix+k)
	}
	if len(full) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate portfolio cache: %w", err)
	}
	return nil
}
