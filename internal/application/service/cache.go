package service

import (
	"context"
	"time"
)

// PortfolioCache holds rendered public portfolio payloads keyed by the term
// the visitor looked them up with.
type PortfolioCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
