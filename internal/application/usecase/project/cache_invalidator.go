package project

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

// CacheInvalidator drops the cached public portfolio of an owner after a
// project write. Failures are logged and swallowed; the cache entries also
// carry a TTL.
type CacheInvalidator struct {
	userRepo user.Repository
	cache    service.PortfolioCache
	logger   logger.Logger
}

func NewCacheInvalidator(userRepo user.Repository, cache service.PortfolioCache, log logger.Logger) *CacheInvalidator {
	return &CacheInvalidator{userRepo: userRepo, cache: cache, logger: log}
}

func (ci *CacheInvalidator) InvalidateFor(ctx context.Context, ownerID uuid.UUID) {
	u, err := ci.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		ci.logger.Warn("Failed to load user for cache invalidation", zap.String("user_id", ownerID.String()), zap.Error(err))
		return
	}

	keys := []string{u.GithubUsername, u.Email}
	if u.Username != nil {
		keys = append(keys, *u.Username)
	}
	if err := ci.cache.Invalidate(ctx, keys...); err != nil {
		ci.logger.Warn("Failed to invalidate portfolio cache", zap.String("user_id", ownerID.String()), zap.Error(err))
	}
}
