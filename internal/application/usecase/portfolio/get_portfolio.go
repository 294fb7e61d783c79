package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

const cacheTTL = 5 * time.Minute

// DefaultLookupOrder is the sequence of fields a public lookup term is
// matched against. The first strategy that finds a public profile wins;
// later ones are never consulted.
var DefaultLookupOrder = []user.LookupField{
	user.LookupByGithubUsername,
	user.LookupByUsername,
	user.LookupByEmailPrefix,
}

type PublicPortfolio struct {
	User     *user.User         `json:"user"`
	Projects []*project.Project `json:"projects"`
}

type GetPublicPortfolioUseCase struct {
	userRepo    user.Repository
	projectRepo project.Repository
	cache       service.PortfolioCache
	lookupOrder []user.LookupField
	logger      logger.Logger
}

func NewGetPublicPortfolioUseCase(
	userRepo user.Repository,
	projectRepo project.Repository,
	cache service.PortfolioCache,
	log logger.Logger,
) *GetPublicPortfolioUseCase {
	return &GetPublicPortfolioUseCase{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		cache:       cache,
		lookupOrder: DefaultLookupOrder,
		logger:      log,
	}
}

func (uc *GetPublicPortfolioUseCase) Execute(ctx context.Context, term string) (*PublicPortfolio, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperror.NewInvalidInput("lookup term is required", nil)
	}

	if payload, ok, err := uc.cache.Get(ctx, term); err != nil {
		uc.logger.Warn("Portfolio cache read failed", zap.Error(err))
	} else if ok {
		var cached PublicPortfolio
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	u, err := uc.resolve(ctx, term)
	if err != nil {
		return nil, err
	}

	projects, err := uc.projectRepo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	out := &PublicPortfolio{User: u, Projects: projects}
	if payload, err := json.Marshal(out); err == nil {
		if err := uc.cache.Set(ctx, term, payload, cacheTTL); err != nil {
			uc.logger.Warn("Portfolio cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (uc *GetPublicPortfolioUseCase) resolve(ctx context.Context, term string) (*user.User, error) {
	for _, field := range uc.lookupOrder {
		u, err := uc.userRepo.FindPublic(ctx, field, term)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
	}
	return nil, apperror.NewNotFound("portfolio", term)
}
