package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type UpdateProfileUseCase struct {
	userRepo user.Repository
	cache    service.PortfolioCache
	events   service.ProfileEventPublisher
	logger   logger.Logger
}

func NewUpdateProfileUseCase(repo user.Repository, cache service.PortfolioCache, events service.ProfileEventPublisher, log logger.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: repo, cache: cache, events: events, logger: log}
}

// UpdateProfileInput replaces every editable profile field. Identity fields
// (github_id, github_username, token) and deployed_site_url are not editable
// through this path.
type UpdateProfileInput struct {
	OwnerID uuid.UUID

	Name     string
	Email    string
	Username *string

	Bio         *string
	AvatarURL   *string
	Location    *string
	Phone       *string
	JobTitle    *string
	FieldOfWork *string
	Experience  *string
	Education   *string
	Skills      []string

	Website   *string
	Linkedin  *string
	Twitter   *string
	Instagram *string
	Youtube   *string
	Facebook  *string
	CVURL     *string

	IsProfilePublic bool
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*user.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewInvalidInput("name is required", nil)
	}

	u, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	u.Name = strings.TrimSpace(input.Name)
	u.Email = strings.TrimSpace(input.Email)
	u.Username = input.Username
	u.Bio = input.Bio
	u.AvatarURL = input.AvatarURL
	u.Location = input.Location
	u.Phone = input.Phone
	u.JobTitle = input.JobTitle
	u.FieldOfWork = input.FieldOfWork
	u.Experience = input.Experience
	u.Education = input.Education
	u.Skills = input.Skills
	u.Website = input.Website
	u.Linkedin = input.Linkedin
	u.Twitter = input.Twitter
	u.Instagram = input.Instagram
	u.Youtube = input.Youtube
	u.Facebook = input.Facebook
	u.CVURL = input.CVURL
	u.IsProfilePublic = input.IsProfilePublic
	u.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx, u)

	if uc.events != nil {
		evt := service.ProfileEvent{
			UserID:    u.ID,
			EventType: service.ProfileEventUpdated,
			UpdatedAt: u.UpdatedAt,
		}
		if err := uc.events.PublishProfileEvent(ctx, evt); err != nil {
			uc.logger.Warn("Failed to publish profile event", zap.String("user_id", u.ID.String()), zap.Error(err))
		}
	}
	return u, nil
}

func (uc *UpdateProfileUseCase) invalidateCache(ctx context.Context, u *user.User) {
	keys := []string{u.GithubUsername, u.Email}
	if u.Username != nil {
		keys = append(keys, *u.Username)
	}
	if err := uc.cache.Invalidate(ctx, keys...); err != nil {
		uc.logger.Warn("Failed to invalidate portfolio cache", zap.String("user_id", u.ID.String()), zap.Error(err))
	}
}
