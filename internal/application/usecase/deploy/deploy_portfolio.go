package deploy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/internal/sitegen"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

var tracer = otel.Tracer("deploy_usecase")

type DeployPortfolioUseCase struct {
	userRepo    user.Repository
	projectRepo project.Repository
	publisher   service.Publisher
	events      service.DeployEventPublisher
	logger      logger.Logger
}

func NewDeployPortfolioUseCase(
	userRepo user.Repository,
	projectRepo project.Repository,
	publisher service.Publisher,
	events service.DeployEventPublisher,
	log logger.Logger,
) *DeployPortfolioUseCase {
	return &DeployPortfolioUseCase{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
		events:      events,
		logger:      log,
	}
}

type DeployInput struct {
	OwnerID     uuid.UUID
	RepoName    string
	Description string
}

type DeployOutput struct {
	RepoURL string
	PageURL string
}

// Execute renders the owner's portfolio and pushes it live. The publish
// itself is the only step that can fail the deploy; recording the resulting
// URL and emitting the history event are best effort.
func (uc *DeployPortfolioUseCase) Execute(ctx context.Context, input DeployInput) (*DeployOutput, error) {

	ctx, span := tracer.Start(ctx, "ExecuteDeployPortfolio")
	defer span.End()

	repoName := strings.TrimSpace(input.RepoName)
	if repoName == "" {
		return nil, apperror.NewInvalidInput("repoName is required", nil)
	}
	span.SetAttributes(
		attribute.String("user_id", input.OwnerID.String()),
		attribute.String("repo_name", repoName),
	)

	u, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if u.GithubToken == nil || *u.GithubToken == "" {
		err := apperror.NewReauthRequired("no stored GitHub token", nil)
		span.RecordError(err)
		return nil, err
	}

	projects, err := uc.projectRepo.ListByUser(ctx, u.ID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	html, err := sitegen.Generate(u, projects)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to generate portfolio page", err)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = fmt.Sprintf("Portfolio website for %s", u.Name)
	}

	result, err := uc.publisher.Publish(ctx, *u.GithubToken, service.PublishInput{
		Owner:       u.GithubUsername,
		RepoName:    repoName,
		Description: description,
		IndexHTML:   html,
		ReadmeMD:    sitegen.GenerateReadme(u, repoName),
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	// The site is already live; losing the write-back must not undo that.
	if err := uc.userRepo.UpdateDeployedSiteURL(ctx, u.ID, result.PageURL); err != nil {
		uc.logger.Warn("Failed to persist deployed site url",
			zap.String("user_id", u.ID.String()),
			zap.String("page_url", result.PageURL),
			zap.Error(err),
		)
	}

	if uc.events != nil {
		evt := service.DeployEvent{
			UserID:     u.ID,
			RepoName:   repoName,
			RepoURL:    result.RepoURL,
			PageURL:    result.PageURL,
			DeployedAt: time.Now().UTC(),
		}
		if err := uc.events.PublishDeployEvent(ctx, evt); err != nil {
			uc.logger.Warn("Failed to publish deploy event", zap.String("user_id", u.ID.String()), zap.Error(err))
		}
	}

	uc.logger.Info("Portfolio deployed",
		zap.String("user_id", u.ID.String()),
		zap.String("repo_url", result.RepoURL),
		zap.String("page_url", result.PageURL),
	)
	return &DeployOutput{RepoURL: result.RepoURL, PageURL: result.PageURL}, nil
}
