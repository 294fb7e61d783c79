package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	caches      *CacheInvalidator
}

func NewCreateProjectUseCase(repo project.Repository, caches *CacheInvalidator) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: repo, caches: caches}
}

type CreateProjectInput struct {
	OwnerID      uuid.UUID
	Title        string
	Description  string
	URL          *string
	DemoLink     *string
	Technologies []string
	ImageURL     *string
	Status       string
	Category     string
	ProjectType  string
	Client       *string
	Featured     bool
	SortOrder    int
	StartDate    *time.Time
	EndDate      *time.Time
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*project.Project, error) {
	now := time.Now().UTC()
	p := &project.Project{
		ID:           uuid.New(),
		UserID:       input.OwnerID,
		Title:        input.Title,
		Description:  input.Description,
		URL:          input.URL,
		DemoLink:     input.DemoLink,
		Technologies: input.Technologies,
		ImageURL:     input.ImageURL,
		Status:       input.Status,
		Category:     input.Category,
		ProjectType:  input.ProjectType,
		Client:       input.Client,
		Featured:     input.Featured,
		SortOrder:    input.SortOrder,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.caches.InvalidateFor(ctx, input.OwnerID)
	return p, nil
}
