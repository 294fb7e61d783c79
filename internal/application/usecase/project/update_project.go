package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	caches      *CacheInvalidator
}

func NewUpdateProjectUseCase(repo project.Repository, caches *CacheInvalidator) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: repo, caches: caches}
}

type UpdateProjectInput struct {
	ID           uuid.UUID
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

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*project.Project, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = input.Description
	p.URL = input.URL
	p.DemoLink = input.DemoLink
	p.Technologies = input.Technologies
	p.ImageURL = input.ImageURL
	p.Status = input.Status
	p.Category = input.Category
	p.ProjectType = input.ProjectType
	p.Client = input.Client
	p.Featured = input.Featured
	p.SortOrder = input.SortOrder
	p.StartDate = input.StartDate
	p.EndDate = input.EndDate
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.caches.InvalidateFor(ctx, input.OwnerID)
	return p, nil
}
