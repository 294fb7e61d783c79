package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(repo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: repo}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return uc.projectRepo.FindByID(ctx, id, ownerID)
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return uc.projectRepo.ListByUser(ctx, ownerID)
}
