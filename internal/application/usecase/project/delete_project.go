package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	caches      *CacheInvalidator
}

func NewDeleteProjectUseCase(repo project.Repository, caches *CacheInvalidator) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: repo, caches: caches}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.projectRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.caches.InvalidateFor(ctx, ownerID)
	return nil
}
