package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/azizcs/portfolio-maker/internal/domain/user"
)

type GetProfileUseCase struct {
	userRepo user.Repository
}

func NewGetProfileUseCase(repo user.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: repo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, ownerID uuid.UUID) (*user.User, error) {
	return uc.userRepo.FindByID(ctx, ownerID)
}
