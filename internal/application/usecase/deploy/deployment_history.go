package deploy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/deployment"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type ListDeploymentsUseCase struct {
	deploymentRepo deployment.Repository
}

func NewListDeploymentsUseCase(repo deployment.Repository) *ListDeploymentsUseCase {
	return &ListDeploymentsUseCase{deploymentRepo: repo}
}

func (uc *ListDeploymentsUseCase) Execute(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*deployment.Deployment, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return uc.deploymentRepo.ListByUser(ctx, ownerID, limit, offset)
}

// RecordDeploymentUseCase turns a consumed deploy event into a history row.
// It runs in the worker, not in the request path.
type RecordDeploymentUseCase struct {
	deploymentRepo deployment.Repository
}

func NewRecordDeploymentUseCase(repo deployment.Repository) *RecordDeploymentUseCase {
	return &RecordDeploymentUseCase{deploymentRepo: repo}
}

func (uc *RecordDeploymentUseCase) Execute(ctx context.Context, evt service.DeployEvent) error {
	d := &deployment.Deployment{
		ID:        uuid.New(),
		UserID:    evt.UserID,
		RepoName:  evt.RepoName,
		RepoURL:   evt.RepoURL,
		PageURL:   evt.PageURL,
		CreatedAt: evt.DeployedAt,
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return uc.deploymentRepo.Save(ctx, d)
}
