package deployment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Deployment records one successful publish of a portfolio to GitHub Pages.
type Deployment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RepoName  string    `json:"repo_name"`
	RepoURL   string    `json:"repo_url"`
	PageURL   string    `json:"page_url"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	Save(ctx context.Context, d *Deployment) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Deployment, error)
}
