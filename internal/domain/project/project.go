package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	URL          *string    `json:"url,omitempty"`
	DemoLink     *string    `json:"demo_link,omitempty"`
	Technologies []string   `json:"technologies"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Status       string     `json:"status"`
	Category     string     `json:"category"`
	ProjectType  string     `json:"project_type"`
	Client       *string    `json:"client,omitempty"`
	Featured     bool       `json:"featured"`
	SortOrder    int        `json:"sort_order"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

var (
	ErrEmptyTitle      = errors.New("project title is required")
	ErrProjectNotFound = errors.New("project not found")
)

var validStatuses = map[string]bool{
	"completed":   true,
	"in-progress": true,
	"planned":     true,
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Status != "" && !validStatuses[p.Status] {
		return errors.New("status must be one of completed, in-progress, planned")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Project, error)
	// ListByUser returns every project of one owner ordered by sort_order
	// ascending, then created_at descending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Project, error)
}
