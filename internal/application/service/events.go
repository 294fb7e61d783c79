package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeployEvent is emitted after a successful publish so the worker can record
// deployment history without blocking the request.
type DeployEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	RepoName   string    `json:"repo_name"`
	RepoURL    string    `json:"repo_url"`
	PageURL    string    `json:"page_url"`
	DeployedAt time.Time `json:"deployed_at"`
}

type DeployEventPublisher interface {
	PublishDeployEvent(ctx context.Context, evt DeployEvent) error
}

// ProfileEvent announces a profile change to downstream consumers.
type ProfileEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	EventType string    `json:"event_type"`
	UpdatedAt time.Time `json:"updated_at"`
}

const ProfileEventUpdated = "profile.updated"

type ProfileEventPublisher interface {
	PublishProfileEvent(ctx context.Context, evt ProfileEvent) error
}
