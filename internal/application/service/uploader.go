package service

import (
	"context"
	"io"
)

// Uploader stores profile media (avatars, CV documents, project images) and
// returns a public URL for the stored asset.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
