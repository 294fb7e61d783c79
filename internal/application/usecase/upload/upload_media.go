package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
)

var allowedKinds = map[string]bool{
	"avatar":  true,
	"cv":      true,
	"project": true,
}

type UploadMediaUseCase struct {
	uploader service.Uploader
}

func NewUploadMediaUseCase(uploader service.Uploader) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: uploader}
}

type UploadMediaInput struct {
	OwnerID uuid.UUID
	File    io.Reader
	// Kind picks the storage folder: avatar, cv or project.
	Kind string
}

type UploadMediaOutput struct {
	URL string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	if !allowedKinds[input.Kind] {
		return nil, apperror.NewInvalidInput("kind must be one of avatar, cv, project", nil)
	}

	folder := fmt.Sprintf("portfolio-maker/%s", input.Kind)
	publicID := fmt.Sprintf("%s_%s_%s", input.OwnerID, input.Kind, uuid.NewString())

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media", err)
	}
	return &UploadMediaOutput{URL: url}, nil
}
