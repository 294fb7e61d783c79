package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	uploadUC "github.com/azizcs/portfolio-maker/internal/application/usecase/upload"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type UploadHandler struct {
	uploadMediaUC *uploadUC.UploadMediaUseCase
	logger        logger.Logger
}

func NewUploadHandler(uploadUC *uploadUC.UploadMediaUseCase, log logger.Logger) *UploadHandler {
	return &UploadHandler{uploadMediaUC: uploadUC, logger: log}
}

func (h *UploadHandler) UploadMedia(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	input := uploadUC.UploadMediaInput{
		OwnerID: ownerID,
		File:    file,
		Kind:    c.DefaultPostForm("kind", "project"),
	}

	output, err := h.uploadMediaUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": output.URL})
}
