package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/azizcs/portfolio-maker/internal/application/usecase/profile"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type ProfileHandler struct {
	getProfileUseCase    *profileUC.GetProfileUseCase
	updateProfileUseCase *profileUC.UpdateProfileUseCase
	logger               logger.Logger
}

func NewProfileHandler(getUC *profileUC.GetProfileUseCase, updateUC *profileUC.UpdateProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase:    getUC,
		updateProfileUseCase: updateUC,
		logger:               log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	u, err := h.getProfileUseCase.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		OwnerID:         ownerID,
		Name:            req.Name,
		Email:           req.Email,
		Username:        req.Username,
		Bio:             req.Bio,
		AvatarURL:       req.AvatarURL,
		Location:        req.Location,
		Phone:           req.Phone,
		JobTitle:        req.JobTitle,
		FieldOfWork:     req.FieldOfWork,
		Experience:      req.Experience,
		Education:       req.Education,
		Skills:          req.Skills,
		Website:         req.Website,
		Linkedin:        req.Linkedin,
		Twitter:         req.Twitter,
		Instagram:       req.Instagram,
		Youtube:         req.Youtube,
		Facebook:        req.Facebook,
		CVURL:           req.CVURL,
		IsProfilePublic: req.IsProfilePublic,
	}

	u, err := h.updateProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}
