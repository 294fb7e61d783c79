package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	deployUC "github.com/azizcs/portfolio-maker/internal/application/usecase/deploy"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type DeployHandler struct {
	deployUseCase          *deployUC.DeployPortfolioUseCase
	listDeploymentsUseCase *deployUC.ListDeploymentsUseCase
	logger                 logger.Logger
}

func NewDeployHandler(deploy *deployUC.DeployPortfolioUseCase, list *deployUC.ListDeploymentsUseCase, log logger.Logger) *DeployHandler {
	return &DeployHandler{
		deployUseCase:          deploy,
		listDeploymentsUseCase: list,
		logger:                 log,
	}
}

func (h *DeployHandler) Deploy(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("repoName is required", err))
		return
	}

	output, err := h.deployUseCase.Execute(c.Request.Context(), deployUC.DeployInput{
		OwnerID:     ownerID,
		RepoName:    req.RepoName,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, DeployResponse{
		Success: true,
		RepoURL: output.RepoURL,
		PageURL: output.PageURL,
	})
}

func (h *DeployHandler) ListDeployments(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	deployments, err := h.listDeploymentsUseCase.Execute(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deployments": ToDeploymentDTOs(deployments)})
}
