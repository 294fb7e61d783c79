package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/azizcs/portfolio-maker/internal/application/usecase/portfolio"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type PortfolioHandler struct {
	getPortfolioUseCase *portfolioUC.GetPublicPortfolioUseCase
	projectFeedUseCase  *portfolioUC.ProjectFeedUseCase
	logger              logger.Logger
}

func NewPortfolioHandler(getUC *portfolioUC.GetPublicPortfolioUseCase, feedUC *portfolioUC.ProjectFeedUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		getPortfolioUseCase: getUC,
		projectFeedUseCase:  feedUC,
		logger:              log,
	}
}

// GetPortfolio serves a public profile and its projects by github username,
// chosen username or email prefix.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	p, err := h.getPortfolioUseCase.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     ToUserDTO(p.User),
		"projects": ToProjectDTOs(p.Projects),
	})
}

func (h *PortfolioHandler) GetProjectFeed(c *gin.Context) {
	atom, err := h.projectFeedUseCase.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Type", "application/atom+xml; charset=utf-8")
	c.String(http.StatusOK, atom)
}
