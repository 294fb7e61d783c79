package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/azizcs/portfolio-maker/internal/application/usecase/auth"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type AuthHandler struct {
	loginUseCase *authUC.GitHubLoginUseCase
	logger       logger.Logger
}

func NewAuthHandler(loginUC *authUC.GitHubLoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{loginUseCase: loginUC, logger: log}
}

// GitHubLogin redirects the browser to GitHub's consent page.
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	output, err := h.loginUseCase.ExecuteBeginLogin(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, output.AuthURL)
}

// GitHubCallback completes the OAuth flow and returns an API token.
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	output, err := h.loginUseCase.ExecuteCompleteLogin(c.Request.Context(), authUC.CompleteLoginInput{
		Code:  c.Query("code"),
		State: c.Query("state"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
		"user":         ToUserDTO(output.User),
	})
}
