package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	deployUC "github.com/azizcs/portfolio-maker/internal/application/usecase/deploy"
	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/auth"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type stubUserRepo struct {
	user *user.User
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, apperror.NewNotFound("user", id.String())
	}
	return s.user, nil
}
func (s *stubUserRepo) FindByGithubID(ctx context.Context, githubID string) (*user.User, error) {
	return nil, apperror.NewNotFound("user", githubID)
}
func (s *stubUserRepo) FindPublic(ctx context.Context, field user.LookupField, term string) (*user.User, error) {
	return nil, apperror.NewNotFound("user", term)
}
func (s *stubUserRepo) Upsert(ctx context.Context, u *user.User) error        { return nil }
func (s *stubUserRepo) UpdateProfile(ctx context.Context, u *user.User) error { return nil }
func (s *stubUserRepo) UpdateDeployedSiteURL(ctx context.Context, id uuid.UUID, url string) error {
	return nil
}

type stubProjectRepo struct{}

func (s *stubProjectRepo) Save(ctx context.Context, p *project.Project) error   { return nil }
func (s *stubProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (s *stubProjectRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}
func (s *stubProjectRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
	return nil, apperror.NewNotFound("project", id.String())
}
func (s *stubProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	return nil, nil
}

type stubPublisher struct {
	err error
}

func (s *stubPublisher) Publish(ctx context.Context, token string, input service.PublishInput) (*service.PublishResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &service.PublishResult{
		RepoURL: "https://github.com/adal/site",
		PageURL: "https://adal.github.io/site",
	}, nil
}

type deployTestEnv struct {
	router  *gin.Engine
	token   string
	ownerID uuid.UUID
}

func setupDeployTest(t *testing.T, pub service.Publisher) deployTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ghToken := "gh-token"
	owner := &user.User{
		ID:             uuid.New(),
		GithubID:       "42",
		GithubUsername: "adal",
		GithubToken:    &ghToken,
		Name:           "Ada Lovelace",
	}

	appLogger := logger.NewZapLogger("development")
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	token, err := jwtSvc.GenerateToken(owner.ID, owner.GithubUsername)
	require.NoError(t, err)

	deployUseCase := deployUC.NewDeployPortfolioUseCase(&stubUserRepo{user: owner}, &stubProjectRepo{}, pub, nil, appLogger)
	handler := NewDeployHandler(deployUseCase, nil, appLogger)

	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))
	router.POST("/api/deploy", AuthMiddleware(jwtSvc), handler.Deploy)

	return deployTestEnv{router: router, token: token, ownerID: owner.ID}
}

func postDeploy(env deployTestEnv, token string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/deploy", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestDeployEndpoint_Success(t *testing.T) {
	env := setupDeployTest(t, &stubPublisher{})

	w := postDeploy(env, env.token, `{"repoName":"site"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp DeployResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "https://github.com/adal/site", resp.RepoURL)
	assert.Equal(t, "https://adal.github.io/site", resp.PageURL)
}

func TestDeployEndpoint_MissingAuth(t *testing.T) {
	env := setupDeployTest(t, &stubPublisher{})

	w := postDeploy(env, "", `{"repoName":"site"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeployEndpoint_MissingRepoName(t *testing.T) {
	env := setupDeployTest(t, &stubPublisher{})

	w := postDeploy(env, env.token, `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperror.ErrInvalidInput.Error(), resp["error"])
	assert.NotEmpty(t, resp["message"])
}

func TestDeployEndpoint_ReauthRequired(t *testing.T) {
	env := setupDeployTest(t, &stubPublisher{err: apperror.NewReauthRequired("token rejected", nil)})

	w := postDeploy(env, env.token, `{"repoName":"site"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperror.ErrReauthRequired.Error(), resp["error"])
}

func TestDeployEndpoint_UpstreamFailure(t *testing.T) {
	env := setupDeployTest(t, &stubPublisher{err: apperror.NewUpstream("failed to enable GitHub Pages", nil)})

	w := postDeploy(env, env.token, `{"repoName":"site"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
