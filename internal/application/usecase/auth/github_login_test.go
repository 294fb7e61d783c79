package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	pkgauth "github.com/azizcs/portfolio-maker/pkg/auth"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type memoryStateStore struct {
	states map[string]bool
}

func newMemoryStateStore() *memoryStateStore {
	return &memoryStateStore{states: map[string]bool{}}
}

func (m *memoryStateStore) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	m.states[state] = true
	return nil
}

func (m *memoryStateStore) ConsumeState(ctx context.Context, state string) (bool, error) {
	if !m.states[state] {
		return false, nil
	}
	delete(m.states, state)
	return true, nil
}

type fakeIdentityProvider struct {
	identity *service.GitHubIdentity
}

func (f *fakeIdentityProvider) AuthCodeURL(state string) string {
	return "https://github.com/login/oauth/authorize?state=" + state
}

func (f *fakeIdentityProvider) Exchange(ctx context.Context, code string) (string, error) {
	if code != "good-code" {
		return "", apperror.NewUnauthorized("bad code", nil)
	}
	return "gh-token", nil
}

func (f *fakeIdentityProvider) FetchUser(ctx context.Context, token string) (*service.GitHubIdentity, error) {
	return f.identity, nil
}

type upsertingUserRepo struct {
	byGithubID map[string]*user.User
	upserts    int
}

func newUpsertingUserRepo() *upsertingUserRepo {
	return &upsertingUserRepo{byGithubID: map[string]*user.User{}}
}

func (r *upsertingUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, apperror.NewNotFound("user", id.String())
}

func (r *upsertingUserRepo) FindByGithubID(ctx context.Context, githubID string) (*user.User, error) {
	if u, ok := r.byGithubID[githubID]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", githubID)
}

func (r *upsertingUserRepo) FindPublic(ctx context.Context, field user.LookupField, term string) (*user.User, error) {
	return nil, apperror.NewNotFound("user", term)
}

func (r *upsertingUserRepo) Upsert(ctx context.Context, u *user.User) error {
	r.upserts++
	if existing, ok := r.byGithubID[u.GithubID]; ok {
		existing.GithubUsername = u.GithubUsername
		existing.GithubToken = u.GithubToken
		existing.AvatarURL = u.AvatarURL
		u.ID = existing.ID
		return nil
	}
	stored := *u
	r.byGithubID[u.GithubID] = &stored
	return nil
}

func (r *upsertingUserRepo) UpdateProfile(ctx context.Context, u *user.User) error { return nil }
func (r *upsertingUserRepo) UpdateDeployedSiteURL(ctx context.Context, id uuid.UUID, url string) error {
	return nil
}

func newLoginUseCase(repo user.Repository, states StateStore) *GitHubLoginUseCase {
	identity := &fakeIdentityProvider{identity: &service.GitHubIdentity{
		ID:        "42",
		Login:     "adal",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		AvatarURL: "https://example.com/ada.png",
		HTMLURL:   "https://github.com/adal",
	}}
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)
	return NewGitHubLoginUseCase(repo, identity, states, jwtSvc, logger.NewZapLogger("development"))
}

func TestCompleteLogin_FirstSignInCreatesUser(t *testing.T) {
	repo := newUpsertingUserRepo()
	states := newMemoryStateStore()
	uc := newLoginUseCase(repo, states)

	begin, err := uc.ExecuteBeginLogin(context.Background())
	require.NoError(t, err)
	require.Len(t, states.states, 1)

	var state string
	for s := range states.states {
		state = s
	}
	assert.Contains(t, begin.AuthURL, state)

	output, err := uc.ExecuteCompleteLogin(context.Background(), CompleteLoginInput{Code: "good-code", State: state})
	require.NoError(t, err)

	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, "adal", output.User.GithubUsername)
	assert.Equal(t, "Ada Lovelace", output.User.Name)
	require.NotNil(t, output.User.GithubToken)
	assert.Equal(t, "gh-token", *output.User.GithubToken)
	assert.True(t, output.User.IsProfilePublic)
}

func TestCompleteLogin_ReloginKeepsUserID(t *testing.T) {
	repo := newUpsertingUserRepo()
	states := newMemoryStateStore()
	uc := newLoginUseCase(repo, states)

	states.states["s1"] = true
	first, err := uc.ExecuteCompleteLogin(context.Background(), CompleteLoginInput{Code: "good-code", State: "s1"})
	require.NoError(t, err)

	states.states["s2"] = true
	second, err := uc.ExecuteCompleteLogin(context.Background(), CompleteLoginInput{Code: "good-code", State: "s2"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, 2, repo.upserts)
}

func TestCompleteLogin_UnknownStateRejected(t *testing.T) {
	uc := newLoginUseCase(newUpsertingUserRepo(), newMemoryStateStore())

	_, err := uc.ExecuteCompleteLogin(context.Background(), CompleteLoginInput{Code: "good-code", State: "forged"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCompleteLogin_StateIsSingleUse(t *testing.T) {
	repo := newUpsertingUserRepo()
	states := newMemoryStateStore()
	uc := newLoginUseCase(repo, states)

	states.states["once"] = true
	_, err := uc.ExecuteCompleteLogin(context.Background(), CompleteLoginInput{Code: "good-code", State: "once"})
	require.NoError(t, err)

	_, err = uc.ExecuteCompleteLogin(context.Background(), CompleteLoginInput{Code: "good-code", State: "once"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCompleteLogin_MissingCodeRejected(t *testing.T) {
	uc := newLoginUseCase(newUpsertingUserRepo(), newMemoryStateStore())

	_, err := uc.ExecuteCompleteLogin(context.Background(), CompleteLoginInput{State: "s"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
