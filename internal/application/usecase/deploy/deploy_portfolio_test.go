package deploy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type fakeUserRepo struct {
	user            *user.User
	deployedSiteURL string
	updateURLErr    error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, apperror.NewNotFound("user", id.String())
	}
	return f.user, nil
}

func (f *fakeUserRepo) FindByGithubID(ctx context.Context, githubID string) (*user.User, error) {
	return nil, apperror.NewNotFound("user", githubID)
}

func (f *fakeUserRepo) FindPublic(ctx context.Context, field user.LookupField, term string) (*user.User, error) {
	return nil, apperror.NewNotFound("user", term)
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) UpdateDeployedSiteURL(ctx context.Context, id uuid.UUID, url string) error {
	if f.updateURLErr != nil {
		return f.updateURLErr
	}
	f.deployedSiteURL = url
	return nil
}

type fakeProjectRepo struct {
	projects []*project.Project
}

func (f *fakeProjectRepo) Save(ctx context.Context, p *project.Project) error   { return nil }
func (f *fakeProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (f *fakeProjectRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}
func (f *fakeProjectRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
	return nil, apperror.NewNotFound("project", id.String())
}
func (f *fakeProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	return f.projects, nil
}

type fakePublisher struct {
	lastInput service.PublishInput
	lastToken string
	calls     int
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, token string, input service.PublishInput) (*service.PublishResult, error) {
	f.calls++
	f.lastToken = token
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &service.PublishResult{
		RepoURL: "https://github.com/" + input.Owner + "/" + input.RepoName,
		PageURL: "https://" + input.Owner + ".github.io/" + input.RepoName,
	}, nil
}

type fakeEvents struct {
	events []service.DeployEvent
	err    error
}

func (f *fakeEvents) PublishDeployEvent(ctx context.Context, evt service.DeployEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func testUser() *user.User {
	token := "gh-token"
	return &user.User{
		ID:             uuid.New(),
		GithubID:       "42",
		GithubUsername: "adal",
		GithubToken:    &token,
		Name:           "Ada Lovelace",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func newTestUseCase(userRepo *fakeUserRepo, projectRepo *fakeProjectRepo, pub *fakePublisher, events *fakeEvents) *DeployPortfolioUseCase {
	var eventPublisher service.DeployEventPublisher
	if events != nil {
		eventPublisher = events
	}
	return NewDeployPortfolioUseCase(userRepo, projectRepo, pub, eventPublisher, logger.NewZapLogger("development"))
}

func TestDeploy_Success(t *testing.T) {
	u := testUser()
	userRepo := &fakeUserRepo{user: u}
	projectRepo := &fakeProjectRepo{projects: []*project.Project{
		{ID: uuid.New(), UserID: u.ID, Title: "Engine Notes", SortOrder: 0},
	}}
	pub := &fakePublisher{}
	events := &fakeEvents{}

	uc := newTestUseCase(userRepo, projectRepo, pub, events)

	output, err := uc.Execute(context.Background(), DeployInput{OwnerID: u.ID, RepoName: "site"})
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/adal/site", output.RepoURL)
	assert.Equal(t, "https://adal.github.io/site", output.PageURL)

	assert.Equal(t, "gh-token", pub.lastToken)
	assert.Equal(t, "adal", pub.lastInput.Owner)
	assert.Contains(t, pub.lastInput.IndexHTML, "Ada Lovelace")
	assert.Contains(t, pub.lastInput.IndexHTML, "Engine Notes")
	assert.Contains(t, pub.lastInput.ReadmeMD, "Ada Lovelace")

	assert.Equal(t, "https://adal.github.io/site", userRepo.deployedSiteURL)
	require.Len(t, events.events, 1)
	assert.Equal(t, u.ID, events.events[0].UserID)
	assert.Equal(t, "site", events.events[0].RepoName)
}

func TestDeploy_MissingRepoName(t *testing.T) {
	u := testUser()
	pub := &fakePublisher{}
	uc := newTestUseCase(&fakeUserRepo{user: u}, &fakeProjectRepo{}, pub, nil)

	_, err := uc.Execute(context.Background(), DeployInput{OwnerID: u.ID, RepoName: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, pub.calls)
}

func TestDeploy_NoStoredToken(t *testing.T) {
	u := testUser()
	u.GithubToken = nil
	pub := &fakePublisher{}
	uc := newTestUseCase(&fakeUserRepo{user: u}, &fakeProjectRepo{}, pub, nil)

	_, err := uc.Execute(context.Background(), DeployInput{OwnerID: u.ID, RepoName: "site"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrReauthRequired)
	assert.Zero(t, pub.calls)
}

func TestDeploy_PublishFailurePropagates(t *testing.T) {
	u := testUser()
	userRepo := &fakeUserRepo{user: u}
	pub := &fakePublisher{err: apperror.NewUpstream("failed to create repository", errors.New("boom"))}
	uc := newTestUseCase(userRepo, &fakeProjectRepo{}, pub, nil)

	_, err := uc.Execute(context.Background(), DeployInput{OwnerID: u.ID, RepoName: "site"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUpstream)
	assert.Empty(t, userRepo.deployedSiteURL)
}

func TestDeploy_SucceedsWhenWriteBackFails(t *testing.T) {
	u := testUser()
	userRepo := &fakeUserRepo{user: u, updateURLErr: errors.New("db down")}
	events := &fakeEvents{}
	uc := newTestUseCase(userRepo, &fakeProjectRepo{}, &fakePublisher{}, events)

	output, err := uc.Execute(context.Background(), DeployInput{OwnerID: u.ID, RepoName: "site"})
	require.NoError(t, err)
	assert.Equal(t, "https://adal.github.io/site", output.PageURL)
	// The publish result still reaches the caller and the history event.
	require.Len(t, events.events, 1)
}

func TestDeploy_DefaultDescription(t *testing.T) {
	u := testUser()
	pub := &fakePublisher{}
	uc := newTestUseCase(&fakeUserRepo{user: u}, &fakeProjectRepo{}, pub, nil)

	_, err := uc.Execute(context.Background(), DeployInput{OwnerID: u.ID, RepoName: "site"})
	require.NoError(t, err)
	assert.Equal(t, "Portfolio website for Ada Lovelace", pub.lastInput.Description)
}
