package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type lookupCall struct {
	field user.LookupField
	term  string
}

type fakeUserRepo struct {
	// byField maps the lookup field that should match to the user returned.
	byField map[user.LookupField]*user.User
	calls   []lookupCall
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, apperror.NewNotFound("user", id.String())
}

func (f *fakeUserRepo) FindByGithubID(ctx context.Context, githubID string) (*user.User, error) {
	return nil, apperror.NewNotFound("user", githubID)
}

func (f *fakeUserRepo) FindPublic(ctx context.Context, field user.LookupField, term string) (*user.User, error) {
	f.calls = append(f.calls, lookupCall{field: field, term: term})
	if u, ok := f.byField[field]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", term)
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *user.User) error        { return nil }
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) UpdateDeployedSiteURL(ctx context.Context, id uuid.UUID, url string) error {
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

type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.sets++
	c.entries[key] = payload
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func publicUser(field user.LookupField) map[user.LookupField]*user.User {
	return map[user.LookupField]*user.User{
		field: {
			ID:              uuid.New(),
			GithubUsername:  "adal",
			Name:            "Ada Lovelace",
			Email:           "ada@example.com",
			IsProfilePublic: true,
		},
	}
}

func newUseCase(userRepo *fakeUserRepo, projectRepo *fakeProjectRepo, cache *memoryCache) *GetPublicPortfolioUseCase {
	return NewGetPublicPortfolioUseCase(userRepo, projectRepo, cache, logger.NewZapLogger("development"))
}

func TestGetPortfolio_MatchesGithubUsernameFirst(t *testing.T) {
	userRepo := &fakeUserRepo{byField: publicUser(user.LookupByGithubUsername)}
	uc := newUseCase(userRepo, &fakeProjectRepo{}, newMemoryCache())

	p, err := uc.Execute(context.Background(), "adal")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", p.User.Name)
	require.Len(t, userRepo.calls, 1)
	assert.Equal(t, user.LookupByGithubUsername, userRepo.calls[0].field)
}

func TestGetPortfolio_FallsThroughInOrder(t *testing.T) {
	userRepo := &fakeUserRepo{byField: publicUser(user.LookupByEmailPrefix)}
	uc := newUseCase(userRepo, &fakeProjectRepo{}, newMemoryCache())

	_, err := uc.Execute(context.Background(), "ada")
	require.NoError(t, err)

	require.Len(t, userRepo.calls, 3)
	assert.Equal(t, user.LookupByGithubUsername, userRepo.calls[0].field)
	assert.Equal(t, user.LookupByUsername, userRepo.calls[1].field)
	assert.Equal(t, user.LookupByEmailPrefix, userRepo.calls[2].field)
}

func TestGetPortfolio_NotFoundAfterAllStrategies(t *testing.T) {
	userRepo := &fakeUserRepo{byField: map[user.LookupField]*user.User{}}
	uc := newUseCase(userRepo, &fakeProjectRepo{}, newMemoryCache())

	_, err := uc.Execute(context.Background(), "nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Len(t, userRepo.calls, len(DefaultLookupOrder))
}

func TestGetPortfolio_EmptyTermRejected(t *testing.T) {
	userRepo := &fakeUserRepo{}
	uc := newUseCase(userRepo, &fakeProjectRepo{}, newMemoryCache())

	_, err := uc.Execute(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, userRepo.calls)
}

func TestGetPortfolio_ServesFromCache(t *testing.T) {
	userRepo := &fakeUserRepo{byField: publicUser(user.LookupByGithubUsername)}
	cache := newMemoryCache()
	uc := newUseCase(userRepo, &fakeProjectRepo{}, cache)

	_, err := uc.Execute(context.Background(), "adal")
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	p, err := uc.Execute(context.Background(), "adal")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", p.User.Name)
	// The second call never reaches the repository.
	assert.Len(t, userRepo.calls, 1)
}
