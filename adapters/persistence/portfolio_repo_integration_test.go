package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type PortfolioRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	userRepo    user.Repository
	projectRepo project.Repository
	testOwner   *user.User
}

func (s *PortfolioRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewZapLogger("development")
	s.userRepo = NewPostgresUserRepo(s.dbPool, s.testLogger)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)

	s.testOwner = &user.User{
		ID:              uuid.New(),
		GithubID:        "gh-owner",
		GithubUsername:  "testowner",
		Name:            "Test Owner",
		Email:           "testowner@example.com",
		IsProfilePublic: true,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := s.userRepo.Upsert(context.Background(), s.testOwner); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *PortfolioRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPortfolioRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PortfolioRepoIntegrationTestSuite))
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	newProject := &project.Project{
		ID:           uuid.New(),
		UserID:       s.testOwner.ID,
		Title:        "My First Project",
		Description:  "Hello world",
		Technologies: []string{"Go"},
		Status:       "completed",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	err := s.projectRepo.Save(ctx, newProject)
	s.NoError(err)

	found, err := s.projectRepo.FindByID(ctx, newProject.ID, s.testOwner.ID)

	s.NoError(err)
	s.NotNil(found)
	s.Equal(newProject.Title, found.Title)
	s.Equal(newProject.Technologies, found.Technologies)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_ListByUser_OrdersBySortOrder() {
	ctx := context.Background()

	owner := &user.User{
		ID: uuid.New(), GithubID: "gh-order", GithubUsername: "ordertester",
		Name: "Order Tester", IsProfilePublic: true,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.userRepo.Upsert(ctx, owner))

	for _, p := range []struct {
		title string
		order int
	}{
		{"Gamma", 2},
		{"Alpha", 0},
		{"Beta", 1},
	} {
		s.NoError(s.projectRepo.Save(ctx, &project.Project{
			ID: uuid.New(), UserID: owner.ID, Title: p.title, SortOrder: p.order,
			CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		}))
	}

	projects, err := s.projectRepo.ListByUser(ctx, owner.ID)

	s.NoError(err)
	s.Len(projects, 3)
	s.Equal("Alpha", projects[0].Title)
	s.Equal("Beta", projects[1].Title)
	s.Equal("Gamma", projects[2].Title)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Upsert_PreservesProfileOnRelogin() {
	ctx := context.Background()

	firstToken := "token-1"
	original := &user.User{
		ID: uuid.New(), GithubID: "gh-relogin", GithubUsername: "relogger",
		GithubToken: &firstToken, Name: "Re Logger", IsProfilePublic: true,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.userRepo.Upsert(ctx, original))

	jobTitle := "Engineer"
	original.JobTitle = &jobTitle
	s.NoError(s.userRepo.UpdateProfile(ctx, original))

	secondToken := "token-2"
	relogin := &user.User{
		ID: uuid.New(), GithubID: "gh-relogin", GithubUsername: "relogger",
		GithubToken: &secondToken, Name: "Ignored Name", IsProfilePublic: true,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.userRepo.Upsert(ctx, relogin))

	// The upsert resolves to the original row.
	s.Equal(original.ID, relogin.ID)

	current, err := s.userRepo.FindByGithubID(ctx, "gh-relogin")
	s.NoError(err)
	s.Equal(original.ID, current.ID)
	s.Equal("Re Logger", current.Name)
	s.NotNil(current.JobTitle)
	s.NotNil(current.GithubToken)
	s.Equal("token-2", *current.GithubToken)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_FindPublic_Strategies() {
	ctx := context.Background()

	username := "handle42"
	public := &user.User{
		ID: uuid.New(), GithubID: "gh-public", GithubUsername: "publicgh",
		Username: &username, Name: "Public Person", Email: "public.person@example.com",
		IsProfilePublic: true,
		CreatedAt:       time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.userRepo.Upsert(ctx, public))

	private := &user.User{
		ID: uuid.New(), GithubID: "gh-private", GithubUsername: "privategh",
		Name: "Private Person", IsProfilePublic: false,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.userRepo.Upsert(ctx, private))

	byGithub, err := s.userRepo.FindPublic(ctx, user.LookupByGithubUsername, "publicgh")
	s.NoError(err)
	s.Equal(public.ID, byGithub.ID)

	byUsername, err := s.userRepo.FindPublic(ctx, user.LookupByUsername, "handle42")
	s.NoError(err)
	s.Equal(public.ID, byUsername.ID)

	byEmail, err := s.userRepo.FindPublic(ctx, user.LookupByEmailPrefix, "public.person")
	s.NoError(err)
	s.Equal(public.ID, byEmail.ID)

	_, err = s.userRepo.FindPublic(ctx, user.LookupByGithubUsername, "privategh")
	s.Error(err)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_UpdateDeployedSiteURL() {
	ctx := context.Background()

	err := s.userRepo.UpdateDeployedSiteURL(ctx, s.testOwner.ID, "https://testowner.github.io/site")
	s.NoError(err)

	current, err := s.userRepo.FindByID(ctx, s.testOwner.ID)
	s.NoError(err)
	s.NotNil(current.DeployedSiteURL)
	s.Equal("https://testowner.github.io/site", *current.DeployedSiteURL)
}
