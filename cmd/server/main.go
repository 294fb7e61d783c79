package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azizcs/portfolio-maker/adapters/event"
	ghAdapter "github.com/azizcs/portfolio-maker/adapters/github"
	httpAdapter "github.com/azizcs/portfolio-maker/adapters/http"
	"github.com/azizcs/portfolio-maker/adapters/media_storage"
	"github.com/azizcs/portfolio-maker/adapters/persistence"
	authUC "github.com/azizcs/portfolio-maker/internal/application/usecase/auth"
	deployUC "github.com/azizcs/portfolio-maker/internal/application/usecase/deploy"
	portfolioUC "github.com/azizcs/portfolio-maker/internal/application/usecase/portfolio"
	profileUC "github.com/azizcs/portfolio-maker/internal/application/usecase/profile"
	projectUC "github.com/azizcs/portfolio-maker/internal/application/usecase/project"
	uploadUC "github.com/azizcs/portfolio-maker/internal/application/usecase/upload"
	"github.com/azizcs/portfolio-maker/internal/config"
	"github.com/azizcs/portfolio-maker/pkg/auth"
	"github.com/azizcs/portfolio-maker/pkg/logger"
	"github.com/azizcs/portfolio-maker/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio Maker API server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-maker-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shut down tracer provider", err)
		}
	}()

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	deploymentRepo := persistence.NewPostgresDeploymentRepo(dbPool, appLogger)
	stateStore := persistence.NewRedisStateStore(redisClient)
	portfolioCache := persistence.NewRedisPortfolioCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	identityProvider := ghAdapter.NewOAuthProvider(cfg)
	publisher := ghAdapter.NewPagesPublisher(appLogger, cfg.GitHub.PagesDelay)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use cases
	loginUseCase := authUC.NewGitHubLoginUseCase(userRepo, identityProvider, stateStore, jwtSvc, appLogger)
	getProfileUseCase := profileUC.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(userRepo, portfolioCache, kafkaClient, appLogger)

	cacheInvalidator := projectUC.NewCacheInvalidator(userRepo, portfolioCache, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, cacheInvalidator)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, cacheInvalidator)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, cacheInvalidator)

	getPortfolioUseCase := portfolioUC.NewGetPublicPortfolioUseCase(userRepo, projectRepo, portfolioCache, appLogger)
	projectFeedUseCase := portfolioUC.NewProjectFeedUseCase(getPortfolioUseCase, cfg.App.BaseURL)

	deployPortfolioUseCase := deployUC.NewDeployPortfolioUseCase(userRepo, projectRepo, publisher, kafkaClient, appLogger)
	listDeploymentsUseCase := deployUC.NewListDeploymentsUseCase(deploymentRepo)
	uploadMediaUseCase := uploadUC.NewUploadMediaUseCase(uploader)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(getProfileUseCase, updateProfileUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		getProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		appLogger,
	)
	deployHandler := httpAdapter.NewDeployHandler(deployPortfolioUseCase, listDeploymentsUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(getPortfolioUseCase, projectFeedUseCase, appLogger)
	uploadHandler := httpAdapter.NewUploadHandler(uploadMediaUseCase, appLogger)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		oauth := api.Group("/auth/github")
		{
			oauth.GET("/login", authHandler.GitHubLogin)
			oauth.GET("/callback", authHandler.GitHubCallback)
		}

		public := api.Group("/portfolio")
		{
			public.GET("/:username", portfolioHandler.GetPortfolio)
			public.GET("/:username/feed", portfolioHandler.GetProjectFeed)
		}

		api.POST("/deploy", authMiddleware, deployHandler.Deploy)

		admin := api.Group("/admin")
		admin.Use(authMiddleware)
		{
			admin.GET("/profile", profileHandler.GetProfile)
			admin.PUT("/profile", profileHandler.UpdateProfile)

			projects := admin.Group("/projects")
			{
				projects.POST("", projectHandler.CreateProject)
				projects.GET("", projectHandler.ListProjects)
				projects.GET("/:id", projectHandler.GetProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			admin.GET("/deployments", deployHandler.ListDeployments)
			admin.POST("/upload", uploadHandler.UploadMedia)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
