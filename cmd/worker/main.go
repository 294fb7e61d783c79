package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/azizcs/portfolio-maker/adapters/event"
	"github.com/azizcs/portfolio-maker/adapters/persistence"
	"github.com/azizcs/portfolio-maker/internal/application/service"
	deployUC "github.com/azizcs/portfolio-maker/internal/application/usecase/deploy"
	"github.com/azizcs/portfolio-maker/internal/config"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio Maker worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	deploymentRepo := persistence.NewPostgresDeploymentRepo(dbPool, appLogger)
	recordDeploymentUC := deployUC.NewRecordDeploymentUseCase(deploymentRepo)

	deployConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicDeployEvents,
		GroupID:  "deployment-recorder-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer deployConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicDeployEvents))

	ctx := context.Background()
	for {
		msg, err := deployConsumer.FetchMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to fetch message from Kafka", err)
			continue
		}

		var evt service.DeployEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			appLogger.Error("Failed to unmarshal deploy event, skipping", err, zap.String("key", string(msg.Key)))
			commitMessage(deployConsumer, msg, appLogger)
			continue
		}

		if err := recordDeploymentUC.Execute(ctx, evt); err != nil {
			// Left uncommitted so the write is retried on the next fetch.
			appLogger.Error("Failed to record deployment", err, zap.String("user_id", evt.UserID.String()))
			continue
		}

		appLogger.Info("Deployment recorded",
			zap.String("user_id", evt.UserID.String()),
			zap.String("repo_name", evt.RepoName),
		)
		commitMessage(deployConsumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
