package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/config"
)

const (
	TopicDeployEvents  = "deploy.events"
	TopicProfileEvents = "profile.events"
)

type KafkaProducerClient struct {
	DeployEventsWriter  *kafka.Writer
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	deployWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicDeployEvents,
		Balancer: &kafka.LeastBytes{},
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		DeployEventsWriter:  deployWriter,
		ProfileEventsWriter: profileWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishDeployEvent(ctx context.Context, evt service.DeployEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal deploy event: %w", err)
	}

	return c.DeployEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.UserID.String()),
		Value: payload,
	})
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, evt service.ProfileEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal profile event: %w", err)
	}

	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.UserID.String()),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.DeployEventsWriter != nil {
		c.DeployEventsWriter.Close()
	}
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
