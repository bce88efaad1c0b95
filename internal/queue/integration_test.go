//go:build integration

package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(suffix string) config.RabbitMQConfig {
	return config.RabbitMQConfig{
		URL:          s.amqpURL,
		Exchange:     "enrichment-" + suffix,
		RequestQueue: "enrichment-requests-" + suffix,
		RequestKey:   "enrichment.request." + suffix,
		FinishedKey:  "enrichment.finished." + suffix,
		Prefetch:     1,
	}
}

func (s *RabbitMQIntegrationSuite) TestRabbitMQ_Connection() {
	mq, err := NewRabbitMQ(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(mq)

	err = mq.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestRabbitMQ_PublishRequest() {
	cfg := s.config("request")

	mq, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer mq.Close()

	err = mq.PublishRequest(s.ctx, &domain.EnrichmentRequest{
		BookmarkID: "bm-1",
		Reason:     "retry",
	})
	s.NoError(err)

	msg := s.consumeMessage(cfg.RequestQueue)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received domain.EnrichmentRequest
	s.NoError(json.Unmarshal(msg.Body, &received))
	s.Equal("bm-1", received.BookmarkID)
	s.Equal("retry", received.Reason)
}

func (s *RabbitMQIntegrationSuite) TestRabbitMQ_PublishFinished() {
	cfg := s.config("finished")

	mq, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer mq.Close()

	// Finished events have no durable queue of their own; bind one so the
	// published event can be observed.
	finishedQueue := s.bindQueue(cfg, cfg.FinishedKey)

	err = mq.PublishFinished(s.ctx, &domain.EnrichmentFinished{
		BookmarkID: "bm-2",
		RunID:      "run-1",
		Status:     domain.StatusCompleted,
		Timestamp:  time.Now().UTC(),
	})
	s.NoError(err)

	msg := s.consumeMessage(finishedQueue)
	s.Require().NotNil(msg)

	var received domain.EnrichmentFinished
	s.NoError(json.Unmarshal(msg.Body, &received))
	s.Equal("bm-2", received.BookmarkID)
	s.Equal(domain.StatusCompleted, received.Status)
	s.False(received.Timestamp.IsZero())
}

type recordingRunner struct {
	got chan string
}

func (r *recordingRunner) Enrich(ctx context.Context, bookmarkID string) (*domain.RunStats, error) {
	r.got <- bookmarkID
	return &domain.RunStats{Status: domain.StatusCompleted}, nil
}

func (s *RabbitMQIntegrationSuite) TestConsumer_DeliversRequestToRunner() {
	cfg := s.config("consume")

	mq, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer mq.Close()

	runner := &recordingRunner{got: make(chan string, 1)}
	consumer, err := NewConsumer(cfg, runner, s.logger)
	s.Require().NoError(err)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- consumer.Start(ctx) }()

	err = mq.PublishRequest(s.ctx, &domain.EnrichmentRequest{BookmarkID: "bm-3", Reason: "new"})
	s.Require().NoError(err)

	select {
	case bookmarkID := <-runner.got:
		s.Equal("bm-3", bookmarkID)
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for consumer to run request")
	}

	cancel()
	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for consumer to stop")
	}
}

type blockingRunner struct {
	arrived chan string
	release chan struct{}
}

func (r *blockingRunner) Enrich(ctx context.Context, bookmarkID string) (*domain.RunStats, error) {
	r.arrived <- bookmarkID
	<-r.release
	return &domain.RunStats{Status: domain.StatusCompleted}, nil
}

func (s *RabbitMQIntegrationSuite) TestConsumer_RunsRequestsConcurrently() {
	cfg := s.config("concurrent")
	cfg.Prefetch = 2

	mq, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer mq.Close()

	runner := &blockingRunner{arrived: make(chan string, 2), release: make(chan struct{})}
	consumer, err := NewConsumer(cfg, runner, s.logger)
	s.Require().NoError(err)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- consumer.Start(ctx) }()

	s.Require().NoError(mq.PublishRequest(s.ctx, &domain.EnrichmentRequest{BookmarkID: "bm-a", Reason: "new"}))
	s.Require().NoError(mq.PublishRequest(s.ctx, &domain.EnrichmentRequest{BookmarkID: "bm-b", Reason: "new"}))

	// Both runs must be in flight while neither has finished; a sequential
	// consumer would never start the second one here.
	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case bookmarkID := <-runner.arrived:
			seen[bookmarkID] = true
		case <-time.After(5 * time.Second):
			s.FailNow("Timeout waiting for concurrent deliveries")
		}
	}
	s.True(seen["bm-a"])
	s.True(seen["bm-b"])

	close(runner.release)
	cancel()
	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for consumer to stop")
	}
}

func (s *RabbitMQIntegrationSuite) bindQueue(cfg config.RabbitMQConfig, routingKey string) string {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	q, err := ch.QueueDeclare("observer-"+routingKey, true, false, false, false, nil)
	s.Require().NoError(err)
	s.Require().NoError(ch.QueueBind(q.Name, routingKey, cfg.Exchange, false, nil))
	return q.Name
}

func (s *RabbitMQIntegrationSuite) consumeMessage(queueName string) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(queueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
