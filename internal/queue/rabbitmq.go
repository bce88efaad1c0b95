// Package queue connects the enrichment pipeline to RabbitMQ: requests
// arrive on a queue, terminal outcomes are announced on the exchange.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

// RabbitMQ implements service.Publisher and service.Enqueuer over one
// connection. The request queue is declared and bound so requests survive
// broker restarts and publisher/consumer start order does not matter.
type RabbitMQ struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	exchange    string
	requestKey  string
	finishedKey string
	logger      *slog.Logger
}

func NewRabbitMQ(cfg config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"request_queue", cfg.RequestQueue,
	)

	return &RabbitMQ{
		conn:        conn,
		channel:     ch,
		exchange:    cfg.Exchange,
		requestKey:  cfg.RequestKey,
		finishedKey: cfg.FinishedKey,
		logger:      logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg config.RabbitMQConfig) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.RequestQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare request queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RequestKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind request queue: %w", err)
	}

	return nil
}

// PublishRequest enqueues one enrichment request.
func (r *RabbitMQ) PublishRequest(ctx context.Context, req *domain.EnrichmentRequest) error {
	if err := r.publish(ctx, r.requestKey, req); err != nil {
		return err
	}
	r.logger.Debug("published enrichment request",
		"bookmark_id", req.BookmarkID,
		"reason", req.Reason,
	)
	return nil
}

// PublishFinished announces a terminal run outcome.
func (r *RabbitMQ) PublishFinished(ctx context.Context, event *domain.EnrichmentFinished) error {
	if err := r.publish(ctx, r.finishedKey, event); err != nil {
		return err
	}
	r.logger.Debug("published finished event",
		"bookmark_id", event.BookmarkID,
		"status", event.Status,
	)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
