package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

// Runner executes one enrichment run for a bookmark.
type Runner interface {
	Enrich(ctx context.Context, bookmarkID string) (*domain.RunStats, error)
}

// Consumer pulls enrichment requests off the request queue and hands them
// to the orchestrator, running up to prefetch requests concurrently so one
// slow run never stalls the rest of the queue. It owns its connection so
// consuming never blocks the publisher channel.
type Consumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	queue    string
	prefetch int
	runner   Runner
	logger   *slog.Logger
}

func NewConsumer(cfg config.RabbitMQConfig, runner Runner, logger *slog.Logger) (*Consumer, error) {
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

	if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("set prefetch: %w", err)
	}

	return &Consumer{
		conn:     conn,
		channel:  ch,
		queue:    cfg.RequestQueue,
		prefetch: cfg.Prefetch,
		runner:   runner,
		logger:   logger.With("component", "consumer"),
	}, nil
}

// Start consumes requests until ctx is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.ConsumeWithContext(
		ctx,
		c.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	c.logger.Info("consuming enrichment requests", "queue", c.queue, "prefetch", c.prefetch)

	// The broker stops delivering past the prefetch window of unacked
	// messages, so the pool is sized to match it.
	sem := make(chan struct{}, c.prefetch)
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			c.logger.Info("consumer stopped")
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				wg.Wait()
				return fmt.Errorf("delivery channel closed")
			}
			sem <- struct{}{}
			wg.Add(1)
			go func(delivery amqp.Delivery) {
				defer wg.Done()
				defer func() { <-sem }()
				c.handle(ctx, delivery)
			}(delivery)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var req domain.EnrichmentRequest
	if err := json.Unmarshal(delivery.Body, &req); err != nil {
		c.logger.Warn("dropping undecodable request", "error", err)
		_ = delivery.Ack(false)
		return
	}

	stats, err := c.runner.Enrich(ctx, req.BookmarkID)
	switch {
	case err == nil:
		c.logger.Info("request processed",
			"bookmark_id", req.BookmarkID,
			"status", stats.Status,
			"duration", stats.Duration,
		)
		_ = delivery.Ack(false)
	case errors.Is(err, domain.ErrAlreadyProcessing):
		// Another run holds the claim; the request is redundant, not lost.
		c.logger.Warn("dropping request for busy bookmark", "bookmark_id", req.BookmarkID)
		_ = delivery.Ack(false)
	case errors.Is(err, domain.ErrNotFound):
		c.logger.Warn("dropping request for unknown bookmark", "bookmark_id", req.BookmarkID)
		_ = delivery.Ack(false)
	case !delivery.Redelivered:
		c.logger.Error("run failed, requeueing once",
			"bookmark_id", req.BookmarkID,
			"error", err,
		)
		_ = delivery.Nack(false, true)
	default:
		c.logger.Error("run failed after redelivery, dropping",
			"bookmark_id", req.BookmarkID,
			"error", err,
		)
		_ = delivery.Nack(false, false)
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
