package stream

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/claude-relay/internal/models"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/relay"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Consumer relays prompt events from a Redis stream consumer group. Every
// message gets exactly one upstream call and exactly one completion event,
// then it is acknowledged whatever the outcome.
type Consumer struct {
	client     *redis.Client
	cfg        *StreamConfig
	relay      *relay.Relay
	logger     *zerolog.Logger
	block      time.Duration
	// errorDelay is the pause after a failed read before the next one.
	errorDelay time.Duration
}

func NewConsumer(client *redis.Client, cfg *StreamConfig, relay *relay.Relay, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:     client,
		cfg:        cfg,
		relay:      relay,
		logger:     logger,
		block:      2 * time.Second,
		errorDelay: time.Second,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.PromptStream, c.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.cfg.PromptStream).
		Str("group", c.cfg.Group).
		Str("consumer", c.cfg.ConsumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := c.ProcessNext(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error().Err(err).Dur("retry_in", c.errorDelay).Msg("Failed to read from stream")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.errorDelay):
			}
		}
	}
}

// ProcessNext reads at most one batch from the group and handles it. It
// returns the number of messages processed; a read timeout is not an error.
func (c *Consumer) ProcessNext(ctx context.Context) (int, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.ConsumerName,
		Streams:  []string{c.cfg.PromptStream, ">"},
		Count:    1,
		Block:    c.block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	// Once read, a message is relayed, published and acked even if ctx is
	// cancelled meanwhile, so shutdown never strands it in the pending list.
	msgCtx := context.WithoutCancel(ctx)

	processed := 0
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			c.process(msgCtx, msg)
			processed++
		}
	}
	return processed, nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.publish(ctx, models.CompletionEvent{EventID: msg.ID, Status: models.CompletionError, Error: models.ErrorMessage})
		c.ack(ctx, msg.ID)
		return
	}

	var event models.PromptEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.publish(ctx, models.CompletionEvent{EventID: msg.ID, Status: models.CompletionError, Error: models.ErrorMessage})
		c.ack(ctx, msg.ID)
		return
	}
	if event.EventID == "" {
		event.EventID = msg.ID
	}

	completion := models.CompletionEvent{EventID: event.EventID}

	text, err := c.relay.Complete(ctx, event.Prompt)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Str("event_id", event.EventID).Msg("Error calling Claude")
		completion.Status = models.CompletionError
		completion.Error = models.ErrorMessage
	} else {
		completion.Status = models.CompletionOK
		completion.Text = text
	}

	c.publish(ctx, completion)
	c.ack(ctx, msg.ID)

	c.logger.Info().
		Str("id", msg.ID).
		Str("event_id", event.EventID).
		Str("status", string(completion.Status)).
		Msg("Prompt relayed")
}

func (c *Consumer) publish(ctx context.Context, completion models.CompletionEvent) {
	data, err := json.Marshal(completion)
	if err != nil {
		c.logger.Error().Err(err).Str("event_id", completion.EventID).Msg("Failed to encode completion")
		return
	}

	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.cfg.CompletionStream,
		Values: map[string]any{
			"event_id": completion.EventID,
			"payload":  string(data),
		},
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("event_id", completion.EventID).Msg("Failed to publish completion")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.cfg.PromptStream, c.cfg.Group, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
