package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"menu-storefront/agg-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	readRetryDelay = time.Second
	warmupLimit    = 1000
)

var ErrInvalidEvent = errors.New("view event has no slug")

type Consumer struct {
	Reader  MessageReader
	Views   ViewStore
	Ranking RankingStore
	Logger  *zap.Logger
}

func NewConsumer(reader MessageReader, views ViewStore, ranking RankingStore, logger *zap.Logger) *Consumer {
	return &Consumer{
		Reader:  reader,
		Views:   views,
		Ranking: ranking,
		Logger:  logger,
	}
}

// Start consumes until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.Logger.Info("Starting view aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("View aggregation consumer stopped")
				return nil
			}
			c.Logger.Warn("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var event domain.ViewEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("Error unmarshaling message", zap.Error(err), zap.Int64("offset", message.Offset))
			continue
		}

		if event.Type != domain.ViewEventType {
			continue
		}
		if err := c.ProcessView(ctx, event); err != nil {
			c.Logger.Error("Error processing view", zap.String("slug", event.Slug), zap.Error(err))
		}
	}
}

func (c *Consumer) ProcessView(ctx context.Context, event domain.ViewEvent) error {
	if event.Type != domain.ViewEventType {
		return nil
	}
	if event.Slug == "" {
		return ErrInvalidEvent
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := c.Views.RecordView(ctx, event); err != nil {
		return err
	}
	if c.Ranking != nil {
		if err := c.Ranking.IncrementView(ctx, event); err != nil {
			return err
		}
	}

	c.Logger.Debug("Processed view", zap.String("slug", event.Slug), zap.Int("item_id", event.ItemID))
	return nil
}

// Warmup copies persisted counts into the ranking so a flushed redis
// does not reset popularity.
func (c *Consumer) Warmup(ctx context.Context) error {
	if c.Ranking == nil {
		return nil
	}
	counts, err := c.Views.TopViewed(ctx, warmupLimit)
	if err != nil {
		return err
	}
	return c.Ranking.Seed(ctx, counts)
}
