package service

import (
	"context"

	"menu-storefront/agg-svc/internal/domain"
	"menu-storefront/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ViewStore interface {
	RecordView(ctx context.Context, event domain.ViewEvent) error
	TopViewed(ctx context.Context, limit int) (map[string]int64, error)
}

type RankingStore interface {
	IncrementView(ctx context.Context, event domain.ViewEvent) error
	Seed(ctx context.Context, counts map[string]int64) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessView(ctx context.Context, event domain.ViewEvent) error
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ViewStore         = (*storage.PostgresStore)(nil)
	_ RankingStore      = (*storage.RedisRanking)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
