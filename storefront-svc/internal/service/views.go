package service

import (
	"context"
	"time"

	"menu-storefront/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

type ViewTracker struct {
	publisher ViewPublisher
	ranking   PopularityRanking
	logger    *zap.Logger
	now       func() time.Time
}

// NewViewTracker accepts nil publisher or ranking; the missing half
// becomes a no-op.
func NewViewTracker(publisher ViewPublisher, ranking PopularityRanking, logger *zap.Logger) *ViewTracker {
	return &ViewTracker{
		publisher: publisher,
		ranking:   ranking,
		logger:    logger,
		now:       time.Now,
	}
}

// Record publishes a view event. Failures are logged and never reach
// the page being rendered.
func (t *ViewTracker) Record(ctx context.Context, item domain.MenuItem) {
	if t.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := domain.ViewEvent{
		Type:      domain.ViewEventType,
		Slug:      item.Slug,
		ItemID:    item.ID,
		Timestamp: t.now(),
	}
	if err := t.publisher.PublishView(ctx, event); err != nil {
		t.logger.Warn("Failed to publish view event", zap.String("slug", item.Slug), zap.Error(err))
	}
}

func (t *ViewTracker) Top(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	if t.ranking == nil {
		return nil, nil
	}
	return t.ranking.TopViewed(ctx, limit)
}
