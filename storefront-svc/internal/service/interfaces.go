package service

import (
	"context"

	"menu-storefront/storefront-svc/internal/domain"
)

type MenuSource interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	FindMenuItemBySlug(ctx context.Context, slug string) (*domain.MenuItem, error)
}

type ResponseCache interface {
	MenuItemKey(slug string) string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type ViewPublisher interface {
	PublishView(ctx context.Context, event domain.ViewEvent) error
}

type PopularityRanking interface {
	TopViewed(ctx context.Context, limit int) ([]domain.PopularItem, error)
}

type CatalogServiceInterface interface {
	Items(ctx context.Context) ([]domain.MenuItem, error)
	Item(ctx context.Context, slug string) (*domain.MenuItem, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Listing(ctx context.Context, selected string) (*domain.ListingPage, error)
	Detail(ctx context.Context, slug string) (*domain.DetailPage, error)
	Popular(ctx context.Context, limit int) ([]domain.Card, error)
	Home(ctx context.Context) *domain.HomePage
}

type ViewTrackerInterface interface {
	Record(ctx context.Context, item domain.MenuItem)
	Top(ctx context.Context, limit int) ([]domain.PopularItem, error)
}

type ShareServiceInterface interface {
	ShareURL(slug string) string
	QRCode(slug string) ([]byte, error)
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ ViewTrackerInterface    = (*ViewTracker)(nil)
	_ ShareServiceInterface   = (*ShareService)(nil)
)
