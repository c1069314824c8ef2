package service

import (
	"context"
	"encoding/json"
	"regexp"

	"menu-storefront/storefront-svc/internal/apperrors"
	"menu-storefront/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

const menuItemsCacheKey = "cms:menu-items"

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9._~-]{1,200}$`)

func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

type CatalogService struct {
	source    MenuSource
	cache     ResponseCache
	views     ViewTrackerInterface
	mediaBase string
	featured  []string
	popular   int
	logger    *zap.Logger
}

type CatalogOptions struct {
	MediaBaseURL       string
	FeaturedCategories []string
	PopularLimit       int
}

// NewCatalogService wires the catalog. cache and views may be nil.
func NewCatalogService(source MenuSource, cache ResponseCache, views ViewTrackerInterface, opts CatalogOptions, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		source:    source,
		cache:     cache,
		views:     views,
		mediaBase: opts.MediaBaseURL,
		featured:  opts.FeaturedCategories,
		popular:   opts.PopularLimit,
		logger:    logger,
	}
}

func (s *CatalogService) Items(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if s.cacheLoad(ctx, menuItemsCacheKey, &items) {
		return items, nil
	}

	items, err := s.source.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheStore(ctx, menuItemsCacheKey, items)
	return items, nil
}

func (s *CatalogService) Item(ctx context.Context, slug string) (*domain.MenuItem, error) {
	if !ValidSlug(slug) {
		return nil, apperrors.NewNotFoundError("menu item not found")
	}

	var key string
	if s.cache != nil {
		key = s.cache.MenuItemKey(slug)
		var cached domain.MenuItem
		if s.cacheLoad(ctx, key, &cached) {
			return &cached, nil
		}
	}

	item, err := s.source.FindMenuItemBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError("menu item not found")
	}
	if key != "" {
		s.cacheStore(ctx, key, item)
	}
	return item, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractCategories(items), nil
}

func (s *CatalogService) Listing(ctx context.Context, selected string) (*domain.ListingPage, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	return BuildListing(items, selected, s.mediaBase), nil
}

func (s *CatalogService) Detail(ctx context.Context, slug string) (*domain.DetailPage, error) {
	item, err := s.Item(ctx, slug)
	if err != nil {
		return nil, err
	}
	if s.views != nil {
		s.views.Record(ctx, *item)
	}
	return BuildDetail(*item, s.mediaBase), nil
}

// Popular returns the most viewed items in ranking order. Slugs that no
// longer exist in the catalog are skipped.
func (s *CatalogService) Popular(ctx context.Context, limit int) ([]domain.Card, error) {
	if s.views == nil || limit <= 0 {
		return []domain.Card{}, nil
	}
	ranked, err := s.views.Top(ctx, limit)
	if err != nil {
		s.logger.Warn("Failed to read popularity ranking", zap.Error(err))
		return []domain.Card{}, nil
	}
	if len(ranked) == 0 {
		return []domain.Card{}, nil
	}

	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		bySlug[item.Slug] = item
	}

	cards := make([]domain.Card, 0, len(ranked))
	for _, r := range ranked {
		if item, ok := bySlug[r.Slug]; ok {
			cards = append(cards, BuildCard(item, s.mediaBase))
		}
	}
	return cards, nil
}

// Home never fails; sections that cannot be loaded are left empty.
func (s *CatalogService) Home(ctx context.Context) *domain.HomePage {
	page := &domain.HomePage{}

	categories, err := s.Categories(ctx)
	if err != nil {
		s.logger.Warn("Home page rendered without categories", zap.Error(err))
		return page
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.Slug] = c.Name
	}
	for _, slug := range s.featured {
		if name, ok := names[slug]; ok {
			page.QuickLinks = append(page.QuickLinks, domain.QuickLink{Name: name, Href: ListingHref(slug)})
		}
	}

	popular, err := s.Popular(ctx, s.popular)
	if err != nil {
		s.logger.Warn("Home page rendered without popular items", zap.Error(err))
		return page
	}
	page.Popular = popular
	return page
}

func (s *CatalogService) cacheLoad(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *CatalogService) cacheStore(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
