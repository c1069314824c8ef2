package service

import (
	"net/url"

	"menu-storefront/storefront-svc/internal/domain"
)

const (
	allMenuName           = "Full Menu"
	featuredFavoritesName = "Featured Favorites"
	unknownCategoryName   = "Menu Items"

	allMenuID = -2

	featuredFallbackCount = 6
	groupPreviewSize      = 8
	excerptLength         = 100
)

// ExtractCategories returns each category once, in first-seen order.
func ExtractCategories(items []domain.MenuItem) []domain.Category {
	seen := make(map[int]bool)
	var categories []domain.Category
	for _, item := range items {
		for _, c := range item.Categories {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			categories = append(categories, domain.Category{
				ID:       c.ID,
				Name:     c.Name,
				Slug:     c.Slug,
				Featured: c.Featured,
				Icon:     c.Icon,
			})
		}
	}
	return categories
}

func FilterItems(items []domain.MenuItem, selected string) []domain.MenuItem {
	switch selected {
	case "", domain.AllMenuSlug:
		return items
	case domain.FeaturedFavoritesSlug:
		featured := itemsInCategory(items, domain.FeaturedFavoritesSlug)
		if len(featured) > 0 {
			return featured
		}
		if len(items) > featuredFallbackCount {
			return items[:featuredFallbackCount]
		}
		return items
	default:
		return itemsInCategory(items, selected)
	}
}

func itemsInCategory(items []domain.MenuItem, slug string) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range items {
		if item.HasCategory(slug) {
			out = append(out, item)
		}
	}
	return out
}

func CategoryTitle(categories []domain.Category, selected string) string {
	switch selected {
	case "", domain.AllMenuSlug:
		return allMenuName
	case domain.FeaturedFavoritesSlug:
		return featuredFavoritesName
	}
	for _, c := range categories {
		if c.Slug == selected && c.Name != "" {
			return c.Name
		}
	}
	return unknownCategoryName
}

type ItemGroup struct {
	Category domain.Category
	Items    []domain.MenuItem
}

// GroupByCategory keeps category order and drops empty groups.
func GroupByCategory(categories []domain.Category, items []domain.MenuItem) []ItemGroup {
	var groups []ItemGroup
	for _, c := range categories {
		matched := itemsInCategory(items, c.Slug)
		if len(matched) == 0 {
			continue
		}
		groups = append(groups, ItemGroup{Category: c, Items: matched})
	}
	return groups
}

func Sidebar(categories []domain.Category, selected string) []domain.SidebarEntry {
	if selected == "" {
		selected = domain.AllMenuSlug
	}
	entries := []domain.SidebarEntry{{
		ID:       allMenuID,
		Name:     allMenuName,
		Slug:     domain.AllMenuSlug,
		Href:     ListingHref(domain.AllMenuSlug),
		Featured: true,
		Selected: selected == domain.AllMenuSlug,
	}}
	for _, c := range categories {
		entries = append(entries, domain.SidebarEntry{
			ID:       c.ID,
			Name:     c.Name,
			Slug:     c.Slug,
			Href:     ListingHref(c.Slug),
			Featured: c.Featured,
			Selected: selected == c.Slug,
		})
	}
	return entries
}

func ListingHref(category string) string {
	if category == "" || category == domain.AllMenuSlug {
		return "/listing"
	}
	return "/listing?category=" + url.QueryEscape(category)
}

func DetailHref(slug string) string {
	return "/listing/" + url.PathEscape(slug)
}

func BuildCard(item domain.MenuItem, mediaBase string) domain.Card {
	card := domain.Card{
		ID:      item.ID,
		Title:   item.Title,
		Slug:    item.Slug,
		Href:    DetailHref(item.Slug),
		Excerpt: item.Description.Excerpt(excerptLength),
		Price:   item.Price,
	}
	if img, ok := item.Image.First(); ok {
		card.ImageURL = domain.ResolveMediaURL(mediaBase, img.URL)
		card.HasImage = card.ImageURL != ""
	}
	return card
}

func BuildCards(items []domain.MenuItem, mediaBase string) []domain.Card {
	cards := make([]domain.Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, BuildCard(item, mediaBase))
	}
	return cards
}

func BuildListing(items []domain.MenuItem, selected, mediaBase string) *domain.ListingPage {
	if selected == "" {
		selected = domain.AllMenuSlug
	}
	categories := ExtractCategories(items)
	filtered := FilterItems(items, selected)

	page := &domain.ListingPage{
		Selected:   selected,
		Title:      CategoryTitle(categories, selected),
		Sidebar:    Sidebar(categories, selected),
		Cards:      BuildCards(filtered, mediaBase),
		CountLabel: domain.ItemCountLabel(len(filtered)),
	}

	switch selected {
	case domain.AllMenuSlug:
		for _, g := range GroupByCategory(categories, items) {
			preview := g.Items
			if len(preview) > groupPreviewSize {
				preview = preview[:groupPreviewSize]
			}
			page.Groups = append(page.Groups, domain.CategoryGroup{
				Category:  g.Category,
				Href:      ListingHref(g.Category.Slug),
				Cards:     BuildCards(preview, mediaBase),
				Remaining: len(g.Items) - len(preview),
			})
		}
	case domain.FeaturedFavoritesSlug:
		// featured view has no extra sections
	default:
		page.ShowCategorySection = len(filtered) > 0
	}

	return page
}

func BuildDetail(item domain.MenuItem, mediaBase string) *domain.DetailPage {
	page := &domain.DetailPage{
		ID:          item.ID,
		Title:       item.Title,
		Slug:        item.Slug,
		Description: item.Description.PlainText(),
		Price:       item.Price,
		Categories:  item.Categories,
		QRCodeHref:  DetailHref(item.Slug) + "/qrcode",
	}
	if item.Calories != nil && *item.Calories > 0 {
		page.Calories = *item.Calories
	}
	if img, ok := item.Image.First(); ok {
		page.ImageURL = domain.ResolveMediaURL(mediaBase, img.URL)
		page.HasImage = page.ImageURL != ""
	}
	return page
}
