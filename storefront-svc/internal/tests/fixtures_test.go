package tests

import (
	"fmt"

	"menu-storefront/storefront-svc/internal/domain"
)

var (
	burgers  = domain.Category{ID: 1, Name: "Burgers", Slug: "burgers"}
	chicken  = domain.Category{ID: 2, Name: "Chicken & Fish", Slug: "chicken"}
	featured = domain.Category{ID: 3, Name: "Featured Favorites", Slug: "featured-favorites", Featured: true}
)

func menuItem(id int, slug string, categories ...domain.Category) domain.MenuItem {
	return domain.MenuItem{
		ID:         id,
		Slug:       slug,
		Title:      fmt.Sprintf("Item %d", id),
		Price:      float64(id) + 0.99,
		Image:      domain.Images{{URL: "/uploads/" + slug + ".png"}},
		Categories: categories,
		Description: domain.RichText{{
			Type:     "paragraph",
			Children: []domain.Inline{{Type: "text", Text: "Tasty " + slug}},
		}},
	}
}

func sampleMenu() []domain.MenuItem {
	return []domain.MenuItem{
		menuItem(1, "big-mac", burgers, featured),
		menuItem(2, "mcchicken", chicken),
		menuItem(3, "quarter-pounder", burgers),
		menuItem(4, "filet-o-fish", chicken, featured),
	}
}

func slugs(items []domain.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Slug)
	}
	return out
}
