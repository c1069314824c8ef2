package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

const (
	AllMenuSlug           = "all-menu"
	FeaturedFavoritesSlug = "featured-favorites"

	ViewEventType = "item_viewed"
)

type MenuItem struct {
	ID          int        `json:"id"`
	DocumentID  string     `json:"documentId"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Price       float64    `json:"price"`
	Calories    *int       `json:"calories,omitempty"`
	Description RichText   `json:"description"`
	Image       Images     `json:"image"`
	Categories  []Category `json:"categories"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func (m MenuItem) HasCategory(slug string) bool {
	for _, c := range m.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Icon     string `json:"icon,omitempty"`
	Featured bool   `json:"featured"`
}

// entryEnvelope is the v4 entry wrapper: {id, attributes: {...}}.
type entryEnvelope struct {
	ID         int             `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
}

// unwrapEntry returns the attributes of a v4 entry, or data unchanged for
// the flat v5 shape.
func unwrapEntry(data []byte) (body []byte, envelopeID int) {
	var env entryEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return data, 0
	}
	attrs := bytes.TrimSpace(env.Attributes)
	if len(attrs) == 0 || attrs[0] != '{' {
		return data, 0
	}
	return attrs, env.ID
}

func (m *MenuItem) UnmarshalJSON(data []byte) error {
	type plain MenuItem
	body, envelopeID := unwrapEntry(data)

	var aux struct {
		plain
		Categories json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(body, &aux); err != nil {
		return err
	}
	categories, err := decodeCategories(aux.Categories)
	if err != nil {
		return err
	}

	*m = MenuItem(aux.plain)
	m.Categories = categories
	if m.ID == 0 {
		m.ID = envelopeID
	}
	return nil
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	body, envelopeID := unwrapEntry(data)

	var cat plain
	if err := json.Unmarshal(body, &cat); err != nil {
		return err
	}
	*c = Category(cat)
	if c.ID == 0 {
		c.ID = envelopeID
	}
	return nil
}

// decodeCategories accepts a plain list or the v4 {data: [...]} relation.
func decodeCategories(data []byte) ([]Category, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	switch data[0] {
	case '[':
		var out []Category
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	case '{':
		var rel struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(data, &rel); err != nil {
			return nil, err
		}
		if rel.Data != nil {
			return decodeCategories(rel.Data)
		}
		var single Category
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, err
		}
		return []Category{single}, nil
	}
	return nil, nil
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// MenuItemsResponse is the collection envelope returned by the CMS.
type MenuItemsResponse struct {
	Data []MenuItem `json:"data"`
	Meta Meta       `json:"meta"`
}

type CMSError struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type CMSErrorResponse struct {
	Error *CMSError `json:"error"`
}

type ViewEvent struct {
	Type      string    `json:"type"`
	Slug      string    `json:"slug"`
	ItemID    int       `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}

type PopularItem struct {
	Slug  string  `json:"slug"`
	Views float64 `json:"views"`
}
