package domain

import "strconv"

// View models rendered by the HTML templates and the JSON read API.

type Card struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Href     string  `json:"href"`
	ImageURL string  `json:"image_url,omitempty"`
	HasImage bool    `json:"has_image"`
	Excerpt  string  `json:"excerpt"`
	Price    float64 `json:"price"`
}

type SidebarEntry struct {
	ID       int
	Name     string
	Slug     string
	Href     string
	Featured bool
	Selected bool
}

type CategoryGroup struct {
	Category  Category
	Href      string
	Cards     []Card
	Remaining int
}

type ListingPage struct {
	Selected            string
	Title               string
	Sidebar             []SidebarEntry
	Cards               []Card
	CountLabel          string
	Groups              []CategoryGroup
	ShowCategorySection bool
}

type DetailPage struct {
	ID          int
	Title       string
	Slug        string
	ImageURL    string
	HasImage    bool
	Calories    int
	Description string
	Price       float64
	Categories  []Category
	QRCodeHref  string
}

type QuickLink struct {
	Name string
	Href string
}

type HomePage struct {
	QuickLinks []QuickLink
	Popular    []Card
}

// FormatPrice renders a price the way the menu has always shown it:
// shortest decimal form, no forced cents.
func FormatPrice(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}

func ItemCountLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}
