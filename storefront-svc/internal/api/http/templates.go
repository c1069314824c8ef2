package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"menu-storefront/storefront-svc/internal/domain"
	"menu-storefront/storefront-svc/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templateFuncs = template.FuncMap{
	"price":       domain.FormatPrice,
	"lower":       strings.ToLower,
	"listingHref": service.ListingHref,
}

var pages = map[string]*template.Template{
	"home":    mustParsePage("home.html"),
	"listing": mustParsePage("listing.html"),
	"detail":  mustParsePage("detail.html"),
	"error":   mustParsePage("error.html"),
}

func mustParsePage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// renderPage buffers the output so nothing is written when execution fails.
func renderPage(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
	return nil
}
