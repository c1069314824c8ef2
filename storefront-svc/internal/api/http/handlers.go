package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"menu-storefront/storefront-svc/internal/apperrors"
	"menu-storefront/storefront-svc/internal/domain"
	"menu-storefront/storefront-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	defaultPopularLimit = 4
	maxPopularLimit     = 50
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Share   service.ShareServiceInterface
	Logger  *zap.Logger
}

func NewHandler(catalog service.CatalogServiceInterface, share service.ShareServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: catalog,
		Share:   share,
		Logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/", h.homePage).Methods("GET")
	r.HandleFunc("/listing", h.listingPage).Methods("GET")
	r.HandleFunc("/listing/{slug}", h.detailPage).Methods("GET")
	r.HandleFunc("/listing/{slug}/qrcode", h.getQRCode).Methods("GET")

	r.HandleFunc("/api/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/{slug}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/popular", h.getPopular).Methods("GET")

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(staticFiles())))
	r.NotFoundHandler = http.HandlerFunc(h.notFound)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	page := h.Catalog.Home(r.Context())
	h.render(w, r, "home", page)
}

func (h *Handler) listingPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.Catalog.Listing(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, "listing", page)
}

func (h *Handler) detailPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.Catalog.Detail(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, "detail", page)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if _, err := h.Catalog.Item(r.Context(), slug); err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := h.Share.QRCode(slug)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.Items(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	filtered := service.FilterItems(items, r.URL.Query().Get("category"))
	if filtered == nil {
		filtered = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.Item(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	limit := defaultPopularLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPopularLimit {
			h.writeError(w, r, apperrors.NewValidationError("limit must be between 1 and 50"))
			return
		}
		limit = n
	}
	cards, err := h.Catalog.Popular(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, apperrors.NewNotFoundError("Page not found"))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := renderPage(w, http.StatusOK, name, data); err != nil {
		h.logRequestError(r, http.StatusInternalServerError, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

type errorPage struct {
	Status  int
	Message string
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	h.logRequestError(r, status, err)

	message := "Something went wrong. Please try again later."
	switch status {
	case http.StatusNotFound:
		message = "We couldn't find what you were looking for."
	case http.StatusBadGateway:
		message = "The menu is temporarily unavailable."
	}
	if rerr := renderPage(w, status, "error", errorPage{Status: status, Message: message}); rerr != nil {
		h.Logger.Error("Failed to render error page", zap.Error(rerr))
		http.Error(w, http.StatusText(status), status)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	h.logRequestError(r, status, err)
	writeJSON(w, status, apperrors.As(err))
}

func (h *Handler) logRequestError(r *http.Request, status int, err error) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.Logger.Error("Request failed", fields...)
		return
	}
	h.Logger.Info("Request rejected", fields...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
