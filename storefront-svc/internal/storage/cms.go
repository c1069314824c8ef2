package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"menu-storefront/storefront-svc/internal/apperrors"
	"menu-storefront/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	cmsService   = "cms"
	menuItemsAPI = "/api/menu-items"
	cmsPageSize  = 100
	// bounds pagination if the CMS keeps reporting more pages
	maxCMSPages = 50
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type CMSClient struct {
	baseURL string
	token   string
	client  HTTPClient
	logger  *zap.Logger
}

func NewCMSClient(baseURL, token string, client HTTPClient, logger *zap.Logger) *CMSClient {
	return &CMSClient{
		baseURL: baseURL,
		token:   token,
		client:  client,
		logger:  logger,
	}
}

// ListMenuItems walks every page of the menu-items collection.
func (c *CMSClient) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for page := 1; page <= maxCMSPages; page++ {
		query := url.Values{}
		query.Set("populate", "*")
		query.Set("pagination[page]", strconv.Itoa(page))
		query.Set("pagination[pageSize]", strconv.Itoa(cmsPageSize))

		resp, err := c.get(ctx, query)
		if err != nil {
			return nil, err
		}
		items = append(items, resp.Data...)

		if resp.Meta.Pagination.PageCount <= page || len(resp.Data) == 0 {
			break
		}
	}
	c.logger.Debug("Fetched menu items", zap.Int("count", len(items)))
	return items, nil
}

// FindMenuItemBySlug returns nil when no item carries the slug.
func (c *CMSClient) FindMenuItemBySlug(ctx context.Context, slug string) (*domain.MenuItem, error) {
	query := url.Values{}
	query.Set("filters[slug][$eq]", slug)
	query.Set("populate", "*")

	resp, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

func (c *CMSClient) get(ctx context.Context, query url.Values) (*domain.MenuItemsResponse, error) {
	target := c.baseURL + menuItemsAPI + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("CMS request failed", zap.String("url", target), zap.Error(err))
		return nil, apperrors.NewExternalError(cmsService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError(cmsService, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("status %d", resp.StatusCode)
		var cmsErr domain.CMSErrorResponse
		if json.Unmarshal(body, &cmsErr) == nil && cmsErr.Error != nil && cmsErr.Error.Message != "" {
			err = fmt.Errorf("status %d: %s", resp.StatusCode, cmsErr.Error.Message)
		}
		c.logger.Warn("CMS returned error status", zap.String("url", target), zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewExternalError(cmsService, err)
	}

	var out domain.MenuItemsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apperrors.NewExternalError(cmsService, fmt.Errorf("decode response: %w", err))
	}
	return &out, nil
}
