package tests

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"menu-storefront/storefront-svc/internal/apperrors"
	"menu-storefront/storefront-svc/internal/mocks"
	"menu-storefront/storefront-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCMSClient_ListMenuItems_FollowsPagination(t *testing.T) {
	var pages []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/menu-items", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("populate"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		page := r.URL.Query().Get("pagination[page]")
		pages = append(pages, page)
		n, _ := strconv.Atoi(page)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[{"id":%d,"slug":"item-%d","title":"Item %d"}],"meta":{"pagination":{"page":%d,"pageSize":100,"pageCount":2,"total":2}}}`, n, n, n, n)
	}))
	defer ts.Close()

	client := storage.NewCMSClient(ts.URL, "secret", ts.Client(), zap.NewNop())
	items, err := client.ListMenuItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pages)
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].Slug)
	assert.Equal(t, "item-2", items[1].Slug)
}

func TestCMSClient_FindMenuItemBySlug(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Query().Get("filters[slug][$eq]") {
		case "big-mac":
			w.Write([]byte(`{"data":[{"id":1,"slug":"big-mac","title":"Big Mac","price":5.99,"image":{"data":{"attributes":{"url":"/uploads/big_mac.png"}}}}],"meta":{}}`))
		default:
			w.Write([]byte(`{"data":[],"meta":{}}`))
		}
	}))
	defer ts.Close()

	client := storage.NewCMSClient(ts.URL, "", ts.Client(), zap.NewNop())

	item, err := client.FindMenuItemBySlug(context.Background(), "big-mac")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Big Mac", item.Title)
	img, ok := item.Image.First()
	assert.True(t, ok)
	assert.Equal(t, "/uploads/big_mac.png", img.URL)

	missing, err := client.FindMenuItemBySlug(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCMSClient_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"data":null,"error":{"status":403,"name":"ForbiddenError","message":"Forbidden"}}`))
	}))
	defer ts.Close()

	client := storage.NewCMSClient(ts.URL, "", ts.Client(), zap.NewNop())
	_, err := client.ListMenuItems(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperrors.HTTPStatus(err))
	assert.Contains(t, err.Error(), "Forbidden")
}

func TestCMSClient_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	client := storage.NewCMSClient(ts.URL, "", ts.Client(), zap.NewNop())
	_, err := client.FindMenuItemBySlug(context.Background(), "big-mac")

	assert.Equal(t, http.StatusBadGateway, apperrors.HTTPStatus(err))
}

func TestCMSClient_TransportError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	client := storage.NewCMSClient("http://cms.invalid", "", mockClient, zap.NewNop())
	_, err := client.ListMenuItems(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperrors.HTTPStatus(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCMSClient_ListMenuItems_ToleratesMalformedDescription(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":1,"slug":"big-mac","title":"Big Mac","description":[{"type":"paragraph","children":[{"type":"text","text":"Two all-beef patties"}]}]},
			{"id":2,"slug":"fries","title":"Fries","description":{"text":"x"}},
			{"id":3,"slug":"shake","title":"Shake","description":12}
		],"meta":{"pagination":{"page":1,"pageSize":100,"pageCount":1,"total":3}}}`))
	}))
	defer ts.Close()

	client := storage.NewCMSClient(ts.URL, "", ts.Client(), zap.NewNop())
	items, err := client.ListMenuItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"big-mac", "fries", "shake"}, slugs(items))
	assert.Equal(t, "Two all-beef patties", items[0].Description.PlainText())
	assert.Empty(t, items[1].Description)
	assert.Empty(t, items[2].Description)
}

func TestCMSClient_ListMenuItems_AttributesEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":1,"attributes":{"slug":"big-mac","title":"Big Mac","price":5.99,
				"categories":{"data":[{"id":4,"attributes":{"name":"Burgers","slug":"burgers"}}]}}}
		],"meta":{"pagination":{"page":1,"pageSize":100,"pageCount":1,"total":1}}}`))
	}))
	defer ts.Close()

	client := storage.NewCMSClient(ts.URL, "", ts.Client(), zap.NewNop())
	items, err := client.ListMenuItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "Big Mac", items[0].Title)
	assert.True(t, items[0].HasCategory("burgers"))
}
