// internal/handlers/catalog_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawanbishnoiii/shineveda-backend/internal/catalog"
	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

type listingResponse struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
	Meta    map[string]any   `json:"meta"`
}

func catalogRouter(fetch catalog.Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(catalog.NewRegistry(fetch), nil)

	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.POST("/v1/products/clear", h.ClearFilters)
	r.POST("/v1/products/refresh", h.RefreshProducts)
	return r
}

func doListing(t *testing.T, r *gin.Engine, method, url, session string) (*httptest.ResponseRecorder, listingResponse) {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body listingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func stubProduct(name string, certs []string, created time.Time) models.Product {
	return models.Product{
		BaseModel:      models.BaseModel{CreatedAt: created},
		Name:           name,
		Certifications: pq.StringArray(certs),
	}
}

func TestListProductsAppliesSortParam(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fetch := func(ctx context.Context, f catalog.FilterState) ([]models.Product, error) {
		return []models.Product{
			stubProduct("Banana Powder", nil, base),
			stubProduct("apple Chips", nil, base.Add(time.Hour)),
		}, nil
	}
	r := catalogRouter(fetch)

	w, body := doListing(t, r, "GET", "/v1/products?sort=name_asc", "s1")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, body.Success)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "apple Chips", body.Data[0].Name)
	assert.Equal(t, "Banana Powder", body.Data[1].Name)
}

func TestListProductsFiltersByCertification(t *testing.T) {
	fetch := func(ctx context.Context, f catalog.FilterState) ([]models.Product, error) {
		return []models.Product{
			stubProduct("Certified", []string{"FSSAI"}, time.Now()),
			stubProduct("Uncertified", nil, time.Now()),
		}, nil
	}
	r := catalogRouter(fetch)

	w, body := doListing(t, r, "GET", "/v1/products?certifications=FSSAI", "s1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Certified", body.Data[0].Name)
}

func TestListProductsRejectsBadCategoryID(t *testing.T) {
	fetch := func(ctx context.Context, f catalog.FilterState) ([]models.Product, error) {
		return nil, nil
	}
	r := catalogRouter(fetch)

	req := httptest.NewRequest("GET", "/v1/products?categories=not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProductsCachesPerSession(t *testing.T) {
	var calls int32
	fetch := func(ctx context.Context, f catalog.FilterState) ([]models.Product, error) {
		atomic.AddInt32(&calls, 1)
		return []models.Product{stubProduct("Onion", nil, time.Now())}, nil
	}
	r := catalogRouter(fetch)

	doListing(t, r, "GET", "/v1/products?search=onion", "session-a")
	doListing(t, r, "GET", "/v1/products?search=onion", "session-a")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	doListing(t, r, "GET", "/v1/products?search=onion", "session-b")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClearFiltersResetsSelections(t *testing.T) {
	fetch := func(ctx context.Context, f catalog.FilterState) ([]models.Product, error) {
		if f.Search != "" {
			return []models.Product{stubProduct("Match", nil, time.Now())}, nil
		}
		return []models.Product{
			stubProduct("Match", nil, time.Now()),
			stubProduct("Other", nil, time.Now()),
		}, nil
	}
	r := catalogRouter(fetch)

	_, filtered := doListing(t, r, "GET", "/v1/products?search=match", "s1")
	require.Len(t, filtered.Data, 1)

	w, cleared := doListing(t, r, "POST", "/v1/products/clear", "s1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, cleared.Data, 2)
}

func TestRefreshReFetchesCurrentSelection(t *testing.T) {
	var calls int32
	fetch := func(ctx context.Context, f catalog.FilterState) ([]models.Product, error) {
		atomic.AddInt32(&calls, 1)
		return []models.Product{stubProduct("Onion", nil, time.Now())}, nil
	}
	r := catalogRouter(fetch)

	doListing(t, r, "GET", "/v1/products", "s1")
	w, body := doListing(t, r, "POST", "/v1/products/refresh", "s1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
