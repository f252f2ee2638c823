// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawanbishnoiii/shineveda-backend/internal/catalog"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

// CatalogHandler is the storefront's read surface. Product listing goes
// through a per-session catalog.View so repeated requests with the same
// selections reuse cached rows and racing requests resolve to the newest
// selection.
type CatalogHandler struct {
	registry       *catalog.Registry
	catalogService *services.CatalogService
}

func NewCatalogHandler(registry *catalog.Registry, catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		registry:       registry,
		catalogService: catalogService,
	}
}

// sessionID resolves the storefront session. Clients send X-Session-ID;
// anonymous clients fall back to their IP, which is good enough for cache
// affinity.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return "ip:" + c.ClientIP()
}

// parseFilterState builds a FilterState from listing query parameters.
// Unknown sort and view values fall back to defaults rather than erroring.
func parseFilterState(c *gin.Context) (catalog.FilterState, error) {
	f := catalog.FilterState{
		Search:   c.Query("search"),
		SortBy:   catalog.SortNewest,
		ViewMode: catalog.ViewModeGrid,
	}

	for _, raw := range splitCSV(c.Query("categories")) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, errors.New("invalid category id: " + raw)
		}
		f.CategoryIDs = append(f.CategoryIDs, id)
	}

	f.Origins = splitCSV(c.Query("origins"))
	f.Certifications = splitCSV(c.Query("certifications"))

	if raw := c.Query("scope"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, errors.New("invalid scope id: " + raw)
		}
		f.CategoryScope = &id
	}

	switch catalog.SortKey(c.Query("sort")) {
	case catalog.SortNameAsc:
		f.SortBy = catalog.SortNameAsc
	case catalog.SortNameDesc:
		f.SortBy = catalog.SortNameDesc
	case catalog.SortOldest:
		f.SortBy = catalog.SortOldest
	}

	if catalog.ViewMode(c.Query("view")) == catalog.ViewModeList {
		f.ViewMode = catalog.ViewModeList
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return f, errors.New("invalid limit: " + raw)
		}
		f.Limit = limit
	}

	if raw := c.Query("price_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("invalid price_min: " + raw)
		}
		f.PriceMin = &v
	}
	if raw := c.Query("price_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("invalid price_max: " + raw)
		}
		f.PriceMax = &v
	}

	return f, nil
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ListProducts handles GET /v1/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	view := h.registry.Get(sessionID(c))
	products, err := view.Apply(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, catalog.ErrSuperseded) {
			utils.ErrorResponse(c, http.StatusConflict, "SUPERSEDED",
				"A newer filter selection replaced this request", nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponseWithMeta(c, products, gin.H{
		"count":     len(products),
		"sort":      f.SortBy,
		"view_mode": f.ViewMode,
	})
}

// RefreshProducts handles POST /v1/products/refresh: re-fetch the session's
// current selection, bypassing the cache.
func (h *CatalogHandler) RefreshProducts(c *gin.Context) {
	view := h.registry.Get(sessionID(c))
	products, err := view.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrSuperseded) {
			utils.ErrorResponse(c, http.StatusConflict, "SUPERSEDED",
				"A newer filter selection replaced this request", nil)
			return
		}
		if products != nil {
			// Refresh failed but the previous rows are still valid to show
			utils.SuccessResponseWithMeta(c, products, gin.H{
				"count": len(products),
				"stale": true,
			})
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponseWithMeta(c, products, gin.H{"count": len(products)})
}

// ClearFilters handles POST /v1/products/clear: reset every selection for
// the session in one step and return the unfiltered listing.
func (h *CatalogHandler) ClearFilters(c *gin.Context) {
	view := h.registry.Get(sessionID(c))
	f := view.State()
	f.Clear()

	products, err := view.Apply(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, catalog.ErrSuperseded) {
			utils.ErrorResponse(c, http.StatusConflict, "SUPERSEDED",
				"A newer filter selection replaced this request", nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponseWithMeta(c, products, gin.H{"count": len(products)})
}

// GetProduct handles GET /v1/products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, product)
}

// ListFeatured handles GET /v1/products/featured
func (h *CatalogHandler) ListFeatured(c *gin.Context) {
	limit := 8
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 24 {
			limit = v
		}
	}

	products, err := h.catalogService.ListFeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, products)
}

// ListCategories handles GET /v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, categories)
}

// ListOrigins handles GET /v1/catalog/origins
func (h *CatalogHandler) ListOrigins(c *gin.Context) {
	origins, err := h.catalogService.ListDistinctOrigins(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, origins)
}

// ListCertifications handles GET /v1/catalog/certifications
func (h *CatalogHandler) ListCertifications(c *gin.Context) {
	certifications, err := h.catalogService.ListDistinctCertifications(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, certifications)
}
