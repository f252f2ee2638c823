// internal/services/seo_service_test.go
package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

func TestBuildSitemap(t *testing.T) {
	updated := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	products := []models.Product{
		{BaseModel: models.BaseModel{UpdatedAt: updated}, Slug: "red-onions"},
	}
	categories := []models.Category{
		{BaseModel: models.BaseModel{UpdatedAt: updated}, Slug: "vegetables"},
	}
	pages := []models.Page{
		{BaseModel: models.BaseModel{UpdatedAt: updated}, Slug: "about-us"},
	}

	xml := BuildSitemap("https://shineveda.com", products, categories, pages)

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, "<loc>https://shineveda.com/</loc>")
	assert.Contains(t, xml, "<loc>https://shineveda.com/products</loc>")
	assert.Contains(t, xml, "<loc>https://shineveda.com/products/red-onions</loc>")
	assert.Contains(t, xml, "<loc>https://shineveda.com/categories/vegetables</loc>")
	assert.Contains(t, xml, "<loc>https://shineveda.com/about-us</loc>")
	assert.Contains(t, xml, "<lastmod>2026-08-15</lastmod>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(xml), "</urlset>"))
}

func TestBuildSitemapEscapesLocValues(t *testing.T) {
	xml := BuildSitemap("https://shineveda.com/?ref=trade&lang=en", nil, nil, nil)

	assert.Contains(t, xml, "<loc>https://shineveda.com/?ref=trade&amp;lang=en/</loc>")
	assert.NotContains(t, xml, "trade&lang")
}

func TestBuildSitemapOmitsZeroLastmod(t *testing.T) {
	xml := BuildSitemap("https://shineveda.com", nil, nil, nil)

	assert.NotContains(t, xml, "<lastmod>")
	assert.Contains(t, xml, "<loc>https://shineveda.com/contact</loc>")
}
