// internal/services/seo_service.go
package services

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/config"
	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

type SeoService struct {
	db     *gorm.DB
	config *config.Config
}

type UpdateSeoRequest struct {
	Settings map[string]interface{} `json:"settings" validate:"required"`
}

func NewSeoService(db *gorm.DB, config *config.Config) *SeoService {
	return &SeoService{db: db, config: config}
}

func (s *SeoService) GetSettings() (map[string]models.SeoSetting, error) {
	var settings []models.SeoSetting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch SEO settings: %w", err)
	}

	result := make(map[string]models.SeoSetting, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting
	}

	return result, nil
}

func (s *SeoService) UpdateSetting(key string, value interface{}, adminID uuid.UUID) (*models.SeoSetting, error) {
	var setting models.SeoSetting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("database error: %w", err)
		}
		setting = models.SeoSetting{Key: key}
	}

	setting.Value = models.JSONB{"value": value}
	setting.UpdatedBy = adminID

	if err := s.db.Save(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to save SEO setting: %w", err)
	}

	return &setting, nil
}

// BaseURL resolves the canonical site URL: the stored setting wins, the
// config default backs it up.
func (s *SeoService) BaseURL() string {
	var setting models.SeoSetting
	if err := s.db.Where("key = ?", models.SeoKeyBaseURL).First(&setting).Error; err == nil {
		if v, ok := setting.Value["value"].(string); ok && v != "" {
			return strings.TrimRight(v, "/")
		}
	}
	return strings.TrimRight(s.config.Site.BaseURL, "/")
}

// Sitemap renders sitemap.xml from three list queries: active products,
// active categories and active pages, plus the static storefront routes.
func (s *SeoService) Sitemap(ctx context.Context) (string, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Select("slug", "updated_at").
		Where("is_active = ?", true).
		Order("sort_rank ASC").
		Find(&products).Error; err != nil {
		return "", fmt.Errorf("failed to fetch products for sitemap: %w", err)
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Select("slug", "updated_at").
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		return "", fmt.Errorf("failed to fetch categories for sitemap: %w", err)
	}

	var pages []models.Page
	if err := s.db.WithContext(ctx).Select("slug", "updated_at").
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&pages).Error; err != nil {
		return "", fmt.Errorf("failed to fetch pages for sitemap: %w", err)
	}

	return BuildSitemap(s.BaseURL(), products, categories, pages), nil
}

// BuildSitemap concatenates the sitemap document. Pure; exercised directly
// by tests.
func BuildSitemap(baseURL string, products []models.Product, categories []models.Category, pages []models.Page) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	writeURL := func(loc string, lastmod time.Time, changefreq, priority string) {
		b.WriteString("  <url>\n")
		// The base URL is admin-controlled and may carry characters that
		// need escaping in element content.
		b.WriteString("    <loc>" + xmlEscape(loc) + "</loc>\n")
		if !lastmod.IsZero() {
			b.WriteString("    <lastmod>" + lastmod.Format("2006-01-02") + "</lastmod>\n")
		}
		b.WriteString("    <changefreq>" + changefreq + "</changefreq>\n")
		b.WriteString("    <priority>" + priority + "</priority>\n")
		b.WriteString("  </url>\n")
	}

	writeURL(baseURL+"/", time.Time{}, "weekly", "1.0")
	writeURL(baseURL+"/products", time.Time{}, "daily", "0.9")
	writeURL(baseURL+"/contact", time.Time{}, "monthly", "0.5")

	for _, p := range products {
		writeURL(baseURL+"/products/"+p.Slug, p.UpdatedAt, "weekly", "0.8")
	}
	for _, c := range categories {
		writeURL(baseURL+"/categories/"+c.Slug, c.UpdatedAt, "weekly", "0.7")
	}
	for _, pg := range pages {
		writeURL(baseURL+"/"+pg.Slug, pg.UpdatedAt, "monthly", "0.4")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
