// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/catalog"
	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

// CatalogService is the storefront's read side: it turns a FilterState into
// one database query and serves the lookups the filter panel is built from.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListProducts translates a filter state into a single query. Only active
// products are ever returned. The certification selection is intentionally
// absent here: text[] intersection is applied by the post-processor, not the
// query builder. Rows come back in the stable base order the post-processor
// ties break on.
func (s *CatalogService) ListProducts(ctx context.Context, f catalog.FilterState) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).
		Preload("Category").
		Where("is_active = ?", true)

	if f.CategoryScope != nil {
		query = query.Where("category_id = ?", *f.CategoryScope)
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(short_description) LIKE ? OR LOWER(long_description) LIKE ? OR LOWER(origin) LIKE ?",
			term, term, term, term,
		)
	}

	if len(f.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", f.CategoryIDs)
	}

	if len(f.Origins) > 0 {
		query = query.Where("origin IN ?", f.Origins)
	}

	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	query = query.Order("sort_rank ASC, created_at DESC")

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

// GetProductBySlug serves the public detail page. The slug, not the id, is
// the routing key. Inactive products are invisible to the storefront.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	go s.incrementViewCount(product.ID.String())

	return &product, nil
}

func (s *CatalogService) ListFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("sort_rank ASC, created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

// ListDistinctOrigins feeds the origin filter options.
func (s *CatalogService) ListDistinctOrigins(ctx context.Context) ([]string, error) {
	var origins []string
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ? AND origin <> ''", true).
		Distinct().
		Order("origin ASC").
		Pluck("origin", &origins).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch origins: %w", err)
	}

	return origins, nil
}

// ListDistinctCertifications feeds the certification filter options by
// unnesting the text[] column across active products.
func (s *CatalogService) ListDistinctCertifications(ctx context.Context) ([]string, error) {
	var certifications []string
	if err := s.db.WithContext(ctx).Raw(
		`SELECT DISTINCT unnest(certifications) AS certification
		 FROM products
		 WHERE is_active = true AND deleted_at IS NULL
		 ORDER BY certification ASC`,
	).Scan(&certifications).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch certifications: %w", err)
	}

	return certifications, nil
}

// incrementViewCount is best-effort: a failed counter update never blocks or
// fails the detail page, it is only logged.
func (s *CatalogService) incrementViewCount(productID string) {
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		logrus.WithError(err).WithField("product_id", productID).
			Warn("Failed to increment product view count")
	}
}
