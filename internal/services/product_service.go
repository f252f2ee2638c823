// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

// ProductService is the admin write side of the catalog.
type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=255"`
	Slug             string   `json:"slug,omitempty" validate:"omitempty,slug"`
	ShortDescription string   `json:"short_description,omitempty" validate:"omitempty,max=500"`
	LongDescription  string   `json:"long_description,omitempty"`
	PriceRange       string   `json:"price_range,omitempty" validate:"omitempty,max=100"`
	Currency         string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	MinimumOrder     string   `json:"minimum_order,omitempty" validate:"omitempty,max=100"`
	Origin           string   `json:"origin,omitempty" validate:"omitempty,max=100"`
	Certifications   []string `json:"certifications,omitempty"`
	ExportMarkets    []string `json:"export_markets,omitempty"`
	CategoryID       *uuid.UUID `json:"category_id,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
	IsFeatured       *bool    `json:"is_featured,omitempty"`
	SortRank         int      `json:"sort_rank,omitempty"`
	ImageURL         string   `json:"image_url,omitempty" validate:"omitempty,max=500"`
	GalleryImages    []string `json:"gallery_images,omitempty"`
}

type UpdateProductRequest struct {
	Name             string     `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Slug             string     `json:"slug,omitempty" validate:"omitempty,slug"`
	ShortDescription *string    `json:"short_description,omitempty"`
	LongDescription  *string    `json:"long_description,omitempty"`
	PriceRange       *string    `json:"price_range,omitempty"`
	Currency         string     `json:"currency,omitempty" validate:"omitempty,len=3"`
	MinimumOrder     *string    `json:"minimum_order,omitempty"`
	Origin           *string    `json:"origin,omitempty"`
	Certifications   []string   `json:"certifications,omitempty"`
	ExportMarkets    []string   `json:"export_markets,omitempty"`
	CategoryID       *uuid.UUID `json:"category_id,omitempty"`
	IsActive         *bool      `json:"is_active,omitempty"`
	IsFeatured       *bool      `json:"is_featured,omitempty"`
	SortRank         *int       `json:"sort_rank,omitempty"`
	ImageURL         *string    `json:"image_url,omitempty"`
	GalleryImages    []string   `json:"gallery_images,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	productSlug := req.Slug
	if productSlug == "" {
		productSlug = slug.Make(req.Name)
	}

	// Slug is the public routing key and must be unique
	var existing int64
	if err := s.db.Model(&models.Product{}).Where("slug = ?", productSlug).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, errors.New("slug already in use")
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("category not found")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "USD"
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             productSlug,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		PriceRange:       req.PriceRange,
		Currency:         currency,
		MinimumOrder:     req.MinimumOrder,
		Origin:           req.Origin,
		Certifications:   pqArray(req.Certifications),
		ExportMarkets:    pqArray(req.ExportMarkets),
		CategoryID:       req.CategoryID,
		IsActive:         true,
		SortRank:         req.SortRank,
		ImageURL:         req.ImageURL,
		GalleryImages:    pqArray(req.GalleryImages),
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.db.Preload("Category").First(product, product.ID)

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Slug != "" && req.Slug != product.Slug {
		var taken int64
		if err := s.db.Model(&models.Product{}).Where("slug = ? AND id <> ?", req.Slug, id).Count(&taken).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		if taken > 0 {
			return nil, errors.New("slug already in use")
		}
		updates["slug"] = req.Slug
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.LongDescription != nil {
		updates["long_description"] = *req.LongDescription
	}
	if req.PriceRange != nil {
		updates["price_range"] = *req.PriceRange
	}
	if req.Currency != "" {
		updates["currency"] = strings.ToUpper(req.Currency)
	}
	if req.MinimumOrder != nil {
		updates["minimum_order"] = *req.MinimumOrder
	}
	if req.Origin != nil {
		updates["origin"] = *req.Origin
	}
	if req.Certifications != nil {
		updates["certifications"] = pqArray(req.Certifications)
	}
	if req.ExportMarkets != nil {
		updates["export_markets"] = pqArray(req.ExportMarkets)
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.SortRank != nil {
		updates["sort_rank"] = *req.SortRank
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.GalleryImages != nil {
		updates["gallery_images"] = pqArray(req.GalleryImages)
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.db.Preload("Category").First(&product, id)

	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// ListProducts is the admin table view: unlike the storefront it sees
// inactive rows too.
func (s *ProductService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Category")

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(short_description) LIKE ?", searchTerm, searchTerm)
	}

	if params.Status == "active" {
		query = query.Where("is_active = ?", true)
	} else if params.Status == "inactive" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "sort_rank", "view_count"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func pqArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}
