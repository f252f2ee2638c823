// internal/services/page_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type PageService struct {
	db *gorm.DB
}

type SavePageRequest struct {
	Title           string `json:"title" validate:"required,min=2,max=255"`
	Slug            string `json:"slug,omitempty" validate:"omitempty,slug"`
	Body            string `json:"body,omitempty"`
	MetaDescription string `json:"meta_description,omitempty" validate:"omitempty,max=500"`
	IsActive        *bool  `json:"is_active,omitempty"`
	SortOrder       int    `json:"sort_order,omitempty"`
}

func NewPageService(db *gorm.DB) *PageService {
	return &PageService{db: db}
}

func (s *PageService) CreatePage(req *SavePageRequest) (*models.Page, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pageSlug := req.Slug
	if pageSlug == "" {
		pageSlug = slug.Make(req.Title)
	}

	var existing int64
	if err := s.db.Model(&models.Page{}).Where("slug = ?", pageSlug).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, errors.New("slug already in use")
	}

	page := &models.Page{
		Title:           req.Title,
		Slug:            pageSlug,
		Body:            req.Body,
		MetaDescription: req.MetaDescription,
		IsActive:        true,
		SortOrder:       req.SortOrder,
	}
	if req.IsActive != nil {
		page.IsActive = *req.IsActive
	}

	if err := s.db.Create(page).Error; err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return page, nil
}

func (s *PageService) UpdatePage(id uuid.UUID, req *SavePageRequest) (*models.Page, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var page models.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("page not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"title":            req.Title,
		"body":             req.Body,
		"meta_description": req.MetaDescription,
		"sort_order":       req.SortOrder,
	}
	if req.Slug != "" && req.Slug != page.Slug {
		var taken int64
		if err := s.db.Model(&models.Page{}).Where("slug = ? AND id <> ?", req.Slug, id).Count(&taken).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		if taken > 0 {
			return nil, errors.New("slug already in use")
		}
		updates["slug"] = req.Slug
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(&page).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	return &page, nil
}

func (s *PageService) DeletePage(id uuid.UUID) error {
	var page models.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("page not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&page).Error; err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	return nil
}

// GetActivePageBySlug serves the storefront footer pages.
func (s *PageService) GetActivePageBySlug(pageSlug string) (*models.Page, error) {
	var page models.Page
	if err := s.db.Where("slug = ? AND is_active = ?", pageSlug, true).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("page not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &page, nil
}

func (s *PageService) ListActivePages() ([]models.Page, error) {
	var pages []models.Page
	if err := s.db.Select("id", "title", "slug", "sort_order", "updated_at").
		Where("is_active = ?", true).
		Order("sort_order ASC, title ASC").
		Find(&pages).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pages: %w", err)
	}

	return pages, nil
}

func (s *PageService) ListPages(params utils.PaginationParams) ([]models.Page, int64, error) {
	query := s.db.Model(&models.Page{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pages: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "sort_order"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var pages []models.Page
	if err := query.Find(&pages).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch pages: %w", err)
	}

	return pages, total, nil
}
