// internal/services/testimonial_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type TestimonialService struct {
	db *gorm.DB
}

type SaveTestimonialRequest struct {
	Author    string `json:"author" validate:"required,min=2,max=100"`
	Company   string `json:"company,omitempty" validate:"omitempty,max=255"`
	Country   string `json:"country,omitempty" validate:"omitempty,country_name"`
	Quote     string `json:"quote" validate:"required,min=10"`
	Rating    int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	IsActive  *bool  `json:"is_active,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{db: db}
}

func (s *TestimonialService) CreateTestimonial(req *SaveTestimonialRequest) (*models.Testimonial, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := &models.Testimonial{
		Author:    req.Author,
		Company:   req.Company,
		Country:   req.Country,
		Quote:     req.Quote,
		Rating:    rating,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := s.db.Create(testimonial).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	return testimonial, nil
}

func (s *TestimonialService) UpdateTestimonial(id uuid.UUID, req *SaveTestimonialRequest) (*models.Testimonial, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var testimonial models.Testimonial
	if err := s.db.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("testimonial not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"author":     req.Author,
		"company":    req.Company,
		"country":    req.Country,
		"quote":      req.Quote,
		"sort_order": req.SortOrder,
	}
	if req.Rating > 0 {
		updates["rating"] = req.Rating
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(&testimonial).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	return &testimonial, nil
}

func (s *TestimonialService) DeleteTestimonial(id uuid.UUID) error {
	var testimonial models.Testimonial
	if err := s.db.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("testimonial not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&testimonial).Error; err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	return nil
}

// ListActiveTestimonials serves the storefront carousel.
func (s *TestimonialService) ListActiveTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch testimonials: %w", err)
	}

	return testimonials, nil
}

func (s *TestimonialService) ListTestimonials(params utils.PaginationParams) ([]models.Testimonial, int64, error) {
	query := s.db.Model(&models.Testimonial{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count testimonials: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "author", "sort_order", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var testimonials []models.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch testimonials: %w", err)
	}

	return testimonials, total, nil
}
