// internal/services/analytics_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type AnalyticsService struct {
	db *gorm.DB
}

type RecordPageViewRequest struct {
	Path      string     `json:"path" validate:"required,max=500"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	SessionID string     `json:"session_id,omitempty" validate:"omitempty,max=100"`
	Referrer  string     `json:"referrer,omitempty" validate:"omitempty,max=500"`
}

type DashboardStats struct {
	TotalProducts     int64            `json:"total_products"`
	ActiveProducts    int64            `json:"active_products"`
	TotalCategories   int64            `json:"total_categories"`
	TotalFavorites    int64            `json:"total_favorites"`
	InquiriesByStatus map[string]int64 `json:"inquiries_by_status"`
	ViewsLast30Days   []DailyViews     `json:"views_last_30_days"`
	TopProducts       []ProductViews   `json:"top_products"`
	RecentInquiries   []models.Inquiry `json:"recent_inquiries"`
}

type DailyViews struct {
	Day   time.Time `json:"day"`
	Views int64     `json:"views"`
}

type ProductViews struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Views     int64     `json:"views"`
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// RecordPageView captures one storefront view event. Fire-and-forget from
// the caller's perspective; failures are the caller's to log, not surface.
func (s *AnalyticsService) RecordPageView(req *RecordPageViewRequest, ipAddress, userAgent string) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	view := &models.PageView{
		Path:      req.Path,
		ProductID: req.ProductID,
		SessionID: req.SessionID,
		Referrer:  req.Referrer,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}

	if err := s.db.Create(view).Error; err != nil {
		return fmt.Errorf("failed to record page view: %w", err)
	}

	return nil
}

func (s *AnalyticsService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		InquiriesByStatus: make(map[string]int64),
	}

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	s.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts)
	s.db.Model(&models.Category{}).Count(&stats.TotalCategories)
	s.db.Model(&models.Favorite{}).Count(&stats.TotalFavorites)

	// Inquiry counts grouped by status
	var statusCounts []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&models.Inquiry{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}
	for _, sc := range statusCounts {
		stats.InquiriesByStatus[sc.Status] = sc.Count
	}

	// Daily view counts for the last 30 days
	since := time.Now().AddDate(0, 0, -30)
	if err := s.db.Model(&models.PageView{}).
		Select("DATE_TRUNC('day', created_at) AS day, COUNT(*) AS views").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&stats.ViewsLast30Days).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate page views: %w", err)
	}

	// Top products by recorded views
	if err := s.db.Model(&models.PageView{}).
		Select("page_views.product_id, products.name, products.slug, COUNT(*) AS views").
		Joins("JOIN products ON products.id = page_views.product_id").
		Where("page_views.product_id IS NOT NULL AND page_views.created_at >= ?", since).
		Group("page_views.product_id, products.name, products.slug").
		Order("views DESC").
		Limit(10).
		Scan(&stats.TopProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}

	if err := s.db.Preload("Product").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentInquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent inquiries: %w", err)
	}

	return stats, nil
}
