// internal/services/inquiry_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type InquiryService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

type CreateInquiryRequest struct {
	Name        string             `json:"name" validate:"required,min=2,max=100"`
	Email       string             `json:"email" validate:"required,email"`
	Company     string             `json:"company,omitempty" validate:"omitempty,max=255"`
	Country     string             `json:"country,omitempty" validate:"omitempty,country_name"`
	Phone       string             `json:"phone,omitempty" validate:"omitempty,max=50"`
	InquiryType models.InquiryType `json:"inquiry_type,omitempty" validate:"omitempty,oneof=product bulk_order partnership general"`
	ProductID   *uuid.UUID         `json:"product_id,omitempty"`
	Message     string             `json:"message" validate:"required,min=10"`
}

type UpdateInquiryRequest struct {
	Status     models.InquiryStatus   `json:"status,omitempty" validate:"omitempty,oneof=new in_progress resolved closed"`
	Priority   models.InquiryPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	AdminNotes *string                `json:"admin_notes,omitempty"`
}

func NewInquiryService(db *gorm.DB, notificationService *NotificationService) *InquiryService {
	return &InquiryService{
		db:                  db,
		notificationService: notificationService,
	}
}

// CreateInquiry records a storefront contact-form submission and notifies
// the export team. The notification is best-effort: a mail failure never
// fails the submission.
func (s *InquiryService) CreateInquiry(req *CreateInquiryRequest) (*models.Inquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.ProductID != nil {
		var product models.Product
		if err := s.db.First(&product, *req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("product not found")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	inquiryType := req.InquiryType
	if inquiryType == "" {
		inquiryType = models.InquiryTypeGeneral
	}

	inquiry := &models.Inquiry{
		Name:        req.Name,
		Email:       strings.ToLower(req.Email),
		Company:     req.Company,
		Country:     req.Country,
		Phone:       req.Phone,
		InquiryType: inquiryType,
		ProductID:   req.ProductID,
		Message:     req.Message,
		Status:      models.InquiryStatusNew,
		Priority:    models.InquiryPriorityMedium,
	}

	if err := s.db.Create(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	if inquiry.ProductID != nil {
		s.db.Preload("Product").First(inquiry, inquiry.ID)
	}

	if s.notificationService != nil {
		go func(in models.Inquiry) {
			if err := s.notificationService.SendInquiryNotification(&in); err != nil {
				logrus.WithError(err).Warn("Failed to send inquiry notification email")
			}
		}(*inquiry)
	}

	return inquiry, nil
}

func (s *InquiryService) GetInquiry(id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.db.Preload("Product").First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("inquiry not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &inquiry, nil
}

func (s *InquiryService) UpdateInquiry(id uuid.UUID, req *UpdateInquiryRequest) (*models.Inquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var inquiry models.Inquiry
	if err := s.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("inquiry not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}

	if err := s.db.Model(&inquiry).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	s.db.Preload("Product").First(&inquiry, id)

	return &inquiry, nil
}

func (s *InquiryService) DeleteInquiry(id uuid.UUID) error {
	var inquiry models.Inquiry
	if err := s.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("inquiry not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&inquiry).Error; err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	return nil
}

func (s *InquiryService) ListInquiries(params utils.PaginationParams) ([]models.Inquiry, int64, error) {
	query := s.db.Model(&models.Inquiry{}).Preload("Product")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "status", "priority", "country"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var inquiries []models.Inquiry
	if err := query.Find(&inquiries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch inquiries: %w", err)
	}

	return inquiries, total, nil
}
