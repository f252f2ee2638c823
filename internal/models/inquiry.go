// internal/models/inquiry.go
package models

import (
	"github.com/google/uuid"
)

// Inquiry is a storefront contact-form submission. Visitors create them,
// only admins mutate them afterwards.
type Inquiry struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:100;not null"`
	Email       string          `json:"email" gorm:"size:255;not null;index"`
	Company     string          `json:"company" gorm:"size:255"`
	Country     string          `json:"country" gorm:"size:100"`
	Phone       string          `json:"phone" gorm:"size:50"`
	InquiryType InquiryType     `json:"inquiry_type" gorm:"type:varchar(20);default:'general'"`
	ProductID   *uuid.UUID      `json:"product_id" gorm:"type:uuid;index"`
	Message     string          `json:"message" gorm:"type:text;not null"`
	Status      InquiryStatus   `json:"status" gorm:"type:varchar(20);default:'new';index"`
	Priority    InquiryPriority `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	AdminNotes  string          `json:"admin_notes" gorm:"type:text"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
