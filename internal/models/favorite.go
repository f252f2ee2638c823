// internal/models/favorite.go
package models

import (
	"github.com/google/uuid"
)

// Favorite pairs a storefront visitor with a product. The composite unique
// index makes one favorite per visitor per product a database guarantee
// rather than an application-level assumption.
type Favorite struct {
	BaseModel
	VisitorID uuid.UUID `json:"visitor_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_visitor_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_visitor_product"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
