// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name             string         `json:"name" gorm:"size:255;not null"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	ShortDescription string         `json:"short_description" gorm:"size:500"`
	LongDescription  string         `json:"long_description" gorm:"type:text"`
	PriceRange       string         `json:"price_range" gorm:"size:100"`
	Currency         string         `json:"currency" gorm:"size:3;default:'USD'"`
	MinimumOrder     string         `json:"minimum_order" gorm:"size:100"`
	Origin           string         `json:"origin" gorm:"size:100;index"`
	Certifications   pq.StringArray `json:"certifications" gorm:"type:text[]"`
	ExportMarkets    pq.StringArray `json:"export_markets" gorm:"type:text[]"`
	CategoryID       *uuid.UUID     `json:"category_id" gorm:"type:uuid;index"`
	IsActive         bool           `json:"is_active" gorm:"default:true;index"`
	IsFeatured       bool           `json:"is_featured" gorm:"default:false"`
	SortRank         int            `json:"sort_rank" gorm:"default:0"`
	ImageURL         string         `json:"image_url" gorm:"size:500"`
	GalleryImages    pq.StringArray `json:"gallery_images" gorm:"type:text[]"`
	ViewCount        int64          `json:"view_count" gorm:"default:0"`

	// Relationships
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// CategoryName returns the joined category name or a fallback label for
// products whose category was removed or never set.
func (p *Product) CategoryName() string {
	if p.Category == nil || p.Category.Name == "" {
		return "Uncategorized"
	}
	return p.Category.Name
}
