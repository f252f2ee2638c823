// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name      string `json:"name" gorm:"size:100;not null"`
	Slug      string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	IsActive  bool   `json:"is_active" gorm:"default:true;index"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
