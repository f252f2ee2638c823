// internal/models/page.go
package models

// Page is a footer/static content page (about, shipping terms, quality
// policy and the like), edited in the back office and served by slug.
type Page struct {
	BaseModel
	Title           string `json:"title" gorm:"size:255;not null"`
	Slug            string `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Body            string `json:"body" gorm:"type:text"`
	MetaDescription string `json:"meta_description" gorm:"size:500"`
	IsActive        bool   `json:"is_active" gorm:"default:true;index"`
	SortOrder       int    `json:"sort_order" gorm:"default:0"`
}
