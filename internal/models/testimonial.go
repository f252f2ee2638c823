// internal/models/testimonial.go
package models

type Testimonial struct {
	BaseModel
	Author    string `json:"author" gorm:"size:100;not null"`
	Company   string `json:"company" gorm:"size:255"`
	Country   string `json:"country" gorm:"size:100"`
	Quote     string `json:"quote" gorm:"type:text;not null"`
	Rating    int    `json:"rating" gorm:"default:5"`
	IsActive  bool   `json:"is_active" gorm:"default:true;index"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}
