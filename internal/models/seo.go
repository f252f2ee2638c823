// internal/models/seo.go
package models

import (
	"github.com/google/uuid"
)

// SeoSetting is a keyed site-wide setting (site title, meta description,
// canonical base URL, social image). One row per key.
type SeoSetting struct {
	BaseModel
	Key         string    `json:"key" gorm:"uniqueIndex;size:100;not null"`
	Value       JSONB     `json:"value" gorm:"type:jsonb"`
	Description string    `json:"description" gorm:"size:500"`
	UpdatedBy   uuid.UUID `json:"updated_by" gorm:"type:uuid"`
}

// Well-known SEO setting keys.
const (
	SeoKeySiteTitle       = "site_title"
	SeoKeySiteDescription = "site_description"
	SeoKeyKeywords        = "keywords"
	SeoKeyBaseURL         = "base_url"
	SeoKeyOgImage         = "og_image"
)
