// internal/models/analytics.go
package models

import (
	"github.com/google/uuid"
)

// PageView is a single storefront view event, captured fire-and-forget.
type PageView struct {
	BaseModel
	Path      string     `json:"path" gorm:"size:500;not null;index"`
	ProductID *uuid.UUID `json:"product_id" gorm:"type:uuid;index"`
	SessionID string     `json:"session_id" gorm:"size:100;index"`
	Referrer  string     `json:"referrer" gorm:"size:500"`
	UserAgent string     `json:"user_agent" gorm:"size:500"`
	IPAddress string     `json:"ip_address" gorm:"size:45"`
}
