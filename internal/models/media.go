// internal/models/media.go
package models

import (
	"github.com/google/uuid"
)

type Media struct {
	BaseModel
	URL        string      `json:"url" gorm:"size:500;not null"`
	StorageKey string      `json:"storage_key" gorm:"size:500;not null"`
	FileName   string      `json:"file_name" gorm:"size:255"`
	MimeType   string      `json:"mime_type" gorm:"size:100"`
	Size       int64       `json:"size"`
	AltText    string      `json:"alt_text" gorm:"size:255"`
	Folder     MediaFolder `json:"folder" gorm:"type:varchar(20);default:'products';index"`
	UploadedBy *uuid.UUID  `json:"uploaded_by" gorm:"type:uuid"`
}
