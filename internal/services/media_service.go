// internal/services/media_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

// MediaService owns the media library rows; the storage service owns the
// bytes.
type MediaService struct {
	db             *gorm.DB
	storageService *StorageService
}

func NewMediaService(db *gorm.DB, storageService *StorageService) *MediaService {
	return &MediaService{
		db:             db,
		storageService: storageService,
	}
}

func (s *MediaService) Upload(file multipart.File, header *multipart.FileHeader, folder models.MediaFolder, altText string, uploadedBy *uuid.UUID) (*models.Media, error) {
	if err := s.storageService.ValidateImage(file); err != nil {
		return nil, err
	}

	options := s.storageService.GetDefaultUploadOptions(string(folder))
	result, err := s.storageService.UploadFile(file, header, options)
	if err != nil {
		return nil, err
	}

	media := &models.Media{
		URL:        result.URL,
		StorageKey: result.Key,
		FileName:   header.Filename,
		MimeType:   result.MimeType,
		Size:       result.Size,
		AltText:    altText,
		Folder:     folder,
		UploadedBy: uploadedBy,
	}

	if err := s.db.Create(media).Error; err != nil {
		// Orphaned object cleanup, best effort
		if delErr := s.storageService.DeleteFile(result.Key); delErr != nil {
			logrus.WithError(delErr).Warn("Failed to clean up orphaned upload")
		}
		return nil, fmt.Errorf("failed to record media: %w", err)
	}

	return media, nil
}

func (s *MediaService) Delete(id uuid.UUID) error {
	var media models.Media
	if err := s.db.First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("media not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.storageService.DeleteFile(media.StorageKey); err != nil {
		logrus.WithError(err).Warn("Failed to delete stored object; removing record anyway")
	}

	if err := s.db.Delete(&media).Error; err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}

	return nil
}

func (s *MediaService) ListMedia(params utils.PaginationParams, folder string) ([]models.Media, int64, error) {
	query := s.db.Model(&models.Media{})

	if folder != "" {
		query = query.Where("folder = ?", folder)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count media: %w", err)
	}

	allowedSortFields := []string{"created_at", "file_name", "size"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var media []models.Media
	if err := query.Find(&media).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch media: %w", err)
	}

	return media, total, nil
}
