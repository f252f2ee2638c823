// internal/services/favorite_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// AddFavorite is idempotent: the composite unique index plus ON CONFLICT DO
// NOTHING makes a repeated add a no-op instead of a duplicate or an error.
func (s *FavoriteService) AddFavorite(visitorID, productID uuid.UUID) (*models.Favorite, error) {
	var product models.Product
	if err := s.db.Where("id = ? AND is_active = ?", productID, true).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	favorite := &models.Favorite{
		VisitorID: visitorID,
		ProductID: productID,
	}

	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	// Load the canonical row (covers the conflict-skipped case)
	if err := s.db.Where("visitor_id = ? AND product_id = ?", visitorID, productID).
		Preload("Product").First(favorite).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return favorite, nil
}

func (s *FavoriteService) RemoveFavorite(visitorID, productID uuid.UUID) error {
	result := s.db.Where("visitor_id = ? AND product_id = ?", visitorID, productID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("favorite not found")
	}

	return nil
}

func (s *FavoriteService) ListFavorites(visitorID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.db.Where("visitor_id = ?", visitorID).
		Preload("Product").Preload("Product.Category").
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	return favorites, nil
}
