package repositories

import (
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/models"
)

// FavoriteRepository handles database operations for favorites
type FavoriteRepository struct{}

// NewFavoriteRepository creates a new favorite repository instance
func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

// Create inserts a new favorite; the unique (user, property) index rejects duplicates
func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	return database.DB.Create(favorite).Error
}

// Delete removes a user's favorite for a property
func (r *FavoriteRepository) Delete(userID, propertyID string) (int64, error) {
	result := database.DB.
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}

// FindByUser retrieves a user's favorites with their properties, newest first
func (r *FavoriteRepository) FindByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := database.DB.Preload("Property").Preload("Property.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

// Exists checks whether a user already saved a property
func (r *FavoriteRepository) Exists(userID, propertyID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	return count > 0, err
}
