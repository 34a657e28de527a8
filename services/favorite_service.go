package services

import (
	"errors"

	"github.com/nusava/nusava-backend/models"
	"github.com/nusava/nusava-backend/repositories"
)

// ErrAlreadyFavorited is returned when a user saves the same property twice
var ErrAlreadyFavorited = errors.New("property already favorited")

// ErrFavoriteNotFound is returned when removing a favorite that does not exist
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteService handles business logic for saved properties
type FavoriteService struct {
	favoriteRepo *repositories.FavoriteRepository
	propertyRepo *repositories.PropertyRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService() *FavoriteService {
	return &FavoriteService{
		favoriteRepo: repositories.NewFavoriteRepository(),
		propertyRepo: repositories.NewPropertyRepository(),
	}
}

// AddFavorite saves a property for the user
func (s *FavoriteService) AddFavorite(userID, propertyID string) (models.Favorite, error) {
	if _, err := s.propertyRepo.AgentID(propertyID); err != nil {
		return models.Favorite{}, err
	}

	exists, err := s.favoriteRepo.Exists(userID, propertyID)
	if err != nil {
		return models.Favorite{}, err
	}
	if exists {
		return models.Favorite{}, ErrAlreadyFavorited
	}

	favorite := models.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
	}
	if err := s.favoriteRepo.Create(&favorite); err != nil {
		return models.Favorite{}, err
	}

	return favorite, nil
}

// RemoveFavorite deletes the user's favorite for a property
func (s *FavoriteService) RemoveFavorite(userID, propertyID string) error {
	affected, err := s.favoriteRepo.Delete(userID, propertyID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// MyFavorites retrieves the user's saved properties
func (s *FavoriteService) MyFavorites(userID string) ([]models.Favorite, error) {
	return s.favoriteRepo.FindByUser(userID)
}
