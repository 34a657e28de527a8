package repositories

import (
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// Update saves user changes
func (r *UserRepository) Update(user *models.User) error {
	return database.DB.Save(user).Error
}

// Count returns the total number of users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Count(&count).Error
	return count, err
}
