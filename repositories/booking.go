package repositories

import (
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/models"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct{}

// NewBookingRepository creates a new booking repository instance
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	return database.DB.Create(booking).Error
}

// FindByID retrieves a booking with its property
func (r *BookingRepository) FindByID(id string) (models.Booking, error) {
	var booking models.Booking
	result := database.DB.Preload("Property").Preload("User").First(&booking, "id = ?", id)
	return booking, result.Error
}

// FindByUser retrieves a user's own bookings, newest first
func (r *BookingRepository) FindByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := database.DB.Preload("Property").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// FindByAgent retrieves bookings over the agent's properties, newest first.
// An empty agentID returns all bookings (admin view).
func (r *BookingRepository) FindByAgent(agentID string) ([]models.Booking, error) {
	var bookings []models.Booking
	db := database.DB.Preload("Property").Preload("User")
	if agentID != "" {
		db = db.Joins("JOIN properties ON properties.id = bookings.property_id").
			Where("properties.agent_id = ?", agentID)
	}
	err := db.Order("bookings.created_at DESC").Find(&bookings).Error
	return bookings, err
}

// Update saves booking changes
func (r *BookingRepository) Update(booking *models.Booking) error {
	return database.DB.Save(booking).Error
}

// CountPendingByAgent counts pending bookings over an agent's properties
func (r *BookingRepository) CountPendingByAgent(agentID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Booking{}).
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.agent_id = ? AND bookings.status = ?", agentID, models.BookingStatusPending).
		Count(&count).Error
	return count, err
}

// Count returns the total number of bookings
func (r *BookingRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Booking{}).Count(&count).Error
	return count, err
}
