package repositories

import (
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/models"
)

// InquiryRepository handles database operations for inquiries
type InquiryRepository struct{}

// NewInquiryRepository creates a new inquiry repository instance
func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{}
}

// Create inserts a new inquiry
func (r *InquiryRepository) Create(inquiry *models.Inquiry) error {
	return database.DB.Create(inquiry).Error
}

// FindByID retrieves an inquiry with its property
func (r *InquiryRepository) FindByID(id string) (models.Inquiry, error) {
	var inquiry models.Inquiry
	result := database.DB.Preload("Property").Preload("User").First(&inquiry, "id = ?", id)
	return inquiry, result.Error
}

// FindByUser retrieves a user's own inquiries, newest first
func (r *InquiryRepository) FindByUser(userID string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := database.DB.Preload("Property").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

// FindByAgent retrieves inquiries over the agent's properties, newest first.
// An empty agentID returns all inquiries (admin view).
func (r *InquiryRepository) FindByAgent(agentID string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	db := database.DB.Preload("Property").Preload("User")
	if agentID != "" {
		db = db.Joins("JOIN properties ON properties.id = inquiries.property_id").
			Where("properties.agent_id = ?", agentID)
	}
	err := db.Order("inquiries.created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

// Update saves inquiry changes
func (r *InquiryRepository) Update(inquiry *models.Inquiry) error {
	return database.DB.Save(inquiry).Error
}

// CountPendingByAgent counts pending inquiries over an agent's properties
func (r *InquiryRepository) CountPendingByAgent(agentID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Inquiry{}).
		Joins("JOIN properties ON properties.id = inquiries.property_id").
		Where("properties.agent_id = ? AND inquiries.status = ?", agentID, models.InquiryStatusPending).
		Count(&count).Error
	return count, err
}

// RecentByAgent retrieves the agent's most recent inquiries
func (r *InquiryRepository) RecentByAgent(agentID string, limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := database.DB.Preload("Property").Preload("User").
		Joins("JOIN properties ON properties.id = inquiries.property_id").
		Where("properties.agent_id = ?", agentID).
		Order("inquiries.created_at DESC").
		Limit(limit).
		Find(&inquiries).Error
	return inquiries, err
}

// Count returns the total number of inquiries
func (r *InquiryRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Inquiry{}).Count(&count).Error
	return count, err
}
