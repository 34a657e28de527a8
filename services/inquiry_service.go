package services

import (
	"fmt"
	"time"

	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/models"
	"github.com/nusava/nusava-backend/repositories"
)

var validInquiryStatuses = map[models.InquiryStatus]bool{
	models.InquiryStatusPending:   true,
	models.InquiryStatusResponded: true,
	models.InquiryStatusClosed:    true,
}

// InquiryService handles business logic for property inquiries
type InquiryService struct {
	inquiryRepo  *repositories.InquiryRepository
	propertyRepo *repositories.PropertyRepository
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService() *InquiryService {
	return &InquiryService{
		inquiryRepo:  repositories.NewInquiryRepository(),
		propertyRepo: repositories.NewPropertyRepository(),
	}
}

// CreateInquiry records a buyer's message about a property
func (s *InquiryService) CreateInquiry(req dto.CreateInquiryRequest, userID string) (models.Inquiry, error) {
	// The property must exist; archived listings still accept inquiries
	if _, err := s.propertyRepo.AgentID(req.PropertyID); err != nil {
		return models.Inquiry{}, err
	}

	inquiry := models.Inquiry{
		PropertyID: req.PropertyID,
		UserID:     userID,
		Message:    req.Message,
		Status:     models.InquiryStatusPending,
	}

	if err := s.inquiryRepo.Create(&inquiry); err != nil {
		return models.Inquiry{}, err
	}

	return inquiry, nil
}

// MyInquiries retrieves the inquiries the user has sent
func (s *InquiryService) MyInquiries(userID string) ([]models.Inquiry, error) {
	return s.inquiryRepo.FindByUser(userID)
}

// ReceivedInquiries retrieves inquiries over the agent's properties.
// Admins see all inquiries.
func (s *InquiryService) ReceivedInquiries(userID string, isAdmin bool) ([]models.Inquiry, error) {
	if isAdmin {
		return s.inquiryRepo.FindByAgent("")
	}
	return s.inquiryRepo.FindByAgent(userID)
}

// UpdateStatus changes an inquiry's status. Only the property's agent or an
// admin may do so.
func (s *InquiryService) UpdateStatus(inquiryID, status, userID string, isAdmin bool) (models.Inquiry, error) {
	newStatus := models.InquiryStatus(status)
	if !validInquiryStatuses[newStatus] {
		return models.Inquiry{}, fmt.Errorf("invalid inquiry status: %s", status)
	}

	inquiry, err := s.authorizedInquiry(inquiryID, userID, isAdmin)
	if err != nil {
		return models.Inquiry{}, err
	}

	inquiry.Status = newStatus
	if err := s.inquiryRepo.Update(&inquiry); err != nil {
		return models.Inquiry{}, err
	}

	return inquiry, nil
}

// Reply stores the agent's response and marks the inquiry responded
func (s *InquiryService) Reply(inquiryID, message, userID string, isAdmin bool) (models.Inquiry, error) {
	inquiry, err := s.authorizedInquiry(inquiryID, userID, isAdmin)
	if err != nil {
		return models.Inquiry{}, err
	}

	now := time.Now()
	inquiry.AgentResponse = message
	inquiry.RespondedAt = &now
	inquiry.Status = models.InquiryStatusResponded

	if err := s.inquiryRepo.Update(&inquiry); err != nil {
		return models.Inquiry{}, err
	}

	return inquiry, nil
}

func (s *InquiryService) authorizedInquiry(inquiryID, userID string, isAdmin bool) (models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(inquiryID)
	if err != nil {
		return models.Inquiry{}, err
	}

	if !isAdmin && inquiry.Property.AgentID != userID {
		return models.Inquiry{}, fmt.Errorf("unauthorized: only the property's agent or an admin may manage this inquiry")
	}

	// Mutating through the repo must not drag the preloaded relations along
	inquiry.Property = models.Property{}
	inquiry.User = models.User{}

	return inquiry, nil
}
