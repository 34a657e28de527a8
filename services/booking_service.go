package services

import (
	"fmt"

	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/models"
	"github.com/nusava/nusava-backend/repositories"
)

var validBookingStatuses = map[models.BookingStatus]bool{
	models.BookingStatusPending:   true,
	models.BookingStatusConfirmed: true,
	models.BookingStatusCancelled: true,
	models.BookingStatusCompleted: true,
}

// BookingService handles business logic for viewing appointments
type BookingService struct {
	bookingRepo  *repositories.BookingRepository
	propertyRepo *repositories.PropertyRepository
}

// NewBookingService creates a new booking service instance
func NewBookingService() *BookingService {
	return &BookingService{
		bookingRepo:  repositories.NewBookingRepository(),
		propertyRepo: repositories.NewPropertyRepository(),
	}
}

// CreateBooking records a buyer's viewing request
func (s *BookingService) CreateBooking(req dto.CreateBookingRequest, userID string) (models.Booking, error) {
	if _, err := s.propertyRepo.AgentID(req.PropertyID); err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		PropertyID:  req.PropertyID,
		UserID:      userID,
		BookingDate: req.BookingDate,
		Message:     req.Message,
		Status:      models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(&booking); err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

// MyBookings retrieves the bookings the user has requested
func (s *BookingService) MyBookings(userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUser(userID)
}

// ReceivedBookings retrieves bookings over the agent's properties.
// Admins see all bookings.
func (s *BookingService) ReceivedBookings(userID string, isAdmin bool) ([]models.Booking, error) {
	if isAdmin {
		return s.bookingRepo.FindByAgent("")
	}
	return s.bookingRepo.FindByAgent(userID)
}

// UpdateStatus changes a booking's status. Only the property's agent or an
// admin may do so.
func (s *BookingService) UpdateStatus(bookingID, status, userID string, isAdmin bool) (models.Booking, error) {
	newStatus := models.BookingStatus(status)
	if !validBookingStatuses[newStatus] {
		return models.Booking{}, fmt.Errorf("invalid booking status: %s", status)
	}

	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	if !isAdmin && booking.Property.AgentID != userID {
		return models.Booking{}, fmt.Errorf("unauthorized: only the property's agent or an admin may manage this booking")
	}

	booking.Property = models.Property{}
	booking.User = models.User{}

	booking.Status = newStatus
	if err := s.bookingRepo.Update(&booking); err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}
