package dto

import "time"

// CreateBookingRequest represents the payload for requesting a viewing
type CreateBookingRequest struct {
	PropertyID  string    `json:"propertyId" binding:"required"`
	BookingDate time.Time `json:"bookingDate" binding:"required"`
	Message     string    `json:"message"`
}

// UpdateBookingStatusRequest changes a booking's status
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
