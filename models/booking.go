package models

import "time"

// BookingStatus tracks the state of a viewing appointment
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// Booking is a buyer-requested viewing appointment for a property
type Booking struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PropertyID  string        `json:"propertyId" gorm:"type:uuid;not null;index"`
	UserID      string        `json:"userId" gorm:"type:uuid;not null;index"`
	BookingDate time.Time     `json:"bookingDate" gorm:"not null"`
	Message     string        `json:"message" gorm:"type:text;default:null"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Relations
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
