package models

import "time"

// InquiryStatus tracks the state of a buyer inquiry
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "PENDING"
	InquiryStatusResponded InquiryStatus = "RESPONDED"
	InquiryStatusClosed    InquiryStatus = "CLOSED"
)

// Inquiry is a buyer-initiated message about a property, optionally
// answered by the listing's agent or an admin.
type Inquiry struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PropertyID    string        `json:"propertyId" gorm:"type:uuid;not null;index"`
	UserID        string        `json:"userId" gorm:"type:uuid;not null;index"`
	Message       string        `json:"message" gorm:"type:text;not null"`
	Status        InquiryStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	AgentResponse string        `json:"agentResponse" gorm:"type:text;default:null"`
	RespondedAt   *time.Time    `json:"respondedAt,omitempty" gorm:"default:null"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	// Relations
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
