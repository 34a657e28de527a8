package models

import "time"

// TransactionType categorizes a financial record
type TransactionType string

const (
	TransactionTypeSale   TransactionType = "SALE"
	TransactionTypeRental TransactionType = "RENTAL"
)

// TransactionStatus tracks the state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction is a financial record read by the dashboard aggregates.
// Nothing in the API creates transactions; they are seeded or imported.
type Transaction struct {
	ID         string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PropertyID string            `json:"propertyId" gorm:"type:uuid;not null;index"`
	BuyerID    string            `json:"buyerId" gorm:"type:uuid;not null"`
	AgentID    string            `json:"agentId" gorm:"type:uuid;not null;index"`
	Amount     float64           `json:"amount" gorm:"type:decimal(14,2);not null"`
	Type       TransactionType   `json:"type" gorm:"type:varchar(10);not null"`
	Status     TransactionStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
