package models

import "time"

// Favorite links a user to a saved property. The (user, property) pair is
// unique; a second save of the same property fails at the store level.
type Favorite struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property"`
	PropertyID string    `json:"propertyId" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property"`
	CreatedAt  time.Time `json:"createdAt"`

	// Relations
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
