package models

import "time"

// PropertyImage is an image owned by exactly one property. Updates replace
// the full image set rather than merging into it.
type PropertyImage struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PropertyID string    `json:"propertyId" gorm:"type:uuid;not null;index"`
	URL        string    `json:"url" gorm:"not null"`
	IsPrimary  bool      `json:"isPrimary" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}
