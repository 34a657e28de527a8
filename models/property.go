package models

import (
	"time"
)

// PropertyType categorizes a listing
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeVilla      PropertyType = "VILLA"
	PropertyTypeLand       PropertyType = "LAND"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
)

// PropertyStatus tracks the listing lifecycle. Deletion is always soft:
// a property is archived, never removed from storage.
type PropertyStatus string

const (
	PropertyStatusDraft     PropertyStatus = "DRAFT"
	PropertyStatusPublished PropertyStatus = "PUBLISHED"
	PropertyStatusSold      PropertyStatus = "SOLD"
	PropertyStatusRented    PropertyStatus = "RENTED"
	PropertyStatusPending   PropertyStatus = "PENDING"
	PropertyStatusArchived  PropertyStatus = "ARCHIVED"
)

// Property represents a real-estate listing
type Property struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(14,2);not null"`
	Type        PropertyType   `json:"type" gorm:"type:varchar(20);not null;index"`
	Status      PropertyStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`

	Address string `json:"address" gorm:"not null"`
	City    string `json:"city" gorm:"not null;index"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`

	Bedrooms  int     `json:"bedrooms" gorm:"default:0"`
	Bathrooms int     `json:"bathrooms" gorm:"default:0"`
	Area      float64 `json:"area" gorm:"type:decimal(10,2);default:0"`
	YearBuilt *int    `json:"yearBuilt,omitempty" gorm:"default:null"`

	Features     []string          `json:"features" gorm:"serializer:json;type:jsonb"`
	NearbyPlaces map[string]string `json:"nearbyPlaces" gorm:"serializer:json;type:jsonb"`

	// Investor metrics, all optional percentages
	RoiEstimation *float64 `json:"roiEstimation,omitempty" gorm:"type:decimal(6,2);default:null"`
	RentalYield   *float64 `json:"rentalYield,omitempty" gorm:"type:decimal(6,2);default:null"`
	AreaGrowth    *float64 `json:"areaGrowth,omitempty" gorm:"type:decimal(6,2);default:null"`

	IsFeatured bool  `json:"isFeatured" gorm:"default:false"`
	ViewCount  int64 `json:"viewCount" gorm:"default:0"`

	AgentID   string    `json:"agentId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_properties_created_at,sort:desc"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Agent  User            `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	Images []PropertyImage `json:"images,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName pins the table name
func (Property) TableName() string {
	return "properties"
}

// Archive soft-deletes the property
func (p *Property) Archive() {
	p.Status = PropertyStatusArchived
}

// IsArchived reports whether the property has been soft-deleted
func (p *Property) IsArchived() bool {
	return p.Status == PropertyStatusArchived
}
