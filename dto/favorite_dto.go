package dto

// CreateFavoriteRequest represents the payload for saving a property
type CreateFavoriteRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
}
