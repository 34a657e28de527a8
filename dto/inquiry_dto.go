package dto

// CreateInquiryRequest represents the payload for creating an inquiry
type CreateInquiryRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// UpdateInquiryStatusRequest changes an inquiry's status
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReplyInquiryRequest carries the agent's response
type ReplyInquiryRequest struct {
	Message string `json:"message" binding:"required"`
}
