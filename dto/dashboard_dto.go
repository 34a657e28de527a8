package dto

import "github.com/nusava/nusava-backend/models"

// AgentDashboardResponse aggregates an agent's listings activity
type AgentDashboardResponse struct {
	Properties struct {
		Total    int64            `json:"total"`
		ByStatus map[string]int64 `json:"byStatus"`
	} `json:"properties"`

	TotalViews       int64 `json:"totalViews"`
	PendingInquiries int64 `json:"pendingInquiries"`
	PendingBookings  int64 `json:"pendingBookings"`

	RecentInquiries []models.Inquiry `json:"recentInquiries"`
}

// AdminDashboardResponse aggregates platform-wide stats
type AdminDashboardResponse struct {
	Users      int64 `json:"users"`
	Properties int64 `json:"properties"`
	Inquiries  int64 `json:"inquiries"`
	Bookings   int64 `json:"bookings"`

	PropertiesByStatus map[string]int64 `json:"propertiesByStatus"`
	PropertiesByType   map[string]int64 `json:"propertiesByType"`

	Revenue float64 `json:"revenue"`
}
