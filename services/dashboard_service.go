package services

import (
	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/repositories"
)

// DashboardService aggregates stats for the role-gated dashboards
type DashboardService struct {
	propertyRepo    *repositories.PropertyRepository
	userRepo        *repositories.UserRepository
	inquiryRepo     *repositories.InquiryRepository
	bookingRepo     *repositories.BookingRepository
	transactionRepo *repositories.TransactionRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		propertyRepo:    repositories.NewPropertyRepository(),
		userRepo:        repositories.NewUserRepository(),
		inquiryRepo:     repositories.NewInquiryRepository(),
		bookingRepo:     repositories.NewBookingRepository(),
		transactionRepo: repositories.NewTransactionRepository(),
	}
}

// AgentDashboard aggregates the agent's own listing activity
func (s *DashboardService) AgentDashboard(agentID string) (dto.AgentDashboardResponse, error) {
	var response dto.AgentDashboardResponse

	byStatus, total, err := s.propertyRepo.CountByAgent(agentID)
	if err != nil {
		return response, err
	}
	response.Properties.Total = total
	response.Properties.ByStatus = byStatus

	if response.TotalViews, err = s.propertyRepo.SumViewsByAgent(agentID); err != nil {
		return response, err
	}
	if response.PendingInquiries, err = s.inquiryRepo.CountPendingByAgent(agentID); err != nil {
		return response, err
	}
	if response.PendingBookings, err = s.bookingRepo.CountPendingByAgent(agentID); err != nil {
		return response, err
	}
	if response.RecentInquiries, err = s.inquiryRepo.RecentByAgent(agentID, 5); err != nil {
		return response, err
	}

	return response, nil
}

// AdminDashboard aggregates platform-wide stats
func (s *DashboardService) AdminDashboard() (dto.AdminDashboardResponse, error) {
	var response dto.AdminDashboardResponse
	var err error

	if response.Users, err = s.userRepo.Count(); err != nil {
		return response, err
	}
	if response.Properties, err = s.propertyRepo.Count(); err != nil {
		return response, err
	}
	if response.Inquiries, err = s.inquiryRepo.Count(); err != nil {
		return response, err
	}
	if response.Bookings, err = s.bookingRepo.Count(); err != nil {
		return response, err
	}
	if response.PropertiesByStatus, err = s.propertyRepo.CountByStatus(); err != nil {
		return response, err
	}
	if response.PropertiesByType, err = s.propertyRepo.CountByType(); err != nil {
		return response, err
	}
	if response.Revenue, err = s.transactionRepo.SumCompleted(); err != nil {
		return response, err
	}

	return response, nil
}
