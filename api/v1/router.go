package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/nusava/nusava-backend/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Public property endpoints
	propertyGroup := router.Group("/properties")
	{
		propertyGroup.GET("", ListProperties)
		propertyGroup.GET("/search", SearchProperties)
		propertyGroup.GET("/featured", FeaturedProperties)
		propertyGroup.GET("/:identifier", GetProperty)
	}

	// Property mutation - any agent or admin may manage any property
	propertyAdminGroup := router.Group("/properties")
	propertyAdminGroup.Use(middleware.AuthMiddleware(), middleware.AgentMiddleware())
	{
		propertyAdminGroup.POST("", CreateProperty)
		propertyAdminGroup.PUT("/:id", UpdateProperty)
		propertyAdminGroup.DELETE("/:id", DeleteProperty)
	}

	// Inquiry endpoints - protected by AuthMiddleware
	inquiryGroup := router.Group("/inquiries")
	inquiryGroup.Use(middleware.AuthMiddleware())
	{
		inquiryGroup.POST("", CreateInquiry)
		inquiryGroup.GET("/my", MyInquiries)
		inquiryGroup.GET("/received", middleware.AgentMiddleware(), ReceivedInquiries)
		inquiryGroup.PATCH("/:id/status", middleware.AgentMiddleware(), UpdateInquiryStatus)
		inquiryGroup.POST("/:id/reply", middleware.AgentMiddleware(), ReplyInquiry)
	}

	// Booking endpoints - protected by AuthMiddleware
	bookingGroup := router.Group("/bookings")
	bookingGroup.Use(middleware.AuthMiddleware())
	{
		bookingGroup.POST("", CreateBooking)
		bookingGroup.GET("/my", MyBookings)
		bookingGroup.GET("/received", middleware.AgentMiddleware(), ReceivedBookings)
		bookingGroup.PATCH("/:id/status", middleware.AgentMiddleware(), UpdateBookingStatus)
	}

	// Favorite endpoints - protected by AuthMiddleware
	favoriteGroup := router.Group("/favorites")
	favoriteGroup.Use(middleware.AuthMiddleware())
	{
		favoriteGroup.POST("", AddFavorite)
		favoriteGroup.GET("/my", MyFavorites)
		favoriteGroup.DELETE("/:propertyId", RemoveFavorite)
	}

	// Dashboard endpoints - role-gated
	dashboardGroup := router.Group("/dashboard")
	dashboardGroup.Use(middleware.AuthMiddleware())
	{
		dashboardGroup.GET("/agent", middleware.AgentMiddleware(), AgentDashboard)
		dashboardGroup.GET("/admin", middleware.AdminMiddleware(), AdminDashboard)
	}
}
