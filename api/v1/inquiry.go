package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/models"
	"github.com/nusava/nusava-backend/services"
	"gorm.io/gorm"
)

var inquiryService = services.NewInquiryService()

// CreateInquiry handles a buyer's message about a property
func CreateInquiry(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	inquiry, err := inquiryService.CreateInquiry(req, userID.(string))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create inquiry: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"inquiry": inquiry,
	})
}

// MyInquiries lists the caller's own inquiries
func MyInquiries(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	inquiries, err := inquiryService.MyInquiries(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve inquiries: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"inquiries": inquiries,
	})
}

// ReceivedInquiries lists inquiries over the caller's properties
func ReceivedInquiries(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	inquiries, err := inquiryService.ReceivedInquiries(userID.(string), isAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve inquiries: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"inquiries": inquiries,
	})
}

// UpdateInquiryStatus changes an inquiry's status
func UpdateInquiryStatus(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	inquiry, err := inquiryService.UpdateStatus(c.Param("id"), req.Status, userID.(string), isAdmin)
	if err != nil {
		respondInquiryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"inquiry": inquiry,
	})
}

// ReplyInquiry stores the agent's response to an inquiry
func ReplyInquiry(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.ReplyInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	role, _ := c.Get("role")
	isAdmin := role == string(models.RoleAdmin)

	inquiry, err := inquiryService.Reply(c.Param("id"), req.Message, userID.(string), isAdmin)
	if err != nil {
		respondInquiryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"inquiry": inquiry,
	})
}

func respondInquiryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Inquiry not found"})
	case strings.HasPrefix(err.Error(), "unauthorized"):
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update inquiry: " + err.Error(),
		})
	}
}
