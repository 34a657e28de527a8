package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/services"
	"gorm.io/gorm"
)

var favoriteService = services.NewFavoriteService()

// AddFavorite saves a property for the caller
func AddFavorite(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	favorite, err := favoriteService.AddFavorite(userID.(string), req.PropertyID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyFavorited):
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Property already favorited"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Property not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save favorite: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"favorite": favorite,
	})
}

// RemoveFavorite deletes the caller's favorite for a property
func RemoveFavorite(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	if err := favoriteService.RemoveFavorite(userID.(string), c.Param("propertyId")); err != nil {
		respondRemoveFavoriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Favorite removed",
	})
}

// respondRemoveFavoriteError maps a missing favorite to 404; anything else
// is a store failure, not a lookup miss, and surfaces as 500.
func respondRemoveFavoriteError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrFavoriteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Favorite not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to remove favorite: " + err.Error(),
	})
}

// MyFavorites lists the caller's saved properties
func MyFavorites(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	favorites, err := favoriteService.MyFavorites(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve favorites: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"favorites": favorites,
	})
}
