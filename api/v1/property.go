package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nusava/nusava-backend/config"
	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/services"
	"github.com/nusava/nusava-backend/utils"
	"gorm.io/gorm"
)

var propertyService *services.PropertyService

// SetPropertyService wires the property service built in main
func SetPropertyService(s *services.PropertyService) {
	propertyService = s
}

// ListProperties godoc
// @Summary List properties with filtering and pagination
// @Description Filter by type, status, city, price range, bedrooms, bathrooms and search term
// @Tags properties
// @Produce json
// @Param type query string false "Property type"
// @Param status query string false "Status, or the sentinel All"
// @Param city query string false "City substring"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query int false "Minimum bathrooms"
// @Param search query string false "Search term over title/description/address"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PropertyListResponse
// @Router /properties [get]
func ListProperties(c *gin.Context) {
	response, err := propertyService.ListProperties(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve properties: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SearchProperties godoc
// @Summary Full-text property search
// @Tags properties
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results"
// @Success 200 {object} dto.SearchResponse
// @Router /properties/search [get]
func SearchProperties(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	response, err := propertyService.SearchProperties(c.Query("q"), limit)
	if err != nil {
		if errors.Is(err, services.ErrSearchUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "error",
				"message": "Search is not available",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Search failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// FeaturedProperties godoc
// @Summary List featured properties
// @Tags properties
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {object} map[string]interface{}
// @Router /properties/featured [get]
func FeaturedProperties(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	properties, err := propertyService.FeaturedProperties(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve featured properties: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"properties": properties,
	})
}

// GetProperty godoc
// @Summary Get a property by UUID or slug
// @Tags properties
// @Produce json
// @Param identifier path string true "Property UUID or slug"
// @Success 200 {object} models.Property
// @Router /properties/{identifier} [get]
func GetProperty(c *gin.Context) {
	identifier := c.Param("identifier")

	property, err := propertyService.GetPropertyByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Property not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve property: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"property": property,
	})
}

// CreateProperty godoc
// @Summary Create a property listing
// @Description Multipart form with listing fields plus up to 10 image files
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.Property
// @Router /properties [post]
func CreateProperty(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	imageURLs, ok := saveImages(c)
	if !ok {
		return
	}

	property, err := propertyService.CreateProperty(c.Request.Context(), req, userID.(string), imageURLs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create property: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"property": property,
	})
}

// UpdateProperty godoc
// @Summary Update a property listing
// @Description Multipart form; supplying new images replaces the whole image set
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.Property
// @Router /properties/{id} [put]
func UpdateProperty(c *gin.Context) {
	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Property ID is required"})
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	imageURLs, ok := saveImages(c)
	if !ok {
		return
	}

	property, err := propertyService.UpdateProperty(c.Request.Context(), propertyID, req, imageURLs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Property not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update property: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"property": property,
	})
}

// DeleteProperty godoc
// @Summary Archive a property listing
// @Description Soft delete: the property's status becomes ARCHIVED
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Router /properties/{id} [delete]
func DeleteProperty(c *gin.Context) {
	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Property ID is required"})
		return
	}

	err := propertyService.DeleteProperty(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Property not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete property: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property archived successfully",
	})
}

// saveImages persists uploaded image files and returns their URLs. A nil
// slice means no images field was supplied, which update treats as
// "keep the existing images".
func saveImages(c *gin.Context) ([]string, bool) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, true
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, true
	}

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	urls, err := utils.SaveUploadedImages(c, files, uploadDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to store images: " + err.Error(),
		})
		return nil, false
	}

	return urls, true
}
