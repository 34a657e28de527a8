package dto

import (
	"net/url"
	"strconv"

	"github.com/nusava/nusava-backend/models"
)

// TypeAllSentinel mirrors the status sentinel for the type parameter.
const TypeAllSentinel = "All"

// PropertyFilter represents the parsed listing query parameters.
// Numeric fields are pointers: nil disables that filter, which is also
// where malformed numeric input lands (it never produces an error).
type PropertyFilter struct {
	Type      string
	Status    StatusFilter
	City      string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *int
	Page      int
	Limit     int
}

// ParsePropertyFilter builds a PropertyFilter from raw query parameters.
// page defaults to 1 and limit to 10.
func ParsePropertyFilter(values url.Values) PropertyFilter {
	filter := PropertyFilter{
		Type:      values.Get("type"),
		Status:    ParseStatusFilter(values.Get("status")),
		City:      values.Get("city"),
		Search:    values.Get("search"),
		MinPrice:  parseFloat(values.Get("minPrice")),
		MaxPrice:  parseFloat(values.Get("maxPrice")),
		Bedrooms:  parseInt(values.Get("bedrooms")),
		Bathrooms: parseInt(values.Get("bathrooms")),
		Page:      1,
		Limit:     10,
	}

	if filter.Type == TypeAllSentinel {
		filter.Type = ""
	}

	if page := parseInt(values.Get("page")); page != nil && *page >= 1 {
		filter.Page = *page
	}
	if limit := parseInt(values.Get("limit")); limit != nil && *limit >= 1 {
		filter.Limit = *limit
	}

	return filter
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// Pagination describes the window of a listing response
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TotalPagesFor computes ceil(total/limit)
func TotalPagesFor(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}

// PropertyListResponse is the listing response envelope
type PropertyListResponse struct {
	Properties []models.Property `json:"properties"`
	Pagination Pagination        `json:"pagination"`
}

// CreatePropertyRequest carries the multipart form fields of a create call.
// Image files arrive separately in the multipart body.
type CreatePropertyRequest struct {
	Title         string   `form:"title" binding:"required"`
	Description   string   `form:"description"`
	Price         float64  `form:"price" binding:"required"`
	Type          string   `form:"type" binding:"required"`
	Status        string   `form:"status"`
	Address       string   `form:"address" binding:"required"`
	City          string   `form:"city" binding:"required"`
	State         string   `form:"state"`
	ZipCode       string   `form:"zipCode"`
	Bedrooms      int      `form:"bedrooms"`
	Bathrooms     int      `form:"bathrooms"`
	Area          float64  `form:"area"`
	YearBuilt     *int     `form:"yearBuilt"`
	Features      []string `form:"features"`
	NearbyPlaces  string   `form:"nearbyPlaces"` // JSON object of name -> distance
	RoiEstimation *float64 `form:"roiEstimation"`
	RentalYield   *float64 `form:"rentalYield"`
	AreaGrowth    *float64 `form:"areaGrowth"`
	IsFeatured    bool     `form:"isFeatured"`
}

// UpdatePropertyRequest carries the multipart form fields of an update call.
// Pointer fields distinguish "absent" from zero values; supplying new image
// files replaces the full existing image set.
type UpdatePropertyRequest struct {
	Title         *string  `form:"title"`
	Description   *string  `form:"description"`
	Price         *float64 `form:"price"`
	Type          *string  `form:"type"`
	Status        *string  `form:"status"`
	Address       *string  `form:"address"`
	City          *string  `form:"city"`
	State         *string  `form:"state"`
	ZipCode       *string  `form:"zipCode"`
	Bedrooms      *int     `form:"bedrooms"`
	Bathrooms     *int     `form:"bathrooms"`
	Area          *float64 `form:"area"`
	YearBuilt     *int     `form:"yearBuilt"`
	Features      []string `form:"features"`
	NearbyPlaces  *string  `form:"nearbyPlaces"`
	RoiEstimation *float64 `form:"roiEstimation"`
	RentalYield   *float64 `form:"rentalYield"`
	AreaGrowth    *float64 `form:"areaGrowth"`
	IsFeatured    *bool    `form:"isFeatured"`
}

// SearchResponse is the full-text search response envelope
type SearchResponse struct {
	Properties     []models.Property `json:"properties"`
	TotalHits      int64             `json:"totalHits"`
	ProcessingTime int64             `json:"processingTimeMs"`
}
