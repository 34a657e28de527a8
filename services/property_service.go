package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/nusava/nusava-backend/cache"
	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/logger"
	"github.com/nusava/nusava-backend/models"
	"github.com/nusava/nusava-backend/prometheus"
	"github.com/nusava/nusava-backend/repositories"
	"github.com/nusava/nusava-backend/search"
	"github.com/nusava/nusava-backend/utils"
	"github.com/nusava/nusava-backend/viewtracker"
	"go.uber.org/zap"
)

// ErrSearchUnavailable is returned when full-text search is not configured
var ErrSearchUnavailable = errors.New("search index not configured")

var validPropertyTypes = map[models.PropertyType]bool{
	models.PropertyTypeHouse:      true,
	models.PropertyTypeApartment:  true,
	models.PropertyTypeVilla:      true,
	models.PropertyTypeLand:       true,
	models.PropertyTypeCommercial: true,
}

var validPropertyStatuses = map[models.PropertyStatus]bool{
	models.PropertyStatusDraft:     true,
	models.PropertyStatusPublished: true,
	models.PropertyStatusSold:      true,
	models.PropertyStatusRented:    true,
	models.PropertyStatusPending:   true,
	models.PropertyStatusArchived:  true,
}

// PropertyService handles business logic for property listings
type PropertyService struct {
	propertyRepo *repositories.PropertyRepository
	searchClient *search.Client
	cacheClient  *cache.Client
	tracker      *viewtracker.Tracker
}

// NewPropertyService creates a new property service instance. searchClient,
// cacheClient and tracker may be nil; the matching feature is then disabled.
func NewPropertyService(searchClient *search.Client, cacheClient *cache.Client, tracker *viewtracker.Tracker) *PropertyService {
	return &PropertyService{
		propertyRepo: repositories.NewPropertyRepository(),
		searchClient: searchClient,
		cacheClient:  cacheClient,
		tracker:      tracker,
	}
}

// ListProperties retrieves a filtered, paginated property listing.
// Results are cached briefly when redis is configured; cache trouble is
// logged and the request falls through to the database.
func (s *PropertyService) ListProperties(ctx context.Context, params url.Values) (dto.PropertyListResponse, error) {
	var response dto.PropertyListResponse

	hit, err := s.cacheClient.GetListing(ctx, params, &response)
	if err != nil {
		logger.Get().Warn("listing cache read failed", zap.Error(err))
	}
	if hit {
		return response, nil
	}

	filter := dto.ParsePropertyFilter(params)

	properties, totalCount, err := s.propertyRepo.FindWithFilter(filter)
	if err != nil {
		return response, err
	}

	response = dto.PropertyListResponse{
		Properties: properties,
		Pagination: dto.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      totalCount,
			TotalPages: dto.TotalPagesFor(totalCount, filter.Limit),
		},
	}

	if err := s.cacheClient.SetListing(ctx, params, response); err != nil {
		logger.Get().Warn("listing cache write failed", zap.Error(err))
	}

	return response, nil
}

// GetPropertyByIdentifier retrieves a property by UUID or slug and records
// a view event off the request path.
func (s *PropertyService) GetPropertyByIdentifier(identifier string) (models.Property, error) {
	var property models.Property
	var err error

	if utils.IsUUID(identifier) {
		property, err = s.propertyRepo.FindByID(identifier)
	} else {
		property, err = s.propertyRepo.FindBySlug(identifier)
	}
	if err != nil {
		return models.Property{}, err
	}

	if s.tracker != nil {
		s.tracker.Record(property.ID)
		prometheus.PropertyViewsCounter.Inc()
	}

	return property, nil
}

// CreateProperty creates a listing owned by agentID with the already-saved
// image URLs. The first image becomes primary.
func (s *PropertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest, agentID string, imageURLs []string) (models.Property, error) {
	propertyType := models.PropertyType(req.Type)
	if !validPropertyTypes[propertyType] {
		return models.Property{}, fmt.Errorf("invalid property type: %s", req.Type)
	}

	// New listings start as drafts unless an explicit status is supplied
	status := models.PropertyStatusDraft
	if req.Status != "" {
		status = models.PropertyStatus(req.Status)
		if !validPropertyStatuses[status] {
			return models.Property{}, fmt.Errorf("invalid property status: %s", req.Status)
		}
	}

	nearbyPlaces, err := parseNearbyPlaces(req.NearbyPlaces)
	if err != nil {
		return models.Property{}, err
	}

	slug, err := s.resolveSlug(req.Title, "")
	if err != nil {
		return models.Property{}, err
	}

	property := models.Property{
		Slug:          slug,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Type:          propertyType,
		Status:        status,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Area:          req.Area,
		YearBuilt:     req.YearBuilt,
		Features:      req.Features,
		NearbyPlaces:  nearbyPlaces,
		RoiEstimation: req.RoiEstimation,
		RentalYield:   req.RentalYield,
		AreaGrowth:    req.AreaGrowth,
		IsFeatured:    req.IsFeatured,
		AgentID:       agentID,
	}

	if err := s.propertyRepo.Create(&property, imageURLs); err != nil {
		return models.Property{}, err
	}

	prometheus.RecordPropertyOperation("create")
	s.afterWrite(ctx, property.ID)

	created, err := s.propertyRepo.FindByID(property.ID)
	if err != nil {
		return property, nil
	}
	return created, nil
}

// UpdateProperty applies partial changes to a listing. Any agent or admin may
// update any property; there is no ownership check on mutation. The slug is
// recomputed only when the incoming title differs from the stored one, and
// imageURLs, when non-nil, replaces the full image set.
func (s *PropertyService) UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest, imageURLs []string) (models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		return models.Property{}, err
	}

	err = applyPropertyUpdate(&property, req, func(title string) (string, error) {
		return s.resolveSlug(title, property.ID)
	})
	if err != nil {
		return models.Property{}, err
	}

	// Save without the preloaded associations
	property.Images = nil
	property.Agent = models.User{}

	if err := s.propertyRepo.Update(&property, imageURLs); err != nil {
		return models.Property{}, err
	}

	prometheus.RecordPropertyOperation("update")
	s.afterWrite(ctx, property.ID)

	updated, err := s.propertyRepo.FindByID(property.ID)
	if err != nil {
		return property, nil
	}
	return updated, nil
}

// applyPropertyUpdate folds the supplied fields into the stored property.
// The slug is recomputed only when the incoming title differs from the
// stored one; resolveSlug is not called otherwise, so a no-op title in the
// form never churns the public identifier.
func applyPropertyUpdate(property *models.Property, req dto.UpdatePropertyRequest, resolveSlug func(title string) (string, error)) error {
	if req.Title != nil && *req.Title != property.Title {
		slug, err := resolveSlug(*req.Title)
		if err != nil {
			return err
		}
		property.Title = *req.Title
		property.Slug = slug
	}

	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Type != nil {
		propertyType := models.PropertyType(*req.Type)
		if !validPropertyTypes[propertyType] {
			return fmt.Errorf("invalid property type: %s", *req.Type)
		}
		property.Type = propertyType
	}
	if req.Status != nil {
		status := models.PropertyStatus(*req.Status)
		if !validPropertyStatuses[status] {
			return fmt.Errorf("invalid property status: %s", *req.Status)
		}
		property.Status = status
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.State != nil {
		property.State = *req.State
	}
	if req.ZipCode != nil {
		property.ZipCode = *req.ZipCode
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.Area != nil {
		property.Area = *req.Area
	}
	if req.YearBuilt != nil {
		property.YearBuilt = req.YearBuilt
	}
	if req.Features != nil {
		property.Features = req.Features
	}
	if req.NearbyPlaces != nil {
		nearbyPlaces, err := parseNearbyPlaces(*req.NearbyPlaces)
		if err != nil {
			return err
		}
		property.NearbyPlaces = nearbyPlaces
	}
	if req.RoiEstimation != nil {
		property.RoiEstimation = req.RoiEstimation
	}
	if req.RentalYield != nil {
		property.RentalYield = req.RentalYield
	}
	if req.AreaGrowth != nil {
		property.AreaGrowth = req.AreaGrowth
	}
	if req.IsFeatured != nil {
		property.IsFeatured = *req.IsFeatured
	}

	return nil
}

// DeleteProperty archives a listing. Records are never hard-deleted.
func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.propertyRepo.Archive(id); err != nil {
		return err
	}

	prometheus.RecordPropertyOperation("archive")

	if s.searchClient != nil {
		if err := s.searchClient.DeleteProperty(id); err != nil {
			prometheus.SearchIndexErrorsCounter.Inc()
			logger.Get().Warn("search index delete failed",
				zap.String("propertyId", id), zap.Error(err))
		}
	}

	if err := s.cacheClient.InvalidateListings(ctx); err != nil {
		logger.Get().Warn("listing cache invalidation failed", zap.Error(err))
	}

	return nil
}

// FeaturedProperties retrieves featured publicly visible listings
func (s *PropertyService) FeaturedProperties(limit int) ([]models.Property, error) {
	if limit <= 0 || limit > 50 {
		limit = 6
	}
	return s.propertyRepo.FindFeatured(limit)
}

// SearchProperties runs a full-text query against the search index
func (s *PropertyService) SearchProperties(query string, limit int64) (dto.SearchResponse, error) {
	if s.searchClient == nil {
		return dto.SearchResponse{}, ErrSearchUnavailable
	}

	result, err := s.searchClient.Search(query, limit)
	if err != nil {
		return dto.SearchResponse{}, err
	}

	return dto.SearchResponse{
		Properties:     result.Hits,
		TotalHits:      result.TotalHits,
		ProcessingTime: result.ProcessingTime,
	}, nil
}

// resolveSlug derives a unique slug for the title. A lookup failure during
// the uniqueness probe falls back to treating the slug as taken.
func (s *PropertyService) resolveSlug(title, excludeID string) (string, error) {
	var probeErr error
	slug := utils.ResolveSlug(title, func(candidate string) bool {
		taken, err := s.propertyRepo.SlugTaken(candidate, excludeID)
		if err != nil {
			probeErr = err
			return true
		}
		return taken
	})
	if probeErr != nil {
		return "", probeErr
	}
	return slug, nil
}

// afterWrite refreshes the caches that shadow the properties table
func (s *PropertyService) afterWrite(ctx context.Context, propertyID string) {
	if err := s.cacheClient.InvalidateListings(ctx); err != nil {
		logger.Get().Warn("listing cache invalidation failed", zap.Error(err))
	}

	if s.searchClient == nil {
		return
	}
	property, err := s.propertyRepo.FindByID(propertyID)
	if err != nil {
		return
	}
	if err := s.searchClient.IndexProperty(&property); err != nil {
		prometheus.SearchIndexErrorsCounter.Inc()
		logger.Get().Warn("search index update failed",
			zap.String("propertyId", propertyID), zap.Error(err))
	}
}

func parseNearbyPlaces(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}
	var places map[string]string
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, fmt.Errorf("invalid nearbyPlaces payload: %w", err)
	}
	return places, nil
}
