package repositories

import (
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/models"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties
type PropertyRepository struct{}

// NewPropertyRepository creates a new property repository instance
func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

// FindWithFilter retrieves properties matching the parsed listing filter,
// newest-created first, plus the total count before pagination.
func (r *PropertyRepository) FindWithFilter(filter dto.PropertyFilter) ([]models.Property, int64, error) {
	var properties []models.Property
	var totalCount int64

	db := database.DB.Model(&models.Property{}).Scopes(filter.Status.Scope())

	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}

	if filter.City != "" {
		db = db.Where("city ILIKE ?", "%"+filter.City+"%")
	}

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ? OR address ILIKE ?)",
			searchPattern, searchPattern, searchPattern)
	}

	if filter.MinPrice != nil {
		db = db.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("price <= ?", *filter.MaxPrice)
	}

	// bedrooms/bathrooms are minimum thresholds, not exact matches
	if filter.Bedrooms != nil {
		db = db.Where("bedrooms >= ?", *filter.Bedrooms)
	}
	if filter.Bathrooms != nil {
		db = db.Where("bathrooms >= ?", *filter.Bathrooms)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.Preload("Images").Preload("Agent").
		Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, totalCount, nil
}

// FindByID retrieves a property by its ID with images and agent
func (r *PropertyRepository) FindByID(id string) (models.Property, error) {
	var property models.Property
	result := database.DB.Preload("Images").Preload("Agent").First(&property, "id = ?", id)
	return property, result.Error
}

// FindBySlug retrieves a property by its slug with images and agent
func (r *PropertyRepository) FindBySlug(slug string) (models.Property, error) {
	var property models.Property
	result := database.DB.Preload("Images").Preload("Agent").First(&property, "slug = ?", slug)
	return property, result.Error
}

// FindFeatured retrieves featured, publicly visible properties
func (r *PropertyRepository) FindFeatured(limit int) ([]models.Property, error) {
	var properties []models.Property
	err := database.DB.Scopes(dto.StatusFilter{}.Scope()).
		Where("is_featured = ?", true).
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).
		Find(&properties).Error
	return properties, err
}

// FindVisible retrieves all properties shown by the default listing,
// used for search index rebuilds.
func (r *PropertyRepository) FindVisible() ([]models.Property, error) {
	var properties []models.Property
	err := database.DB.Scopes(dto.StatusFilter{}.Scope()).Find(&properties).Error
	return properties, err
}

// SlugTaken checks whether a slug is already used by another property.
// excludeID skips the record being updated and may be empty on create.
func (r *PropertyRepository) SlugTaken(slug string, excludeID string) (bool, error) {
	var count int64
	db := database.DB.Model(&models.Property{}).Where("slug = ?", slug)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// Create inserts a property and its images in one transaction
func (r *PropertyRepository) Create(property *models.Property, imageURLs []string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(property).Error; err != nil {
			return err
		}
		return createImages(tx, property.ID, imageURLs)
	})
}

// Update saves property changes; when imageURLs is non-nil the full image
// set is replaced inside the same transaction. view_count is omitted from
// the save: the view tracker owns all view-count writes, and writing the
// fetched value back would discard increments flushed since the Find.
func (r *PropertyRepository) Update(property *models.Property, imageURLs []string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("view_count").Save(property).Error; err != nil {
			return err
		}
		if imageURLs == nil {
			return nil
		}
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		return createImages(tx, property.ID, imageURLs)
	})
}

// imageRows builds the image records for a listing; the first upload is primary
func imageRows(propertyID string, urls []string) []models.PropertyImage {
	rows := make([]models.PropertyImage, 0, len(urls))
	for i, url := range urls {
		rows = append(rows, models.PropertyImage{
			PropertyID: propertyID,
			URL:        url,
			IsPrimary:  i == 0,
		})
	}
	return rows
}

func createImages(tx *gorm.DB, propertyID string, urls []string) error {
	rows := imageRows(propertyID, urls)
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// Archive soft-deletes a property by setting its status to ARCHIVED
func (r *PropertyRepository) Archive(id string) error {
	result := database.DB.Model(&models.Property{}).
		Where("id = ?", id).
		Update("status", models.PropertyStatusArchived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews adds the batched view counts to their properties
func (r *PropertyRepository) IncrementViews(counts map[string]int64) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for id, n := range counts {
			err := tx.Model(&models.Property{}).
				Where("id = ?", id).
				UpdateColumn("view_count", gorm.Expr("view_count + ?", n)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// AgentID returns the owning agent of a property
func (r *PropertyRepository) AgentID(id string) (string, error) {
	var property models.Property
	err := database.DB.Select("agent_id").First(&property, "id = ?", id).Error
	return property.AgentID, err
}

// CountByAgent counts an agent's properties grouped by status
func (r *PropertyRepository) CountByAgent(agentID string) (map[string]int64, int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := database.DB.Model(&models.Property{}).
		Select("status, count(*) as count").
		Where("agent_id = ?", agentID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	byStatus := make(map[string]int64)
	var total int64
	for _, r := range rows {
		byStatus[r.Status] = r.Count
		total += r.Count
	}
	return byStatus, total, nil
}

// CountByStatus counts all properties grouped by status
func (r *PropertyRepository) CountByStatus() (map[string]int64, error) {
	return r.countGrouped("status")
}

// CountByType counts all properties grouped by type
func (r *PropertyRepository) CountByType() (map[string]int64, error) {
	return r.countGrouped("type")
}

func (r *PropertyRepository) countGrouped(column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := database.DB.Model(&models.Property{}).
		Select(column + " as key, count(*) as count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}

// SumViewsByAgent totals the view counts over an agent's properties
func (r *PropertyRepository) SumViewsByAgent(agentID string) (int64, error) {
	var total int64
	err := database.DB.Model(&models.Property{}).
		Where("agent_id = ?", agentID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

// Count returns the total number of properties
func (r *PropertyRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Property{}).Count(&count).Error
	return count, err
}
