package services

import (
	"errors"
	"testing"

	"github.com/nusava/nusava-backend/dto"
	"github.com/nusava/nusava-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func storedProperty() models.Property {
	return models.Property{
		ID:     "prop-1",
		Slug:   "modern-villa",
		Title:  "Modern Villa",
		Price:  250000,
		Type:   models.PropertyTypeVilla,
		Status: models.PropertyStatusPublished,
		City:   "Ubud",
	}
}

func TestApplyPropertyUpdateRecomputesSlugWhenTitleDiffers(t *testing.T) {
	property := storedProperty()

	var resolvedTitles []string
	err := applyPropertyUpdate(&property, dto.UpdatePropertyRequest{
		Title: strPtr("Beachfront Villa"),
	}, func(title string) (string, error) {
		resolvedTitles = append(resolvedTitles, title)
		return "beachfront-villa", nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Beachfront Villa"}, resolvedTitles)
	assert.Equal(t, "Beachfront Villa", property.Title)
	assert.Equal(t, "beachfront-villa", property.Slug)
}

func TestApplyPropertyUpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	property := storedProperty()

	err := applyPropertyUpdate(&property, dto.UpdatePropertyRequest{
		Title: strPtr("Modern Villa"),
		Price: floatPtr(300000),
	}, func(title string) (string, error) {
		t.Fatalf("slug resolver called for unchanged title %q", title)
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "modern-villa", property.Slug)
	assert.Equal(t, 300000.0, property.Price)
}

func TestApplyPropertyUpdateKeepsSlugWhenTitleAbsent(t *testing.T) {
	property := storedProperty()

	err := applyPropertyUpdate(&property, dto.UpdatePropertyRequest{
		Description: strPtr("Freshly renovated"),
	}, func(title string) (string, error) {
		t.Fatalf("slug resolver called without an incoming title")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "modern-villa", property.Slug)
	assert.Equal(t, "Modern Villa", property.Title)
	assert.Equal(t, "Freshly renovated", property.Description)
}

func TestApplyPropertyUpdateSurfacesResolverError(t *testing.T) {
	property := storedProperty()
	resolverErr := errors.New("slug probe failed")

	err := applyPropertyUpdate(&property, dto.UpdatePropertyRequest{
		Title: strPtr("Beachfront Villa"),
	}, func(string) (string, error) {
		return "", resolverErr
	})

	assert.ErrorIs(t, err, resolverErr)
	assert.Equal(t, "Modern Villa", property.Title)
	assert.Equal(t, "modern-villa", property.Slug)
}

func TestApplyPropertyUpdatePartialFields(t *testing.T) {
	property := storedProperty()

	err := applyPropertyUpdate(&property, dto.UpdatePropertyRequest{
		City:       strPtr("Canggu"),
		IsFeatured: boolPtr(true),
	}, func(string) (string, error) {
		t.Fatal("slug resolver should not be called")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "Canggu", property.City)
	assert.True(t, property.IsFeatured)
	// untouched fields keep their stored values
	assert.Equal(t, 250000.0, property.Price)
	assert.Equal(t, models.PropertyStatusPublished, property.Status)
}

func TestApplyPropertyUpdateRejectsInvalidEnums(t *testing.T) {
	property := storedProperty()

	err := applyPropertyUpdate(&property, dto.UpdatePropertyRequest{
		Type: strPtr("CASTLE"),
	}, nil)
	assert.Error(t, err)

	err = applyPropertyUpdate(&property, dto.UpdatePropertyRequest{
		Status: strPtr("LOST"),
	}, nil)
	assert.Error(t, err)
}
