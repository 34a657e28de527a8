package dto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropertyFilterDefaults(t *testing.T) {
	filter := ParsePropertyFilter(url.Values{})

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.Limit)
	assert.Empty(t, filter.Type)
	assert.Empty(t, filter.City)
	assert.Empty(t, filter.Search)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.Bedrooms)
	assert.Nil(t, filter.Bathrooms)
	assert.Equal(t, StatusUnspecified, filter.Status.Kind)
}

func TestParsePropertyFilterFullQuery(t *testing.T) {
	values := url.Values{}
	values.Set("type", "VILLA")
	values.Set("status", "PUBLISHED")
	values.Set("city", "Ubud")
	values.Set("search", "rice field")
	values.Set("minPrice", "100000")
	values.Set("maxPrice", "500000.5")
	values.Set("bedrooms", "3")
	values.Set("bathrooms", "2")
	values.Set("page", "4")
	values.Set("limit", "25")

	filter := ParsePropertyFilter(values)

	assert.Equal(t, "VILLA", filter.Type)
	assert.Equal(t, StatusExact, filter.Status.Kind)
	assert.Equal(t, "Ubud", filter.City)
	assert.Equal(t, "rice field", filter.Search)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 100000.0, *filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 500000.5, *filter.MaxPrice)
	require.NotNil(t, filter.Bedrooms)
	assert.Equal(t, 3, *filter.Bedrooms)
	require.NotNil(t, filter.Bathrooms)
	assert.Equal(t, 2, *filter.Bathrooms)
	assert.Equal(t, 4, filter.Page)
	assert.Equal(t, 25, filter.Limit)
}

func TestParsePropertyFilterMalformedNumericsDisableFilter(t *testing.T) {
	values := url.Values{}
	values.Set("minPrice", "cheap")
	values.Set("maxPrice", "1,000,000")
	values.Set("bedrooms", "three")
	values.Set("bathrooms", "2.5")

	filter := ParsePropertyFilter(values)

	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.Bedrooms)
	assert.Nil(t, filter.Bathrooms)
}

func TestParsePropertyFilterTypeAllSentinel(t *testing.T) {
	values := url.Values{}
	values.Set("type", "All")

	filter := ParsePropertyFilter(values)
	assert.Empty(t, filter.Type)
}

func TestParsePropertyFilterRejectsInvalidPaging(t *testing.T) {
	values := url.Values{}
	values.Set("page", "0")
	values.Set("limit", "-5")

	filter := ParsePropertyFilter(values)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.Limit)

	values.Set("page", "abc")
	values.Set("limit", "xyz")
	filter = ParsePropertyFilter(values)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.Limit)
}

func TestTotalPagesFor(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
		{7, 3, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPagesFor(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}
