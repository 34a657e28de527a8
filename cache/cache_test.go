package cache

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryHashStable(t *testing.T) {
	a := url.Values{}
	a.Set("city", "Canggu")
	a.Set("minPrice", "100000")

	b := url.Values{}
	b.Set("minPrice", "100000")
	b.Set("city", "Canggu")

	// Insertion order must not matter
	assert.Equal(t, QueryHash(a), QueryHash(b))
	assert.Len(t, QueryHash(a), 32)
}

func TestQueryHashDiffersPerQuery(t *testing.T) {
	a := url.Values{}
	a.Set("city", "Canggu")

	b := url.Values{}
	b.Set("city", "Ubud")

	assert.NotEqual(t, QueryHash(a), QueryHash(b))
	assert.NotEqual(t, QueryHash(a), QueryHash(url.Values{}))
}

func TestNilClientDisablesCaching(t *testing.T) {
	var c *Client
	ctx := context.Background()
	params := url.Values{}

	var dest map[string]interface{}
	hit, err := c.GetListing(ctx, params, &dest)
	assert.False(t, hit)
	assert.NoError(t, err)

	assert.NoError(t, c.SetListing(ctx, params, map[string]string{"x": "y"}))
	assert.NoError(t, c.InvalidateListings(ctx))
}

func TestNewClientEmptyAddrReturnsNil(t *testing.T) {
	assert.Nil(t, NewClient("", ""))
}
