package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	listingTTL        = 60 * time.Second
	listingVersionKey = "properties:listing:version"
)

// Client is a thin redis wrapper caching listing query results. A nil
// *Client is valid and disables caching, so callers never branch on
// whether redis is configured.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to redis; an empty addr disables caching
func NewClient(addr, password string) *Client {
	if addr == "" {
		return nil
	}
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
	}
}

// GetListing loads a cached listing response into dest; the bool reports a hit
func (c *Client) GetListing(ctx context.Context, params url.Values, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}

	key, err := c.listingKey(ctx, params)
	if err != nil {
		return false, err
	}

	data, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

// SetListing stores a listing response under the current namespace version
func (c *Client) SetListing(ctx context.Context, params url.Values, value interface{}) error {
	if c == nil {
		return nil
	}

	key, err := c.listingKey(ctx, params)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, listingTTL).Err()
}

// InvalidateListings bumps the namespace version, orphaning all cached
// listing entries; the TTL reclaims them.
func (c *Client) InvalidateListings(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Incr(ctx, listingVersionKey).Err()
}

func (c *Client) listingKey(ctx context.Context, params url.Values) (string, error) {
	version, err := c.rdb.Get(ctx, listingVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("properties:listing:v%d:%s", version, QueryHash(params)), nil
}

// QueryHash produces a stable digest of the query parameters
func QueryHash(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(strings.Join(params[k], ","))
	}

	hash := md5.Sum([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
