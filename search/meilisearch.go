package search

import (
	"encoding/json"

	"github.com/meilisearch/meilisearch-go"
	"github.com/nusava/nusava-backend/models"
)

const indexUID = "properties"

// Client wraps the Meilisearch index used for full-text property search.
// The index is an acceleration structure only; Postgres stays the source of
// truth and indexing failures never surface to API callers.
type Client struct {
	client *meilisearch.Client
	index  string
}

// NewClient creates a search client for the given Meilisearch instance
func NewClient(host, apiKey string) *Client {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &Client{
		client: client,
		index:  indexUID,
	}
}

// InitIndex creates the index and configures its attributes
func (c *Client) InitIndex() error {
	_, err := c.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        c.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	_, err = c.client.Index(c.index).UpdateSearchableAttributes(&[]string{
		"title",
		"description",
		"address",
		"city",
		"state",
	})
	if err != nil {
		return err
	}

	_, err = c.client.Index(c.index).UpdateFilterableAttributes(&[]string{
		"id",
		"status",
		"type",
		"city",
		"price",
		"bedrooms",
		"bathrooms",
	})
	if err != nil {
		return err
	}

	_, err = c.client.Index(c.index).UpdateSortableAttributes(&[]string{
		"price",
		"area",
		"createdAt",
	})
	return err
}

// IndexProperty upserts a single property document
func (c *Client) IndexProperty(property *models.Property) error {
	_, err := c.client.Index(c.index).AddDocuments([]models.Property{*property})
	return err
}

// IndexProperties upserts multiple property documents
func (c *Client) IndexProperties(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	_, err := c.client.Index(c.index).AddDocuments(properties)
	return err
}

// DeleteProperty removes a property document from the index
func (c *Client) DeleteProperty(id string) error {
	_, err := c.client.Index(c.index).DeleteDocument(id)
	return err
}

// Result carries search hits with engine metadata
type Result struct {
	Hits           []models.Property
	TotalHits      int64
	ProcessingTime int64
}

// Search runs a typo-tolerant query over publicly visible properties
func (c *Client) Search(query string, limit int64) (*Result, error) {
	if limit <= 0 {
		limit = 20
	}

	searchRes, err := c.client.Index(c.index).Search(query, &meilisearch.SearchRequest{
		Limit:  limit,
		Filter: `status NOT IN ["DRAFT", "ARCHIVED"]`,
	})
	if err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(searchRes.Hits))
	for _, hit := range searchRes.Hits {
		hitJSON, err := json.Marshal(hit)
		if err != nil {
			continue
		}

		var property models.Property
		if err := json.Unmarshal(hitJSON, &property); err != nil {
			continue
		}

		properties = append(properties, property)
	}

	return &Result{
		Hits:           properties,
		TotalHits:      searchRes.EstimatedTotalHits,
		ProcessingTime: searchRes.ProcessingTimeMs,
	}, nil
}
