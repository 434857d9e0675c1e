package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// CategoryFetcher resolves a category reference against the external
// category service.
type CategoryFetcher interface {
	GetCategoryByID(ctx context.Context, id int) (Category, error)
}

// CategoryClient implements CategoryFetcher over HTTP.
type CategoryClient struct {
	client  *resty.Client
	baseURL string
}

// NewCategoryClient creates a new CategoryClient for the given base URL.
func NewCategoryClient(client *resty.Client, baseURL string) *CategoryClient {
	return &CategoryClient{
		client:  client,
		baseURL: baseURL,
	}
}

// GetCategoryByID performs a single GET against the category service. There
// is no retry; the transport's defaults are the only timeout in play.
func (c *CategoryClient) GetCategoryByID(ctx context.Context, id int) (Category, error) {
	url := fmt.Sprintf("%s/api/v1/categories/%d", c.baseURL, id)

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return Category{}, fmt.Errorf("%w: category %d: %v", ErrCategoryFetch, id, err)
	}

	if !resp.IsSuccess() {
		return Category{}, fmt.Errorf("%w: category %d: status %d", ErrCategoryFetch, id, resp.StatusCode())
	}

	var category *Category
	if err := json.Unmarshal(resp.Body(), &category); err != nil {
		return Category{}, fmt.Errorf("%w: category %d: %v", ErrCategoryDecode, id, err)
	}

	if category == nil || category.ID == 0 {
		return Category{}, fmt.Errorf("%w: category %d", ErrCategoryNotFound, id)
	}

	return *category, nil
}
