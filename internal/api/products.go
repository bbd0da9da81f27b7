package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"posadmin/internal/model"
	"posadmin/pkg/validate"
)

// ListProducts retrieves a page of products
func (c *Client) ListProducts(ctx context.Context, skip, limit int) ([]model.Product, error) {
	var out []model.Product
	path := fmt.Sprintf("/products?skip=%d&limit=%d", skip, limit)
	if err := c.do(ctx, http.MethodGet, path, "products", nil, &out); err != nil {
		return nil, err
	}
	if err := validate.Records(out); err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}
	return out, nil
}

// GetProduct retrieves a single product by ID
func (c *Client) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), "products", nil, &out); err != nil {
		return model.Product{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Product{}, fmt.Errorf("product %s: %w", id, err)
	}
	return out, nil
}

// CreateProduct creates a product. The server assigns identity and timestamps
// and returns the complete record.
func (c *Client) CreateProduct(ctx context.Context, input model.ProductInput) (model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodPost, "/products", "products", input, &out); err != nil {
		return model.Product{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Product{}, fmt.Errorf("created product: %w", err)
	}
	return out, nil
}

// UpdateProduct sends a partial update; the server merges it and returns the
// full updated record.
func (c *Client) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), "products", patch, &out); err != nil {
		return model.Product{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Product{}, fmt.Errorf("updated product %s: %w", id, err)
	}
	return out, nil
}

// DeleteProduct deletes a product by ID
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), "products", nil, nil)
}

// SearchProducts performs a server-side free-text product search
func (c *Client) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	var out []model.Product
	path := "/products/search?q=" + url.QueryEscape(term)
	if err := c.do(ctx, http.MethodGet, path, "products", nil, &out); err != nil {
		return nil, err
	}
	if err := validate.Records(out); err != nil {
		return nil, fmt.Errorf("product search: %w", err)
	}
	return out, nil
}
