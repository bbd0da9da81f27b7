package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"posadmin/internal/model"
	"posadmin/pkg/validate"
)

// ListSuppliers retrieves a page of suppliers
func (c *Client) ListSuppliers(ctx context.Context, skip, limit int) ([]model.Supplier, error) {
	var out []model.Supplier
	path := fmt.Sprintf("/suppliers?skip=%d&limit=%d", skip, limit)
	if err := c.do(ctx, http.MethodGet, path, "suppliers", nil, &out); err != nil {
		return nil, err
	}
	if err := validate.Records(out); err != nil {
		return nil, fmt.Errorf("suppliers: %w", err)
	}
	return out, nil
}

// GetSupplier retrieves a single supplier by ID
func (c *Client) GetSupplier(ctx context.Context, id string) (model.Supplier, error) {
	var out model.Supplier
	if err := c.do(ctx, http.MethodGet, "/suppliers/"+url.PathEscape(id), "suppliers", nil, &out); err != nil {
		return model.Supplier{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Supplier{}, fmt.Errorf("supplier %s: %w", id, err)
	}
	return out, nil
}

// CreateSupplier creates a supplier and returns the server-assigned record
func (c *Client) CreateSupplier(ctx context.Context, input model.SupplierInput) (model.Supplier, error) {
	var out model.Supplier
	if err := c.do(ctx, http.MethodPost, "/suppliers", "suppliers", input, &out); err != nil {
		return model.Supplier{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Supplier{}, fmt.Errorf("created supplier: %w", err)
	}
	return out, nil
}

// UpdateSupplier sends a partial update and returns the merged record
func (c *Client) UpdateSupplier(ctx context.Context, id string, patch model.SupplierPatch) (model.Supplier, error) {
	var out model.Supplier
	if err := c.do(ctx, http.MethodPut, "/suppliers/"+url.PathEscape(id), "suppliers", patch, &out); err != nil {
		return model.Supplier{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Supplier{}, fmt.Errorf("updated supplier %s: %w", id, err)
	}
	return out, nil
}

// DeleteSupplier deletes a supplier by ID
func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/suppliers/"+url.PathEscape(id), "suppliers", nil, nil)
}

// SearchSuppliers performs a server-side free-text supplier search
func (c *Client) SearchSuppliers(ctx context.Context, term string) ([]model.Supplier, error) {
	var out []model.Supplier
	path := "/suppliers/search?q=" + url.QueryEscape(term)
	if err := c.do(ctx, http.MethodGet, path, "suppliers", nil, &out); err != nil {
		return nil, err
	}
	if err := validate.Records(out); err != nil {
		return nil, fmt.Errorf("supplier search: %w", err)
	}
	return out, nil
}
