package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"posadmin/internal/model"
	"posadmin/pkg/validate"
)

// ListCustomers retrieves a page of customers
func (c *Client) ListCustomers(ctx context.Context, skip, limit int) ([]model.Customer, error) {
	var out []model.Customer
	path := fmt.Sprintf("/customers?skip=%d&limit=%d", skip, limit)
	if err := c.do(ctx, http.MethodGet, path, "customers", nil, &out); err != nil {
		return nil, err
	}
	if err := validate.Records(out); err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	return out, nil
}

// GetCustomer retrieves a single customer by ID
func (c *Client) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	var out model.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), "customers", nil, &out); err != nil {
		return model.Customer{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Customer{}, fmt.Errorf("customer %s: %w", id, err)
	}
	return out, nil
}

// CreateCustomer creates a customer and returns the server-assigned record
func (c *Client) CreateCustomer(ctx context.Context, input model.CustomerInput) (model.Customer, error) {
	var out model.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", "customers", input, &out); err != nil {
		return model.Customer{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Customer{}, fmt.Errorf("created customer: %w", err)
	}
	return out, nil
}

// UpdateCustomer sends a partial update and returns the merged record
func (c *Client) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, error) {
	var out model.Customer
	if err := c.do(ctx, http.MethodPut, "/customers/"+url.PathEscape(id), "customers", patch, &out); err != nil {
		return model.Customer{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Customer{}, fmt.Errorf("updated customer %s: %w", id, err)
	}
	return out, nil
}

// DeleteCustomer deletes a customer by ID
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id), "customers", nil, nil)
}

// SearchCustomers performs a server-side free-text customer search
func (c *Client) SearchCustomers(ctx context.Context, term string) ([]model.Customer, error) {
	var out []model.Customer
	path := "/customers/search?q=" + url.QueryEscape(term)
	if err := c.do(ctx, http.MethodGet, path, "customers", nil, &out); err != nil {
		return nil, err
	}
	if err := validate.Records(out); err != nil {
		return nil, fmt.Errorf("customer search: %w", err)
	}
	return out, nil
}
