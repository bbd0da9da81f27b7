package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"posadmin/internal/model"
	"posadmin/pkg/validate"
)

// ListSales retrieves a page of sales
func (c *Client) ListSales(ctx context.Context, skip, limit int) ([]model.Sale, error) {
	var out []model.Sale
	path := fmt.Sprintf("/sales?skip=%d&limit=%d", skip, limit)
	if err := c.do(ctx, http.MethodGet, path, "sales", nil, &out); err != nil {
		return nil, err
	}
	if err := validate.Records(out); err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}
	return out, nil
}

// GetSale retrieves a single sale by ID
func (c *Client) GetSale(ctx context.Context, id string) (model.Sale, error) {
	var out model.Sale
	if err := c.do(ctx, http.MethodGet, "/sales/"+url.PathEscape(id), "sales", nil, &out); err != nil {
		return model.Sale{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Sale{}, fmt.Errorf("sale %s: %w", id, err)
	}
	return out, nil
}

// CreateSale creates a sale. Totals in the returned record are the server's;
// the client stores them verbatim.
func (c *Client) CreateSale(ctx context.Context, input model.SaleInput) (model.Sale, error) {
	var out model.Sale
	if err := c.do(ctx, http.MethodPost, "/sales", "sales", input, &out); err != nil {
		return model.Sale{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Sale{}, fmt.Errorf("created sale: %w", err)
	}
	return out, nil
}

// UpdateSale sends a partial update and returns the merged record
func (c *Client) UpdateSale(ctx context.Context, id string, patch model.SalePatch) (model.Sale, error) {
	var out model.Sale
	if err := c.do(ctx, http.MethodPut, "/sales/"+url.PathEscape(id), "sales", patch, &out); err != nil {
		return model.Sale{}, err
	}
	if err := validate.Record(&out); err != nil {
		return model.Sale{}, fmt.Errorf("updated sale %s: %w", id, err)
	}
	return out, nil
}

// DeleteSale deletes a sale by ID
func (c *Client) DeleteSale(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sales/"+url.PathEscape(id), "sales", nil, nil)
}
