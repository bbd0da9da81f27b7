package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"posadmin/internal/model"
)

// AddSale creates a sale remotely and appends the server-returned record.
// Subtotal, tax and total are stored exactly as the server supplied them; the
// store never recomputes totals.
func (s *Store) AddSale(ctx context.Context, input model.SaleInput) (model.Sale, error) {
	created, err := s.client.CreateSale(ctx, input)
	if err != nil {
		s.log.Error("failed to create sale", zap.Error(err))
		return model.Sale{}, fmt.Errorf("create sale: %w", err)
	}

	s.mu.Lock()
	s.sales = append(s.sales, created)
	s.mu.Unlock()

	return created, nil
}

// UpdateSale sends a partial update and replaces the matching in-memory
// record with the server's merged result. Cancelling or completing a sale is
// a status mutation through here, never a local edit.
func (s *Store) UpdateSale(ctx context.Context, id string, patch model.SalePatch) (model.Sale, error) {
	updated, err := s.client.UpdateSale(ctx, id, patch)
	if err != nil {
		s.log.Error("failed to update sale", zap.String("sale_id", id), zap.Error(err))
		return model.Sale{}, fmt.Errorf("update sale: %w", err)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.sales {
		if s.sales[i].ID == id {
			s.sales[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		s.sales = append(s.sales, updated)
	}
	s.mu.Unlock()

	return updated, nil
}

// DeleteSale deletes the sale remotely, then removes it locally
func (s *Store) DeleteSale(ctx context.Context, id string) error {
	if err := s.client.DeleteSale(ctx, id); err != nil {
		s.log.Error("failed to delete sale", zap.String("sale_id", id), zap.Error(err))
		return fmt.Errorf("delete sale: %w", err)
	}

	s.mu.Lock()
	s.sales = removeByID(s.sales, id, func(sl model.Sale) string { return sl.ID })
	s.mu.Unlock()

	return nil
}
