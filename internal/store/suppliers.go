package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"posadmin/internal/model"
)

// AddSupplier creates a supplier remotely and appends the server-returned
// record. The collection is unchanged on failure.
func (s *Store) AddSupplier(ctx context.Context, input model.SupplierInput) (model.Supplier, error) {
	created, err := s.client.CreateSupplier(ctx, input)
	if err != nil {
		s.log.Error("failed to create supplier", zap.Error(err))
		return model.Supplier{}, fmt.Errorf("create supplier: %w", err)
	}

	s.mu.Lock()
	s.suppliers = append(s.suppliers, created)
	s.mu.Unlock()

	return created, nil
}

// UpdateSupplier sends a partial update and replaces the matching in-memory
// record with the server's merged result
func (s *Store) UpdateSupplier(ctx context.Context, id string, patch model.SupplierPatch) (model.Supplier, error) {
	updated, err := s.client.UpdateSupplier(ctx, id, patch)
	if err != nil {
		s.log.Error("failed to update supplier", zap.String("supplier_id", id), zap.Error(err))
		return model.Supplier{}, fmt.Errorf("update supplier: %w", err)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		s.suppliers = append(s.suppliers, updated)
	}
	s.mu.Unlock()

	return updated, nil
}

// DeleteSupplier deletes the supplier remotely, then removes it locally
func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	if err := s.client.DeleteSupplier(ctx, id); err != nil {
		s.log.Error("failed to delete supplier", zap.String("supplier_id", id), zap.Error(err))
		return fmt.Errorf("delete supplier: %w", err)
	}

	s.mu.Lock()
	s.suppliers = removeByID(s.suppliers, id, func(sp model.Supplier) string { return sp.ID })
	s.mu.Unlock()

	return nil
}

// SearchSuppliers searches server-side, degrading to a local case-insensitive
// substring match over name, email and phone when the server call fails. An
// empty term yields an empty result.
func (s *Store) SearchSuppliers(ctx context.Context, term string) ([]model.Supplier, error) {
	if strings.TrimSpace(term) == "" {
		return []model.Supplier{}, nil
	}

	results, err := s.client.SearchSuppliers(ctx, term)
	if err == nil {
		return results, nil
	}

	s.log.Warn("supplier search failed, filtering locally", zap.Error(err))
	if s.metrics != nil {
		s.metrics.ObserveFallback("local_search")
	}

	needle := strings.ToLower(term)
	matches := []model.Supplier{}
	s.mu.RLock()
	for _, sp := range s.suppliers {
		if strings.Contains(strings.ToLower(sp.Name), needle) ||
			strings.Contains(strings.ToLower(sp.Email), needle) ||
			strings.Contains(strings.ToLower(sp.Phone), needle) {
			matches = append(matches, sp)
		}
	}
	s.mu.RUnlock()

	return matches, nil
}
