package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"posadmin/internal/model"
)

// AddCustomer creates a customer remotely and appends the server-returned
// record. The collection is unchanged on failure.
func (s *Store) AddCustomer(ctx context.Context, input model.CustomerInput) (model.Customer, error) {
	created, err := s.client.CreateCustomer(ctx, input)
	if err != nil {
		s.log.Error("failed to create customer", zap.Error(err))
		return model.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	s.mu.Lock()
	s.customers = append(s.customers, created)
	s.mu.Unlock()

	return created, nil
}

// UpdateCustomer sends a partial update and replaces the matching in-memory
// record with the server's merged result
func (s *Store) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, error) {
	updated, err := s.client.UpdateCustomer(ctx, id, patch)
	if err != nil {
		s.log.Error("failed to update customer", zap.String("customer_id", id), zap.Error(err))
		return model.Customer{}, fmt.Errorf("update customer: %w", err)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		s.customers = append(s.customers, updated)
	}
	s.mu.Unlock()

	return updated, nil
}

// DeleteCustomer deletes the customer remotely, then removes it locally
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.client.DeleteCustomer(ctx, id); err != nil {
		s.log.Error("failed to delete customer", zap.String("customer_id", id), zap.Error(err))
		return fmt.Errorf("delete customer: %w", err)
	}

	s.mu.Lock()
	s.customers = removeByID(s.customers, id, func(c model.Customer) string { return c.ID })
	s.mu.Unlock()

	return nil
}

// SearchCustomers searches server-side, degrading to a local case-insensitive
// substring match over name, email and phone when the server call fails. An
// empty term yields an empty result.
func (s *Store) SearchCustomers(ctx context.Context, term string) ([]model.Customer, error) {
	if strings.TrimSpace(term) == "" {
		return []model.Customer{}, nil
	}

	results, err := s.client.SearchCustomers(ctx, term)
	if err == nil {
		return results, nil
	}

	s.log.Warn("customer search failed, filtering locally", zap.Error(err))
	if s.metrics != nil {
		s.metrics.ObserveFallback("local_search")
	}

	needle := strings.ToLower(term)
	matches := []model.Customer{}
	s.mu.RLock()
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(strings.ToLower(c.Phone), needle) {
			matches = append(matches, c)
		}
	}
	s.mu.RUnlock()

	return matches, nil
}
