package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"posadmin/internal/model"
)

// AddProduct creates a product remotely and appends the server-returned
// record. The collection is unchanged on failure.
func (s *Store) AddProduct(ctx context.Context, input model.ProductInput) (model.Product, error) {
	created, err := s.client.CreateProduct(ctx, input)
	if err != nil {
		s.log.Error("failed to create product", zap.Error(err))
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()

	return created, nil
}

// UpdateProduct sends a partial update and replaces the matching in-memory
// record with the server's merged result. No optimistic mutation: the client
// never predicts what the server will return.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	updated, err := s.client.UpdateProduct(ctx, id, patch)
	if err != nil {
		s.log.Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		// The record exists server-side but was never loaded locally
		// (e.g. the products fetch failed); adopt the server's copy.
		s.products = append(s.products, updated)
	}
	s.mu.Unlock()

	return updated, nil
}

// DeleteProduct deletes the product remotely, then removes it locally
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		s.log.Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		return fmt.Errorf("delete product: %w", err)
	}

	s.mu.Lock()
	s.products = removeByID(s.products, id, func(p model.Product) string { return p.ID })
	s.mu.Unlock()

	return nil
}

// SearchProducts searches server-side, degrading to a local case-insensitive
// substring match over name, barcode and category when the server call fails.
// The local result covers only whatever happened to be loaded; it trades
// completeness for availability. An empty term yields an empty result.
func (s *Store) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	if strings.TrimSpace(term) == "" {
		return []model.Product{}, nil
	}

	results, err := s.client.SearchProducts(ctx, term)
	if err == nil {
		return results, nil
	}

	s.log.Warn("product search failed, filtering locally", zap.Error(err))
	if s.metrics != nil {
		s.metrics.ObserveFallback("local_search")
	}

	needle := strings.ToLower(term)
	matches := []model.Product{}
	s.mu.RLock()
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Barcode), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			matches = append(matches, p)
		}
	}
	s.mu.RUnlock()

	return matches, nil
}

func removeByID[T any](in []T, id string, idOf func(T) string) []T {
	out := in[:0]
	for _, item := range in {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
