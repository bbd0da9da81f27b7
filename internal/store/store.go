// Package store holds the client-side in-memory collections for the four
// resource kinds and mediates every remote call that touches them. It is the
// single source of truth for one application session: the store is the sole
// writer of its collections, and all mutation flows through its operations.
// The in-memory view therefore reflects only store-mediated transitions,
// though not necessarily the true remote state.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"posadmin/internal/model"
	"posadmin/prometheus"
)

// defaultPageSize matches the page size the original admin interface requested
const defaultPageSize = 100

// Client is the remote API surface the store depends on
type Client interface {
	ListProducts(ctx context.Context, skip, limit int) ([]model.Product, error)
	CreateProduct(ctx context.Context, input model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)

	ListCustomers(ctx context.Context, skip, limit int) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, input model.CustomerInput) (model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	SearchCustomers(ctx context.Context, term string) ([]model.Customer, error)

	ListSuppliers(ctx context.Context, skip, limit int) ([]model.Supplier, error)
	CreateSupplier(ctx context.Context, input model.SupplierInput) (model.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, patch model.SupplierPatch) (model.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	SearchSuppliers(ctx context.Context, term string) ([]model.Supplier, error)

	ListSales(ctx context.Context, skip, limit int) ([]model.Sale, error)
	CreateSale(ctx context.Context, input model.SaleInput) (model.Sale, error)
	UpdateSale(ctx context.Context, id string, patch model.SalePatch) (model.Sale, error)
	DeleteSale(ctx context.Context, id string) error
}

// Store aggregates the four domain collections for the UI layer
type Store struct {
	mu      sync.RWMutex
	client  Client
	log     *zap.Logger
	metrics *prometheus.ClientMetrics

	products  []model.Product
	customers []model.Customer
	suppliers []model.Supplier
	sales     []model.Sale

	loading bool
	errMsg  string
}

// New creates a store with empty collections. Call LoadAll to populate them.
func New(client Client, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		client: client,
		log:    log,
	}
}

// WithMetrics attaches a metrics collector for fallback observations
func (s *Store) WithMetrics(m *prometheus.ClientMetrics) *Store {
	s.metrics = m
	return s
}

// LoadAll fetches all four collections concurrently. Each fetch is isolated:
// one collection failing to load does not block the others, and partial
// results still populate. Only when every fetch fails does the store install
// the built-in seed records and set the shared advisory error, so the UI
// always has something to render.
func (s *Store) LoadAll(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var (
		wg        sync.WaitGroup
		products  []model.Product
		customers []model.Customer
		suppliers []model.Supplier
		sales     []model.Sale

		productsErr  error
		customersErr error
		suppliersErr error
		salesErr     error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		products, productsErr = s.client.ListProducts(ctx, 0, defaultPageSize)
	}()
	go func() {
		defer wg.Done()
		customers, customersErr = s.client.ListCustomers(ctx, 0, defaultPageSize)
	}()
	go func() {
		defer wg.Done()
		suppliers, suppliersErr = s.client.ListSuppliers(ctx, 0, defaultPageSize)
	}()
	go func() {
		defer wg.Done()
		sales, salesErr = s.client.ListSales(ctx, 0, defaultPageSize)
	}()
	wg.Wait()

	for _, e := range []struct {
		kind string
		err  error
	}{
		{"products", productsErr},
		{"customers", customersErr},
		{"suppliers", suppliersErr},
		{"sales", salesErr},
	} {
		if e.err != nil {
			s.log.Warn("failed to load collection", zap.String("resource", e.kind), zap.Error(e.err))
		}
	}

	allFailed := productsErr != nil && customersErr != nil && suppliersErr != nil && salesErr != nil

	s.mu.Lock()
	defer s.mu.Unlock()

	if allFailed {
		// Total load failure: fall back to one illustrative record per
		// resource kind. These are placeholders, not persisted data; the
		// advisory message below is how the UI tells them apart.
		s.products = seedProducts()
		s.customers = seedCustomers()
		s.suppliers = seedSuppliers()
		s.sales = seedSales()
		s.errMsg = "could not reach the server; showing built-in sample data"
		if s.metrics != nil {
			s.metrics.ObserveFallback("seed")
		}
		s.log.Warn("all collection loads failed, installed seed data")
	} else {
		s.products = emptyIfNil(products)
		s.customers = emptyIfNil(customers)
		s.suppliers = emptyIfNil(suppliers)
		s.sales = emptyIfNil(sales)
	}

	s.loading = false
}

// Refresh re-runs LoadAll, replacing all four collections
func (s *Store) Refresh(ctx context.Context) {
	s.LoadAll(ctx)
}

// Loading reports whether a bulk load is in progress. Per-record mutations do
// not set the flag.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the shared advisory message, non-empty only after a bulk load
// fell back to seed data
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Products returns a copy of the product collection
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.products...)
}

// Customers returns a copy of the customer collection
func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Customer(nil), s.customers...)
}

// Suppliers returns a copy of the supplier collection
func (s *Store) Suppliers() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Supplier(nil), s.suppliers...)
}

// Sales returns a copy of the sales collection
func (s *Store) Sales() []model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Sale(nil), s.sales...)
}

func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
