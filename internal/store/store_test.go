package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"posadmin/internal/api"
	"posadmin/internal/apitest"
	"posadmin/internal/model"
	"posadmin/internal/store"
)

func newTestStore(t *testing.T, srv *apitest.Server) *store.Store {
	t.Helper()
	client := api.NewClient(srv.URL(), 5*time.Second, nil, zap.NewNop())
	return store.New(client, zap.NewNop())
}

func seedServer(srv *apitest.Server) {
	srv.SeedProduct(model.Product{
		ID: "p-1", Name: "Laptop HP Pavilion", Category: "Electronics",
		Price: decimal.RequireFromString("899.99"), Stock: 15,
		Barcode: "1234567890123", Status: model.StatusActive,
	})
	srv.SeedCustomer(model.Customer{
		ID: "c-1", Name: "John Smith", Email: "john.smith@email.com",
		Phone: "+1-555-0123", Type: model.CustomerIndividual, Status: model.StatusActive,
	})
	srv.SeedSupplier(model.Supplier{
		ID: "s-1", Name: "TechSupply Inc.", Email: "orders@techsupply.com",
		Phone: "+1-555-0125", Status: model.StatusActive,
	})
	srv.SeedSale(model.Sale{
		ID: "sl-1", CustomerID: "c-1", CustomerName: "John Smith",
		Subtotal: decimal.RequireFromString("100.00"), Tax: decimal.RequireFromString("10.00"),
		Total: decimal.RequireFromString("110.00"),
		Status: model.SaleCompleted, PaymentMethod: model.PaymentCash,
	})
}

func TestLoadAllPopulatesAllCollections(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	assert.Len(t, st.Products(), 1)
	assert.Len(t, st.Customers(), 1)
	assert.Len(t, st.Suppliers(), 1)
	assert.Len(t, st.Sales(), 1)
	assert.Empty(t, st.Err())
	assert.False(t, st.Loading())
}

func TestLoadAllTotalFailureInstallsSeedData(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)
	srv.FailAll(true)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	// Exactly one built-in placeholder per resource kind
	require.Len(t, st.Products(), 1)
	require.Len(t, st.Customers(), 1)
	require.Len(t, st.Suppliers(), 1)
	require.Len(t, st.Sales(), 1)
	assert.Equal(t, "Laptop HP Pavilion", st.Products()[0].Name)
	assert.Equal(t, "John Smith", st.Customers()[0].Name)
	assert.NotEmpty(t, st.Err())
}

func TestLoadAllCollectionsAreIndependent(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)
	srv.FailResource("products", true)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	// The failed collection stays empty; no seed data for a partial failure
	assert.Empty(t, st.Products())
	assert.Len(t, st.Customers(), 1)
	assert.Len(t, st.Suppliers(), 1)
	assert.Len(t, st.Sales(), 1)
	assert.Empty(t, st.Err())
}

func TestRefreshReplacesCollections(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	st := newTestStore(t, srv)
	st.LoadAll(context.Background())
	assert.Empty(t, st.Products())

	seedServer(srv)
	st.Refresh(context.Background())
	assert.Len(t, st.Products(), 1)
}

func TestAddProductAppendsServerRecord(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())
	before := len(st.Products())

	created, err := st.AddProduct(context.Background(), model.ProductInput{
		Name:   "Wireless Mouse",
		Price:  decimal.RequireFromString("24.50"),
		Stock:  30,
		Status: model.StatusActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	products := st.Products()
	assert.Len(t, products, before+1)

	var found bool
	for _, p := range products {
		if p.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAddFailureLeavesCollectionUnchanged(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())
	before := st.Products()

	srv.FailResource("products", true)
	_, err := st.AddProduct(context.Background(), model.ProductInput{Name: "Ghost", Status: model.StatusActive})
	require.Error(t, err)
	assert.Equal(t, before, st.Products())
}

func TestUpdateReplacesWithServerMergedRecord(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	newName := "Laptop HP Pavilion 15"
	updated, err := st.UpdateProduct(context.Background(), "p-1", model.ProductPatch{Name: &newName})
	require.NoError(t, err)

	// Patched field applied, untouched fields keep the server's values
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, 15, updated.Stock)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("899.99")))

	products := st.Products()
	require.Len(t, products, 1)
	assert.Equal(t, newName, products[0].Name)
}

func TestDeleteRemovesLocallyAndSecondDeleteFails(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	require.NoError(t, st.DeleteProduct(context.Background(), "p-1"))
	assert.Empty(t, st.Products())

	err := st.DeleteProduct(context.Background(), "p-1")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

func TestSearchEmptyTermReturnsNothing(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	results, err := st.SearchProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, results)

	customers, err := st.SearchCustomers(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestSearchUsesServerWhenAvailable(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	results, err := st.SearchProducts(context.Background(), "laptop")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p-1", results[0].ID)
}

func TestSearchDegradesToLocalCaseInsensitiveMatch(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	// Server search now fails; the store filters what it already has
	srv.FailResource("customers", true)

	results, err := st.SearchCustomers(context.Background(), "smith")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "John Smith", results[0].Name)

	none, err := st.SearchCustomers(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLocalProductSearchMatchesBarcodeAndCategory(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())
	srv.FailResource("products", true)

	byBarcode, err := st.SearchProducts(context.Background(), "1234567890123")
	require.NoError(t, err)
	assert.Len(t, byBarcode, 1)

	byCategory, err := st.SearchProducts(context.Background(), "electronics")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}

func TestSaleTotalsStoredVerbatim(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	created, err := st.AddSale(context.Background(), model.SaleInput{
		CustomerID:   "c-1",
		CustomerName: "John Smith",
		Items: []model.SaleItem{
			{ProductID: "p-1", ProductName: "Laptop", Quantity: 1, Price: decimal.RequireFromString("60.00"), Total: decimal.RequireFromString("60.00")},
			{ProductID: "p-2", ProductName: "Mouse", Quantity: 2, Price: decimal.RequireFromString("20.00"), Total: decimal.RequireFromString("40.00")},
		},
		Subtotal:      decimal.RequireFromString("100.00"),
		Tax:           decimal.RequireFromString("10.00"),
		Total:         decimal.RequireFromString("110.00"),
		Status:        model.SaleCompleted,
		PaymentMethod: model.PaymentCard,
	})
	require.NoError(t, err)

	sales := st.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, created.ID, sales[0].ID)
	assert.True(t, sales[0].Total.Equal(decimal.RequireFromString("110.00")))
	assert.True(t, sales[0].Subtotal.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, sales[0].Tax.Equal(decimal.RequireFromString("10.00")))
}

func TestSummaryAggregates(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)
	srv.SeedSale(model.Sale{
		ID: "sl-2", CustomerID: "c-1", CustomerName: "John Smith",
		Total:  decimal.RequireFromString("50.00"),
		Status: model.SalePending, PaymentMethod: model.PaymentCash,
	})
	srv.SeedProduct(model.Product{
		ID: "p-2", Name: "HDMI Cable", Category: "Electronics",
		Price: decimal.RequireFromString("7.99"), Stock: 3, Status: model.StatusActive,
	})

	st := newTestStore(t, srv)
	st.LoadAll(context.Background())

	sum := st.Summary()
	assert.Equal(t, 2, sum.ProductCount)
	assert.Equal(t, 2, sum.SaleCount)
	assert.Equal(t, 1, sum.CompletedSales)
	assert.Equal(t, 1, sum.PendingSales)
	// Only completed sales count toward revenue
	assert.True(t, sum.Revenue.Equal(decimal.RequireFromString("110.00")))
	require.Len(t, sum.LowStockProduct, 1)
	assert.Equal(t, "p-2", sum.LowStockProduct[0].ID)
	assert.Equal(t, 2, sum.SalesByPayment[model.PaymentCash])
}

func TestUpdateAdoptsRecordMissingLocally(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	seedServer(srv)

	// Products never loaded: the record exists only server-side
	st := newTestStore(t, srv)
	require.Empty(t, st.Products())

	name := "Laptop HP Pavilion 15"
	updated, err := st.UpdateProduct(context.Background(), "p-1", model.ProductPatch{Name: &name})
	require.NoError(t, err)

	products := st.Products()
	require.Len(t, products, 1)
	assert.Equal(t, updated, products[0])
	assert.Equal(t, "Laptop HP Pavilion 15", products[0].Name)
	assert.Equal(t, 15, products[0].Stock)
}
