package store

import (
	"time"

	"github.com/shopspring/decimal"

	"posadmin/internal/model"
)

// Built-in placeholder records installed when every bulk load fails. One
// illustrative record per resource kind, so list views never render empty
// during a backend outage. The shared advisory message marks them as samples.

func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Laptop HP Pavilion",
			Category:    "Electronics",
			Price:       decimal.RequireFromString("899.99"),
			Stock:       15,
			Supplier:    "TechSupply Inc.",
			Barcode:     "1234567890123",
			Description: "High-performance laptop for business and gaming",
			Status:      model.StatusActive,
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedCustomers() []model.Customer {
	return []model.Customer{
		{
			ID:        "1",
			Name:      "John Smith",
			Email:     "john.smith@email.com",
			Phone:     "+1-555-0123",
			Address:   "123 Main St, City, State 12345",
			TaxID:     "TAX123456",
			Type:      model.CustomerIndividual,
			Status:    model.StatusActive,
			CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedSuppliers() []model.Supplier {
	return []model.Supplier{
		{
			ID:            "1",
			Name:          "TechSupply Inc.",
			Email:         "orders@techsupply.com",
			Phone:         "+1-555-0125",
			Address:       "789 Industrial Blvd, City, State 12345",
			TaxID:         "TAX345678",
			ContactPerson: "Sarah Johnson",
			Status:        model.StatusActive,
			CreatedAt:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedSales() []model.Sale {
	return []model.Sale{
		{
			ID:           "1",
			CustomerID:   "1",
			CustomerName: "John Smith",
			Items: []model.SaleItem{
				{
					ProductID:   "1",
					ProductName: "Laptop HP Pavilion",
					Quantity:    1,
					Price:       decimal.RequireFromString("899.99"),
					Total:       decimal.RequireFromString("899.99"),
				},
			},
			Subtotal:      decimal.RequireFromString("899.99"),
			Tax:           decimal.RequireFromString("90.00"),
			Total:         decimal.RequireFromString("989.99"),
			Status:        model.SaleCompleted,
			PaymentMethod: model.PaymentCard,
			CreatedAt:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
