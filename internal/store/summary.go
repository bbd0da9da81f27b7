package store

import (
	"github.com/shopspring/decimal"

	"posadmin/internal/model"
)

// lowStockThreshold marks products that need restocking on the dashboard
const lowStockThreshold = 10

// Summary is the dashboard view over the in-memory collections. Revenue sums
// only completed sales, using the server-supplied totals verbatim.
type Summary struct {
	ProductCount  int
	CustomerCount int
	SupplierCount int
	SaleCount     int

	Revenue         decimal.Decimal
	PendingSales    int
	CompletedSales  int
	CancelledSales  int
	SalesByPayment  map[model.PaymentMethod]int
	LowStockProduct []model.Product
}

// Summary computes dashboard aggregates from whatever is currently loaded
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{
		ProductCount:   len(s.products),
		CustomerCount:  len(s.customers),
		SupplierCount:  len(s.suppliers),
		SaleCount:      len(s.sales),
		Revenue:        decimal.Zero,
		SalesByPayment: make(map[model.PaymentMethod]int),
	}

	for _, sale := range s.sales {
		switch sale.Status {
		case model.SalePending:
			sum.PendingSales++
		case model.SaleCompleted:
			sum.CompletedSales++
			sum.Revenue = sum.Revenue.Add(sale.Total)
		case model.SaleCancelled:
			sum.CancelledSales++
		}
		sum.SalesByPayment[sale.PaymentMethod]++
	}

	for _, p := range s.products {
		if p.Status == model.StatusActive && p.Stock < lowStockThreshold {
			sum.LowStockProduct = append(sum.LowStockProduct, p)
		}
	}

	return sum
}
