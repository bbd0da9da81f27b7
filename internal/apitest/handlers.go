package apitest

import (
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"posadmin/internal/model"
)

func (s *Server) listProducts(c echo.Context) error {
	s.mu.Lock()
	items := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		items = append(items, p)
	}
	s.mu.Unlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return c.JSON(http.StatusOK, page(c, items))
}

func (s *Server) getProduct(c echo.Context) error {
	s.mu.Lock()
	p, ok := s.products[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) createProduct(c echo.Context) error {
	var input model.ProductInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	now := time.Now().UTC()
	p := model.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Supplier:    input.Supplier,
		Barcode:     input.Barcode,
		Description: input.Description,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Status == "" {
		p.Status = model.StatusActive
	}
	s.mu.Lock()
	s.products[p.ID] = p
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProduct(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	p, ok := s.products[id]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
	}
	if err := mergeInto(c, &p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	p.ID = id
	p.UpdatedAt = time.Now().UTC()
	s.mu.Lock()
	s.products[id] = p
	s.mu.Unlock()
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	_, ok := s.products[id]
	delete(s.products, id)
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Product not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

func (s *Server) searchProducts(c echo.Context) error {
	q := c.QueryParam("q")
	s.mu.Lock()
	matches := []model.Product{}
	for _, p := range s.products {
		if q != "" && (containsFold(p.Name, q) || containsFold(p.Barcode, q) || containsFold(p.Category, q)) {
			matches = append(matches, p)
		}
	}
	s.mu.Unlock()
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return c.JSON(http.StatusOK, matches)
}

func (s *Server) listCustomers(c echo.Context) error {
	s.mu.Lock()
	items := make([]model.Customer, 0, len(s.customers))
	for _, cu := range s.customers {
		items = append(items, cu)
	}
	s.mu.Unlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return c.JSON(http.StatusOK, page(c, items))
}

func (s *Server) getCustomer(c echo.Context) error {
	s.mu.Lock()
	cu, ok := s.customers[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Customer not found"})
	}
	return c.JSON(http.StatusOK, cu)
}

func (s *Server) createCustomer(c echo.Context) error {
	var input model.CustomerInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	now := time.Now().UTC()
	cu := model.Customer{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		TaxID:     input.TaxID,
		Type:      input.Type,
		Status:    input.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if cu.Type == "" {
		cu.Type = model.CustomerIndividual
	}
	if cu.Status == "" {
		cu.Status = model.StatusActive
	}
	s.mu.Lock()
	s.customers[cu.ID] = cu
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, cu)
}

func (s *Server) updateCustomer(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	cu, ok := s.customers[id]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Customer not found"})
	}
	if err := mergeInto(c, &cu); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	cu.ID = id
	cu.UpdatedAt = time.Now().UTC()
	s.mu.Lock()
	s.customers[id] = cu
	s.mu.Unlock()
	return c.JSON(http.StatusOK, cu)
}

func (s *Server) deleteCustomer(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	_, ok := s.customers[id]
	delete(s.customers, id)
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Customer not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Customer deleted successfully"})
}

func (s *Server) searchCustomers(c echo.Context) error {
	q := c.QueryParam("q")
	s.mu.Lock()
	matches := []model.Customer{}
	for _, cu := range s.customers {
		if q != "" && (containsFold(cu.Name, q) || containsFold(cu.Email, q) || containsFold(cu.Phone, q)) {
			matches = append(matches, cu)
		}
	}
	s.mu.Unlock()
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return c.JSON(http.StatusOK, matches)
}

func (s *Server) listSuppliers(c echo.Context) error {
	s.mu.Lock()
	items := make([]model.Supplier, 0, len(s.suppliers))
	for _, sp := range s.suppliers {
		items = append(items, sp)
	}
	s.mu.Unlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return c.JSON(http.StatusOK, page(c, items))
}

func (s *Server) getSupplier(c echo.Context) error {
	s.mu.Lock()
	sp, ok := s.suppliers[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Supplier not found"})
	}
	return c.JSON(http.StatusOK, sp)
}

func (s *Server) createSupplier(c echo.Context) error {
	var input model.SupplierInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	now := time.Now().UTC()
	sp := model.Supplier{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		TaxID:         input.TaxID,
		ContactPerson: input.ContactPerson,
		Status:        input.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if sp.Status == "" {
		sp.Status = model.StatusActive
	}
	s.mu.Lock()
	s.suppliers[sp.ID] = sp
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, sp)
}

func (s *Server) updateSupplier(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	sp, ok := s.suppliers[id]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Supplier not found"})
	}
	if err := mergeInto(c, &sp); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	sp.ID = id
	sp.UpdatedAt = time.Now().UTC()
	s.mu.Lock()
	s.suppliers[id] = sp
	s.mu.Unlock()
	return c.JSON(http.StatusOK, sp)
}

func (s *Server) deleteSupplier(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	_, ok := s.suppliers[id]
	delete(s.suppliers, id)
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Supplier not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Supplier deleted successfully"})
}

func (s *Server) searchSuppliers(c echo.Context) error {
	q := c.QueryParam("q")
	s.mu.Lock()
	matches := []model.Supplier{}
	for _, sp := range s.suppliers {
		if q != "" && (containsFold(sp.Name, q) || containsFold(sp.Email, q) || containsFold(sp.Phone, q)) {
			matches = append(matches, sp)
		}
	}
	s.mu.Unlock()
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return c.JSON(http.StatusOK, matches)
}

func (s *Server) listSales(c echo.Context) error {
	s.mu.Lock()
	items := make([]model.Sale, 0, len(s.sales))
	for _, sl := range s.sales {
		items = append(items, sl)
	}
	s.mu.Unlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return c.JSON(http.StatusOK, page(c, items))
}

func (s *Server) getSale(c echo.Context) error {
	s.mu.Lock()
	sl, ok := s.sales[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Sale not found"})
	}
	return c.JSON(http.StatusOK, sl)
}

// createSale stores the totals exactly as submitted. The real API computes
// and persists tax server-side; the fake takes the caller's word so tests can
// assert the client passes totals through untouched.
func (s *Server) createSale(c echo.Context) error {
	var input model.SaleInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	now := time.Now().UTC()
	sl := model.Sale{
		ID:            uuid.New().String(),
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		Items:         input.Items,
		Subtotal:      input.Subtotal,
		Tax:           input.Tax,
		Total:         input.Total,
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if sl.Status == "" {
		sl.Status = model.SalePending
	}
	if sl.PaymentMethod == "" {
		sl.PaymentMethod = model.PaymentCash
	}
	s.mu.Lock()
	s.sales[sl.ID] = sl
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, sl)
}

func (s *Server) updateSale(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	sl, ok := s.sales[id]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Sale not found"})
	}
	if err := mergeInto(c, &sl); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	sl.ID = id
	sl.UpdatedAt = time.Now().UTC()
	s.mu.Lock()
	s.sales[id] = sl
	s.mu.Unlock()
	return c.JSON(http.StatusOK, sl)
}

func (s *Server) deleteSale(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	_, ok := s.sales[id]
	delete(s.sales, id)
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Sale not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Sale deleted successfully"})
}
