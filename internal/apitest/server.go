// Package apitest provides an in-memory fake of the remote POS API for use in
// package tests. It implements the /api/v1 contract the client exercises:
// paginated list, get, create with server-assigned IDs and timestamps,
// partial-merge update, delete, free-text search, login, and controllable
// failure modes. It is a test fixture only, not a server implementation.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"posadmin/internal/model"
)

// DemoEmail and DemoPassword are the only credentials the fake accepts
const (
	DemoEmail    = "admin@aipos.com"
	DemoPassword = "admin123"
)

var signingKey = []byte("apitest-signing-key")

// Server is a fake POS API backed by in-memory maps
type Server struct {
	mu sync.Mutex

	products  map[string]model.Product
	customers map[string]model.Customer
	suppliers map[string]model.Supplier
	sales     map[string]model.Sale

	failed       map[string]bool
	unauthorized bool

	httpSrv *httptest.Server
}

// NewServer starts the fake API on an ephemeral port
func NewServer() *Server {
	s := &Server{
		products:  make(map[string]model.Product),
		customers: make(map[string]model.Customer),
		suppliers: make(map[string]model.Supplier),
		sales:     make(map[string]model.Sale),
		failed:    make(map[string]bool),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(s.failureMiddleware)

	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", s.login)
	v1.POST("/auth/register", s.register)
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	v1.GET("/products", s.listProducts)
	v1.GET("/products/search", s.searchProducts)
	v1.GET("/products/:id", s.getProduct)
	v1.POST("/products", s.createProduct)
	v1.PUT("/products/:id", s.updateProduct)
	v1.DELETE("/products/:id", s.deleteProduct)

	v1.GET("/customers", s.listCustomers)
	v1.GET("/customers/search", s.searchCustomers)
	v1.GET("/customers/:id", s.getCustomer)
	v1.POST("/customers", s.createCustomer)
	v1.PUT("/customers/:id", s.updateCustomer)
	v1.DELETE("/customers/:id", s.deleteCustomer)

	v1.GET("/suppliers", s.listSuppliers)
	v1.GET("/suppliers/search", s.searchSuppliers)
	v1.GET("/suppliers/:id", s.getSupplier)
	v1.POST("/suppliers", s.createSupplier)
	v1.PUT("/suppliers/:id", s.updateSupplier)
	v1.DELETE("/suppliers/:id", s.deleteSupplier)

	v1.GET("/sales", s.listSales)
	v1.GET("/sales/:id", s.getSale)
	v1.POST("/sales", s.createSale)
	v1.PUT("/sales/:id", s.updateSale)
	v1.DELETE("/sales/:id", s.deleteSale)

	s.httpSrv = httptest.NewServer(e)
	return s
}

// URL returns the base URL including the /api/v1 prefix
func (s *Server) URL() string {
	return s.httpSrv.URL + "/api/v1"
}

// Close shuts the fake API down
func (s *Server) Close() {
	s.httpSrv.Close()
}

// FailResource makes every request touching the given resource path segment
// respond 500 until cleared
func (s *Server) FailResource(resource string, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed[resource] = fail
}

// FailAll toggles the 500 failure mode for all four resource kinds
func (s *Server) FailAll(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range []string{"products", "customers", "suppliers", "sales"} {
		s.failed[r] = fail
	}
}

// ForceUnauthorized makes every subsequent request respond 401
func (s *Server) ForceUnauthorized(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unauthorized = on
}

// SeedProduct inserts a product directly into the backing map
func (s *Server) SeedProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// SeedCustomer inserts a customer directly into the backing map
func (s *Server) SeedCustomer(c model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

// SeedSupplier inserts a supplier directly into the backing map
func (s *Server) SeedSupplier(sp model.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers[sp.ID] = sp
}

// SeedSale inserts a sale directly into the backing map
func (s *Server) SeedSale(sl model.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales[sl.ID] = sl
}

func (s *Server) failureMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		unauthorized := s.unauthorized
		var failed bool
		for resource, on := range s.failed {
			if on && strings.Contains(c.Request().URL.Path, "/"+resource) {
				failed = true
				break
			}
		}
		s.mu.Unlock()

		if unauthorized {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Could not validate credentials"})
		}
		if failed {
			return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Internal server error"})
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	if req.Email != DemoEmail || req.Password != DemoPassword {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid credentials"})
	}

	user := model.User{ID: "u-1", Name: "Admin", Email: req.Email, Role: "admin"}
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"sub":   user.ID,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "token error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

func (s *Server) register(c echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}
	user := model.User{ID: uuid.New().String(), Name: req.Name, Email: req.Email, Role: req.Role}
	if user.Role == "" {
		user.Role = "cashier"
	}
	return c.JSON(http.StatusCreated, user)
}

// page applies the skip/limit query parameters to a slice
func page[T any](c echo.Context, items []T) []T {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// mergeInto applies a partial JSON body onto an existing record. Unmarshalling
// into the populated struct overwrites only the fields present in the body,
// which is exactly the server-side merge the client expects.
func mergeInto[T any](c echo.Context, existing *T) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, existing)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
