package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

// IsValid reports whether the sale status is one of the closed set of values
func (s SaleStatus) IsValid() bool {
	return s == SalePending || s == SaleCompleted || s == SaleCancelled
}

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// IsValid reports whether the payment method is one of the closed set of values
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentTransfer
}

// SaleItem is one line of a sale. ProductName is denormalized at sale time so
// the line stays readable even if the product is later renamed or archived.
type SaleItem struct {
	ProductID   string          `json:"productId" validate:"required"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// Sale represents a sale record as returned by the remote API. Subtotal, tax
// and total are server-computed and stored verbatim; the client never
// recalculates them.
type Sale struct {
	ID            string          `json:"id" validate:"required"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Items         []SaleItem      `json:"items" validate:"dive"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        SaleStatus      `json:"status" validate:"required,oneof=pending completed cancelled"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required,oneof=cash card transfer"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SaleInput is the creation payload without server-assigned fields
type SaleInput struct {
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        SaleStatus      `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
}

// SalePatch is a partial update; nil fields are omitted from the body
type SalePatch struct {
	CustomerID    *string        `json:"customerId,omitempty"`
	CustomerName  *string        `json:"customerName,omitempty"`
	Items         []SaleItem     `json:"items,omitempty"`
	Status        *SaleStatus    `json:"status,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
}
