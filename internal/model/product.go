package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the active/inactive state shared by master-data records
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether the status is one of the closed set of values
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Product represents the product master data as returned by the remote API
type Product struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Supplier    string          `json:"supplier"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	Status      Status          `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductInput is the creation payload. The server assigns identity and
// timestamps, so the input deliberately has no fields for them.
type ProductInput struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Supplier    string          `json:"supplier"`
	Barcode     string          `json:"barcode"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
}

// ProductPatch is a partial update. Nil fields are omitted from the request
// body and left untouched by the server-side merge.
type ProductPatch struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Supplier    *string          `json:"supplier,omitempty"`
	Barcode     *string          `json:"barcode,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      *Status          `json:"status,omitempty"`
}
