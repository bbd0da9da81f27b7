package model

import "time"

// Supplier represents the supplier master data as returned by the remote API
type Supplier struct {
	ID            string    `json:"id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	TaxID         string    `json:"taxId"`
	ContactPerson string    `json:"contactPerson"`
	Status        Status    `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SupplierInput is the creation payload without server-assigned fields
type SupplierInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TaxID         string `json:"taxId"`
	ContactPerson string `json:"contactPerson"`
	Status        Status `json:"status"`
}

// SupplierPatch is a partial update; nil fields are omitted from the body
type SupplierPatch struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	TaxID         *string `json:"taxId,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Status        *Status `json:"status,omitempty"`
}
