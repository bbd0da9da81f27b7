package model

import "time"

// CustomerType distinguishes individual from business customers
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerBusiness   CustomerType = "business"
)

// IsValid reports whether the customer type is one of the closed set of values
func (t CustomerType) IsValid() bool {
	return t == CustomerIndividual || t == CustomerBusiness
}

// Customer represents the customer master data as returned by the remote API
type Customer struct {
	ID        string       `json:"id" validate:"required"`
	Name      string       `json:"name" validate:"required"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	TaxID     string       `json:"taxId"`
	Type      CustomerType `json:"type" validate:"required,oneof=individual business"`
	Status    Status       `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CustomerInput is the creation payload without server-assigned fields
type CustomerInput struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
	Address string       `json:"address"`
	TaxID   string       `json:"taxId"`
	Type    CustomerType `json:"type"`
	Status  Status       `json:"status"`
}

// CustomerPatch is a partial update; nil fields are omitted from the body
type CustomerPatch struct {
	Name    *string       `json:"name,omitempty"`
	Email   *string       `json:"email,omitempty"`
	Phone   *string       `json:"phone,omitempty"`
	Address *string       `json:"address,omitempty"`
	TaxID   *string       `json:"taxId,omitempty"`
	Type    *CustomerType `json:"type,omitempty"`
	Status  *Status       `json:"status,omitempty"`
}
