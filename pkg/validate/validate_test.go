package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posadmin/internal/model"
	"posadmin/pkg/validate"
)

func TestRecordAcceptsWellFormedProduct(t *testing.T) {
	p := model.Product{ID: "p-1", Name: "Laptop", Status: model.StatusActive}
	assert.NoError(t, validate.Record(&p))
}

func TestRecordRejectsMissingIdentity(t *testing.T) {
	p := model.Product{Name: "Laptop", Status: model.StatusActive}
	err := validate.Record(&p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id")
}

func TestRecordRejectsUnknownEnumValue(t *testing.T) {
	c := model.Customer{ID: "c-1", Name: "John", Type: "corporate", Status: model.StatusActive}
	err := validate.Record(&c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestRecordsReportsOffendingIndex(t *testing.T) {
	items := []model.Supplier{
		{ID: "s-1", Name: "TechSupply", Status: model.StatusActive},
		{Name: "No ID", Status: model.StatusActive},
	}
	err := validate.Records(items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
}
