package repository

import (
	"testing"
	"time"

	"licensehub/internal/app/ds"

	"github.com/stretchr/testify/assert"
)

func TestApplySyncedFields(t *testing.T) {
	employeeID := uint(10)
	seen := time.Now()
	typeName := "Business Plus"

	current := ds.License{
		Status:           "active",
		LicenseType:      "business",
		EmployeeID:       &employeeID,
		MonthlyCost:      12.5,
		Currency:         "USD",
		IsServiceAccount: false,
		IsAdminAccount:   false,
	}
	external := ds.License{
		Status:           "inactive",
		LicenseType:      "business_plus",
		LicenseTypeName:  &typeName,
		IsServiceAccount: true,
		IsAdminAccount:   true,
		LastActivityAt:   &seen,
	}

	applySyncedFields(&current, external)

	assert.Equal(t, "inactive", current.Status)
	assert.Equal(t, "business_plus", current.LicenseType)
	assert.Equal(t, &typeName, current.LicenseTypeName)
	assert.True(t, current.IsServiceAccount)
	assert.True(t, current.IsAdminAccount)
	assert.Equal(t, &seen, current.LastActivityAt)

	// Локальные поля выгрузка не перетирает
	assert.Equal(t, &employeeID, current.EmployeeID)
	assert.InDelta(t, 12.5, current.MonthlyCost, 0.001)
	assert.Equal(t, "USD", current.Currency)
}

func TestApplySyncedFieldsClearsFlags(t *testing.T) {
	current := ds.License{IsServiceAccount: true, IsAdminAccount: true}
	external := ds.License{Status: "active"}

	applySyncedFields(&current, external)

	assert.False(t, current.IsServiceAccount)
	assert.False(t, current.IsAdminAccount)
}
