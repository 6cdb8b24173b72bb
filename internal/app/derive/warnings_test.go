package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var scanTime = time.Date(2025, 6, 1, 3, 30, 0, 0, time.UTC)

func defaultThresholds() Thresholds {
	return Thresholds{
		ExpiryWarningDays:     60,
		LowUtilizationDays:    90,
		LowUtilizationPercent: 50,
	}
}

func TestWarningsUnmatched(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, ExternalUserID: "ghost@corp.com", Status: StatusActive},
		{ID: 2, ExternalUserID: "alice@corp.com", Status: StatusActive, EmployeeID: uintPtr(10)},
		{ID: 3, ExternalUserID: "old@corp.com", Status: "inactive"},
	}

	warnings := Warnings(rows, nil, defaultThresholds(), scanTime)

	assert.Len(t, warnings, 1)
	assert.Equal(t, WarnUnmatched, warnings[0].Type)
	assert.Equal(t, uint(1), warnings[0].LicenseID)
}

func TestWarningsServiceAccount(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, ExternalUserID: "backup@corp.com", Status: StatusActive, IsServiceAccount: true},
		{ID: 2, ExternalUserID: "root@corp.com", Status: StatusActive, IsAdminAccount: true},
	}

	warnings := Warnings(rows, nil, defaultThresholds(), scanTime)

	assert.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, WarnServiceAccount, w.Type)
	}
}

func TestWarningsLowUtilizationLicense(t *testing.T) {
	idle := scanTime.Add(-100 * 24 * time.Hour)
	fresh := scanTime.Add(-5 * 24 * time.Hour)
	rows := []LicenseRow{
		{ID: 1, ExternalUserID: "idle@corp.com", Status: StatusActive, EmployeeID: uintPtr(10), LastActivityAt: &idle},
		{ID: 2, ExternalUserID: "busy@corp.com", Status: StatusActive, EmployeeID: uintPtr(11), LastActivityAt: &fresh},
	}

	warnings := Warnings(rows, nil, defaultThresholds(), scanTime)

	assert.Len(t, warnings, 1)
	assert.Equal(t, WarnLowUtilization, warnings[0].Type)
	assert.Equal(t, uint(1), warnings[0].LicenseID)
}

func TestWarningsExpiringContract(t *testing.T) {
	soon := scanTime.Add(30 * 24 * time.Hour)
	far := scanTime.Add(200 * 24 * time.Hour)
	contracts := []ContractInfo{
		{PackageID: 1, Name: "Workspace Business", ContractEnd: &soon, TotalSeats: 10, UsedSeats: 9},
		{PackageID: 2, Name: "Slack Pro", ContractEnd: &far, TotalSeats: 10, UsedSeats: 9},
	}

	warnings := Warnings(nil, contracts, defaultThresholds(), scanTime)

	assert.Len(t, warnings, 1)
	assert.Equal(t, WarnExpiringContract, warnings[0].Type)
	assert.Equal(t, uint(1), warnings[0].PackageID)
}

func TestWarningsCancellationDeadlineWins(t *testing.T) {
	deadline := scanTime.Add(10 * 24 * time.Hour)
	end := scanTime.Add(300 * 24 * time.Hour)
	contracts := []ContractInfo{
		{PackageID: 1, Name: "Workspace Business", ContractEnd: &end, CancellationDeadline: &deadline, TotalSeats: 10, UsedSeats: 9},
	}

	warnings := Warnings(nil, contracts, defaultThresholds(), scanTime)

	assert.Len(t, warnings, 1)
	assert.Equal(t, WarnExpiringContract, warnings[0].Type)
}

func TestWarningsCancelledContractSkipped(t *testing.T) {
	soon := scanTime.Add(10 * 24 * time.Hour)
	cancelled := scanTime.Add(-24 * time.Hour)
	contracts := []ContractInfo{
		{PackageID: 1, Name: "Workspace Business", ContractEnd: &soon, CancelledAt: &cancelled, TotalSeats: 10, UsedSeats: 1},
	}

	assert.Empty(t, Warnings(nil, contracts, defaultThresholds(), scanTime))
}

func TestWarningsLowSeatUtilization(t *testing.T) {
	contracts := []ContractInfo{
		{PackageID: 1, Name: "Workspace Business", TotalSeats: 20, UsedSeats: 4},
		{PackageID: 2, Name: "Slack Pro", TotalSeats: 20, UsedSeats: 18},
	}

	warnings := Warnings(nil, contracts, defaultThresholds(), scanTime)

	assert.Len(t, warnings, 1)
	assert.Equal(t, WarnLowUtilization, warnings[0].Type)
	assert.Equal(t, uint(1), warnings[0].PackageID)
}
