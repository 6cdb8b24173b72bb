package derive

import (
	"fmt"
	"time"
)

// Типы предупреждений
const (
	WarnUnmatched        = "unmatched"
	WarnExpiringContract = "expiring_contract"
	WarnLowUtilization   = "low_utilization"
	WarnServiceAccount   = "service_account"
)

// Warning — одно предупреждение для страницы обзора и уведомлений
type Warning struct {
	Type         string `json:"type"`
	ProviderName string `json:"provider_name,omitempty"`
	LicenseID    uint   `json:"license_id,omitempty"`
	PackageID    uint   `json:"package_id,omitempty"`
	Message      string `json:"message"`
}

// ContractInfo — минимум данных пакетного контракта для проверки сроков
type ContractInfo struct {
	PackageID            uint
	ProviderName         string
	Name                 string
	TotalSeats           int
	UsedSeats            int
	ContractEnd          *time.Time
	CancellationDeadline *time.Time
	CancelledAt          *time.Time
}

// Thresholds — пороги срабатывания предупреждений
type Thresholds struct {
	ExpiryWarningDays     int
	LowUtilizationDays    int
	LowUtilizationPercent int
}

// Warnings вычисляет предупреждения по текущему состоянию лицензий и
// контрактов: несопоставленные активные лицензии, истекающие контракты,
// низкая утилизация, сервисные/административные аккаунты
func Warnings(rows []LicenseRow, contracts []ContractInfo, th Thresholds, now time.Time) []Warning {
	warnings := []Warning{}

	for _, row := range rows {
		if row.IsServiceAccount || row.IsAdminAccount {
			kind := "сервисный"
			if row.IsAdminAccount {
				kind = "административный"
			}
			warnings = append(warnings, Warning{
				Type:         WarnServiceAccount,
				ProviderName: row.ProviderName,
				LicenseID:    row.ID,
				Message:      fmt.Sprintf("%s аккаунт %s исключён из сопоставления с HR", kind, row.ExternalUserID),
			})
			continue
		}

		if row.Status == StatusActive && row.EmployeeID == nil {
			warnings = append(warnings, Warning{
				Type:         WarnUnmatched,
				ProviderName: row.ProviderName,
				LicenseID:    row.ID,
				Message:      fmt.Sprintf("лицензия %s не сопоставлена с сотрудником", row.ExternalUserID),
			})
		}

		if row.Status == StatusActive && row.LastActivityAt != nil && th.LowUtilizationDays > 0 {
			idle := now.Sub(*row.LastActivityAt)
			if idle > time.Duration(th.LowUtilizationDays)*24*time.Hour {
				warnings = append(warnings, Warning{
					Type:         WarnLowUtilization,
					ProviderName: row.ProviderName,
					LicenseID:    row.ID,
					Message:      fmt.Sprintf("лицензия %s не использовалась %d дней", row.ExternalUserID, int(idle.Hours()/24)),
				})
			}
		}
	}

	for _, c := range contracts {
		if c.CancelledAt != nil {
			continue
		}
		deadline := c.ContractEnd
		if c.CancellationDeadline != nil {
			deadline = c.CancellationDeadline
		}
		if deadline != nil && th.ExpiryWarningDays > 0 {
			left := deadline.Sub(now)
			if left > 0 && left < time.Duration(th.ExpiryWarningDays)*24*time.Hour {
				warnings = append(warnings, Warning{
					Type:         WarnExpiringContract,
					ProviderName: c.ProviderName,
					PackageID:    c.PackageID,
					Message:      fmt.Sprintf("контракт %q заканчивается через %d дней", c.Name, int(left.Hours()/24)),
				})
			}
		}

		if c.TotalSeats > 0 && th.LowUtilizationPercent > 0 {
			percent := c.UsedSeats * 100 / c.TotalSeats
			if percent < th.LowUtilizationPercent {
				warnings = append(warnings, Warning{
					Type:         WarnLowUtilization,
					ProviderName: c.ProviderName,
					PackageID:    c.PackageID,
					Message:      fmt.Sprintf("занято %d%% мест пакета %q", percent, c.Name),
				})
			}
		}
	}

	return warnings
}
