package repository

import (
	"errors"
	"fmt"

	"licensehub/internal/app/derive"
	"licensehub/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с лицензиями

// rowFromLicense склеивает лицензию с данными провайдера и сотрудника
// в плоскую строку для слоя derive
func rowFromLicense(l ds.License) derive.LicenseRow {
	row := derive.LicenseRow{
		ID:                   l.ID,
		ProviderID:           l.ProviderID,
		ProviderName:         l.Provider.Name,
		ProviderInternalName: l.Provider.Name,
		ExternalUserID:       l.ExternalUserID,
		EmployeeID:           l.EmployeeID,
		Status:               l.Status,
		LicenseType:          l.LicenseType,
		MonthlyCost:          l.MonthlyCost,
		Currency:             l.Currency,
		IsServiceAccount:     l.IsServiceAccount,
		IsAdminAccount:       l.IsAdminAccount,
		LastActivityAt:       l.LastActivityAt,
	}
	if l.Provider.DisplayName != "" {
		row.ProviderName = l.Provider.DisplayName
	}
	if l.LicenseTypeName != nil {
		row.LicenseTypeName = *l.LicenseTypeName
	}
	if l.Employee != nil {
		row.EmployeeName = l.Employee.FullName
		row.EmployeeEmail = l.Employee.Email
		row.Department = l.Employee.Department
		row.EmployeeOffboarded = l.Employee.Status == ds.EmployeeStatusOffboarded
	}
	return row
}

// GetLicenseRows возвращает плоские строки лицензий; providerID == 0 — все провайдеры
func (r *Repository) GetLicenseRows(providerID uint) ([]derive.LicenseRow, error) {
	var licenses []ds.License
	q := r.db.Preload("Provider").Preload("Employee")
	if providerID != 0 {
		q = q.Where("provider_id = ?", providerID)
	}
	if err := q.Find(&licenses).Error; err != nil {
		return nil, err
	}

	rows := make([]derive.LicenseRow, len(licenses))
	for i, l := range licenses {
		rows[i] = rowFromLicense(l)
	}
	return rows, nil
}

// GetLicenseByID возвращает лицензию с провайдером и сотрудником
func (r *Repository) GetLicenseByID(id uint) (*ds.License, error) {
	var license ds.License
	err := r.db.Preload("Provider").Preload("Employee").First(&license, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("лицензия не найдена")
		}
		return nil, err
	}
	return &license, nil
}

// CreateLicense создаёт лицензию (только для ручных провайдеров, проверка в хендлере)
func (r *Repository) CreateLicense(license *ds.License) error {
	return r.db.Create(license).Error
}

// UpdateLicense сохраняет изменённые поля лицензии
func (r *Repository) UpdateLicense(license *ds.License) error {
	return r.db.Save(license).Error
}

// DeleteLicense удаляет лицензию из базы
func (r *Repository) DeleteLicense(id uint) error {
	result := r.db.Delete(&ds.License{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("лицензия не найдена")
	}
	return nil
}

// AssignLicense привязывает лицензию к сотруднику
func (r *Repository) AssignLicense(licenseID, employeeID uint) error {
	var employee ds.Employee
	if err := r.db.First(&employee, employeeID).Error; err != nil {
		return fmt.Errorf("сотрудник не найден")
	}

	result := r.db.Model(&ds.License{}).Where("id = ?", licenseID).
		Update("employee_id", employeeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("лицензия не найдена")
	}
	return nil
}

// UnassignLicense отвязывает лицензию от сотрудника
func (r *Repository) UnassignLicense(licenseID uint) error {
	result := r.db.Model(&ds.License{}).Where("id = ?", licenseID).
		Update("employee_id", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("лицензия не найдена")
	}
	return nil
}

// CountActiveLicenses считает активные лицензии провайдера (занятые места пакета)
func (r *Repository) CountActiveLicenses(providerID uint) (int, error) {
	var count int64
	err := r.db.Model(&ds.License{}).
		Where("provider_id = ? AND status = ?", providerID, derive.StatusActive).
		Count(&count).Error
	return int(count), err
}
