package repository

import (
	"errors"
	"time"

	"licensehub/internal/app/ds"

	"gorm.io/gorm"
)

// Методы журнала синхронизации и сверки лицензий с данными провайдера

// CreateSyncRun открывает запись запуска синхронизации
func (r *Repository) CreateSyncRun(run *ds.SyncRun) error {
	run.StartedAt = time.Now()
	run.Status = ds.SyncStatusRunning
	return r.db.Create(run).Error
}

// FinishSyncRun закрывает запись запуска с итоговым статусом и счётчиками
func (r *Repository) FinishSyncRun(run *ds.SyncRun, status, errMsg string) error {
	now := time.Now()
	run.FinishedAt = &now
	run.Status = status
	run.Error = errMsg
	return r.db.Save(run).Error
}

// GetSyncRuns возвращает последние запуски синхронизации провайдера
func (r *Repository) GetSyncRuns(providerID uint, limit int) ([]ds.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []ds.SyncRun
	q := r.db.Order("started_at DESC").Limit(limit)
	if providerID != 0 {
		q = q.Where("provider_id = ?", providerID)
	}
	err := q.Find(&runs).Error
	return runs, err
}

// UpsertSyncedLicense сверяет одну лицензию из выгрузки провайдера с базой:
// существующая строка обновляется, новая создаётся и по возможности
// сопоставляется с сотрудником по email. Возвращает true если строка создана
func (r *Repository) UpsertSyncedLicense(providerID uint, external ds.License) (bool, error) {
	var current ds.License
	err := r.db.Where("provider_id = ? AND external_user_id = ?", providerID, external.ExternalUserID).
		First(&current).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		external.ProviderID = providerID
		if external.EmployeeID == nil && !external.IsServiceAccount {
			// Сопоставление с сотрудником по email
			employee, err := r.GetEmployeeByEmail(external.ExternalUserID)
			if err != nil {
				return false, err
			}
			if employee != nil {
				external.EmployeeID = &employee.ID
			}
		}
		return true, r.db.Create(&external).Error
	}
	if err != nil {
		return false, err
	}

	applySyncedFields(&current, external)
	return false, r.db.Save(&current).Error
}

// applySyncedFields переносит в существующую лицензию поля, которыми
// владеет провайдер. Привязка к сотруднику и стоимость остаются локальными
func applySyncedFields(current *ds.License, external ds.License) {
	current.Status = external.Status
	current.LicenseType = external.LicenseType
	current.LicenseTypeName = external.LicenseTypeName
	current.IsServiceAccount = external.IsServiceAccount
	current.IsAdminAccount = external.IsAdminAccount
	current.LastActivityAt = external.LastActivityAt
}

// DeactivateMissingLicenses помечает неактивными лицензии провайдера,
// отсутствующие в последней выгрузке. Строки не удаляются — история
// остаётся для отчётов
func (r *Repository) DeactivateMissingLicenses(providerID uint, seen map[string]bool) (int, error) {
	var licenses []ds.License
	err := r.db.Where("provider_id = ? AND status = ?", providerID, "active").Find(&licenses).Error
	if err != nil {
		return 0, err
	}

	deactivated := 0
	for _, license := range licenses {
		if seen[license.ExternalUserID] {
			continue
		}
		if err := r.db.Model(&license).Update("status", "inactive").Error; err != nil {
			return deactivated, err
		}
		deactivated++
	}
	return deactivated, nil
}
