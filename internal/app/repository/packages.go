package repository

import (
	"errors"
	"fmt"

	"licensehub/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с пакетными контрактами

// GetPackages возвращает контракты; providerID == 0 — все провайдеры
func (r *Repository) GetPackages(providerID uint) ([]ds.LicensePackage, error) {
	var packages []ds.LicensePackage
	q := r.db.Preload("Provider")
	if providerID != 0 {
		q = q.Where("provider_id = ?", providerID)
	}
	if err := q.Order("id").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// GetPackageByID возвращает контракт по ID
func (r *Repository) GetPackageByID(id uint) (*ds.LicensePackage, error) {
	var pkg ds.LicensePackage
	err := r.db.Preload("Provider").First(&pkg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("контракт не найден")
		}
		return nil, err
	}
	return &pkg, nil
}

// CreatePackage создаёт пакетный контракт
func (r *Repository) CreatePackage(pkg *ds.LicensePackage) error {
	return r.db.Create(pkg).Error
}

// UpdatePackage сохраняет изменённый контракт
func (r *Repository) UpdatePackage(pkg *ds.LicensePackage) error {
	return r.db.Save(pkg).Error
}

// DeletePackage удаляет контракт
func (r *Repository) DeletePackage(id uint) error {
	result := r.db.Delete(&ds.LicensePackage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("контракт не найден")
	}
	return nil
}
