package repository

import (
	"errors"
	"fmt"

	"licensehub/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с провайдерами

// GetAllProviders возвращает всех неудалённых провайдеров
func (r *Repository) GetAllProviders() ([]ds.Provider, error) {
	var providers []ds.Provider
	err := r.db.Where("is_deleted = ?", false).Order("display_name").Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

// GetProviderByID возвращает провайдера по ID
func (r *Repository) GetProviderByID(id uint) (*ds.Provider, error) {
	var provider ds.Provider
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("провайдер не найден")
		}
		return nil, err
	}
	return &provider, nil
}

// GetProviderByName ищет провайдера по внутреннему имени
func (r *Repository) GetProviderByName(name string) (*ds.Provider, error) {
	var provider ds.Provider
	err := r.db.Where("name = ? AND is_deleted = ?", name, false).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("провайдер не найден")
		}
		return nil, err
	}
	return &provider, nil
}

// CreateProvider создаёт нового провайдера
func (r *Repository) CreateProvider(provider *ds.Provider) error {
	exists, err := r.providerExistsByName(provider.Name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("провайдер с таким именем уже существует")
	}
	return r.db.Create(provider).Error
}

// UpdateProvider сохраняет изменённого провайдера
func (r *Repository) UpdateProvider(provider *ds.Provider) error {
	return r.db.Save(provider).Error
}

// DeleteProvider помечает провайдера удалённым (лицензии остаются для истории)
func (r *Repository) DeleteProvider(id uint) error {
	result := r.db.Model(&ds.Provider{}).Where("id = ?", id).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("провайдер не найден")
	}
	return nil
}

// GetSyncableProviders возвращает API-провайдеров для планировщика синхронизации
func (r *Repository) GetSyncableProviders() ([]ds.Provider, error) {
	providers, err := r.GetAllProviders()
	if err != nil {
		return nil, err
	}

	syncable := make([]ds.Provider, 0, len(providers))
	for _, p := range providers {
		if !p.IsManual() {
			syncable = append(syncable, p)
		}
	}
	return syncable, nil
}

func (r *Repository) providerExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Provider{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
