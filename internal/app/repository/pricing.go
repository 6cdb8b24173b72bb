package repository

import (
	"licensehub/internal/app/ds"
	"licensehub/internal/app/pricing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Методы для работы с ценами

// GetProviderPricing возвращает записи цен провайдера по ключу типа лицензии
func (r *Repository) GetProviderPricing(providerID uint) (map[string]ds.LicenseTypePricing, error) {
	var records []ds.LicenseTypePricing
	err := r.db.Where("provider_id = ?", providerID).Find(&records).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]ds.LicenseTypePricing, len(records))
	for _, record := range records {
		out[record.LicenseType] = record
	}
	return out, nil
}

// SaveProviderPricing сохраняет батч черновика цен одним запросом на запись
// (upsert по паре провайдер/тип лицензии) и пересчитывает месячную стоимость
// лицензий провайдера из новых цен
func (r *Repository) SaveProviderPricing(providerID uint, records []ds.LicenseTypePricing) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			records[i].ProviderID = providerID
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "provider_id"}, {Name: "license_type"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"cost", "currency", "billing_cycle", "payment_frequency",
					"display_name", "max_users", "next_billing_date", "notes", "updated_at",
				}),
			}).Create(&records[i]).Error
			if err != nil {
				return err
			}
		}
		return applyPricingToLicenses(tx, providerID, records)
	})
}

// applyPricingToLicenses пересчитывает monthly_cost лицензий из записей цен.
// Пакетная цена распределяется на max_users мест и применяется ко всем
// лицензиям провайдера; индивидуальные цены — по совпадению типа
func applyPricingToLicenses(tx *gorm.DB, providerID uint, records []ds.LicenseTypePricing) error {
	for _, record := range records {
		monthly := pricing.MonthlyEquivalent(record.Cost, record.BillingCycle)

		if record.LicenseType == pricing.PackageKey {
			perSeat := pricing.PerSeatCost(monthly, record.MaxUsers)
			if perSeat == 0 {
				continue
			}
			err := tx.Model(&ds.License{}).
				Where("provider_id = ?", providerID).
				Updates(map[string]interface{}{
					"monthly_cost": pricing.Round2(perSeat),
					"currency":     record.Currency,
				}).Error
			if err != nil {
				return err
			}
			continue
		}

		err := tx.Model(&ds.License{}).
			Where("provider_id = ? AND license_type = ?", providerID, record.LicenseType).
			Updates(map[string]interface{}{
				"monthly_cost": pricing.Round2(monthly),
				"currency":     record.Currency,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
