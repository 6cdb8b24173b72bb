package ds

import "time"

// 4. Таблица цен по типам лицензий провайдера.
// Запись с ключом LicenseType == "__package__" описывает пакетную цену:
// общая стоимость контракта, распределяемая на MaxUsers мест.
type LicenseTypePricing struct {
	ID          uint    `gorm:"primaryKey"`
	ProviderID  uint    `gorm:"not null;index;uniqueIndex:idx_provider_license_type"`
	LicenseType string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_provider_license_type"`
	Cost        float64 `gorm:"type:decimal(12,2);not null"`
	Currency    string  `gorm:"type:varchar(3);not null;default:'USD'"`
	// monthly, quarterly, yearly
	BillingCycle     string  `gorm:"type:varchar(20);not null;default:'monthly'"`
	PaymentFrequency string  `gorm:"type:varchar(20)"`
	DisplayName      *string `gorm:"type:varchar(255)"`
	MaxUsers         int     `gorm:"type:int;default:0"` // только для __package__

	NextBillingDate *time.Time `gorm:"default:null"`
	Notes           string     `gorm:"type:text"`
	UpdatedAt       time.Time

	Provider Provider `gorm:"foreignKey:ProviderID"`
}
