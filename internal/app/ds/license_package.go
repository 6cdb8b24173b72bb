package ds

import "time"

// 5. Таблица пакетных контрактов — контракт на фиксированное число мест,
// живёт независимо от отдельных строк лицензий
type LicensePackage struct {
	ID          uint    `gorm:"primaryKey"`
	ProviderID  uint    `gorm:"not null;index"`
	Name        string  `gorm:"type:varchar(255);not null"`
	TotalSeats  int     `gorm:"type:int;not null"`
	CostPerSeat float64 `gorm:"type:decimal(12,2);not null"`
	Currency    string  `gorm:"type:varchar(3);not null;default:'USD'"`

	ContractStart        *time.Time `gorm:"default:null"`
	ContractEnd          *time.Time `gorm:"default:null"`
	AutoRenew            bool       `gorm:"type:boolean;default:false;not null"`
	CancellationDeadline *time.Time `gorm:"default:null"` // Крайний срок отмены до автопродления
	CancelledAt          *time.Time `gorm:"default:null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time

	Provider Provider `gorm:"foreignKey:ProviderID"`
}
