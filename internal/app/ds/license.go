package ds

import "time"

// 1. Таблица лицензий — одна строка на выданную лицензию (место) у провайдера
type License struct {
	ID              uint    `gorm:"primaryKey"`
	ProviderID      uint    `gorm:"not null;index"`
	ExternalUserID  string  `gorm:"type:varchar(255);not null;index"` // идентификатор пользователя на стороне провайдера
	EmployeeID      *uint   `gorm:"index;default:null"`               // Nullable — сопоставление с сотрудником из HR
	Status          string  `gorm:"type:varchar(20);not null;default:'active'"` // active, inactive
	LicenseType     string  `gorm:"type:varchar(100);not null"`
	LicenseTypeName *string `gorm:"type:varchar(255)"` // Nullable — отображаемое имя типа
	MonthlyCost     float64 `gorm:"type:decimal(12,2);default:0"`
	Currency        string  `gorm:"type:varchar(3);default:'USD'"`

	// Флаги сервисных и административных аккаунтов (исключаются из сопоставления с HR)
	IsServiceAccount bool `gorm:"type:boolean;default:false;not null"`
	IsAdminAccount   bool `gorm:"type:boolean;default:false;not null"`

	LastActivityAt *time.Time `gorm:"default:null"` // Последняя активность по данным провайдера
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time

	Provider Provider  `gorm:"foreignKey:ProviderID"`
	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}
