package ds

import "time"

// 6. Общекорпоративные настройки (страница Settings)

// Способ оплаты компании
type PaymentMethod struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Kind      string `gorm:"type:varchar(50);not null"` // card, invoice, bank_transfer
	LastFour  string `gorm:"type:varchar(4)"`
	IsDefault bool   `gorm:"type:boolean;default:false;not null"`
	CreatedAt time.Time
}

// Правило уведомлений: какой тип предупреждения куда доставлять
type NotificationRule struct {
	ID          uint   `gorm:"primaryKey"`
	WarningType string `gorm:"type:varchar(50);not null"` // unmatched, expiring_contract, low_utilization, service_account
	Channel     string `gorm:"type:varchar(20);not null;default:'slack'"`
	Threshold   int    `gorm:"type:int;default:0"` // порог срабатывания (дни/штуки, зависит от типа)
	Enabled     bool   `gorm:"type:boolean;default:true;not null"`
	CreatedAt   time.Time
}

// Пороги предупреждений (одна строка на компанию)
type ThresholdSettings struct {
	ID                    uint `gorm:"primaryKey"`
	ExpiryWarningDays     int  `gorm:"type:int;default:60;not null"`  // за сколько дней до конца контракта предупреждать
	LowUtilizationDays    int  `gorm:"type:int;default:90;not null"`  // дней без активности = низкая утилизация
	LowUtilizationPercent int  `gorm:"type:int;default:50;not null"`  // доля занятых мест пакета ниже порога
}

// Конфигурация Slack-интеграции для доставки уведомлений
type SlackConfig struct {
	ID         uint   `gorm:"primaryKey"`
	WebhookURL string `gorm:"type:varchar(512)"`
	Channel    string `gorm:"type:varchar(100)"`
	Enabled    bool   `gorm:"type:boolean;default:false;not null"`
	UpdatedAt  time.Time
}
