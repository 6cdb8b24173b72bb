package dto

import "time"

// ============ Цены (Pricing) ============

// PricingEntry — одна запись цены; в ответе дополнена расчётными полями
// для отображения (месячный/годовой эквивалент и цена за место)
type PricingEntry struct {
	LicenseType      string     `json:"license_type"`
	Cost             float64    `json:"cost"`
	Currency         string     `json:"currency"`
	BillingCycle     string     `json:"billing_cycle"`
	PaymentFrequency string     `json:"payment_frequency,omitempty"`
	DisplayName      string     `json:"display_name,omitempty"`
	MaxUsers         int        `json:"max_users,omitempty"`
	NextBillingDate  *time.Time `json:"next_billing_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`

	// Только для отображения — хранимая запись не меняется
	MonthlyEquivalent float64 `json:"monthly_equivalent"`
	YearlyEquivalent  float64 `json:"yearly_equivalent"`
	PerSeatCost       float64 `json:"per_seat_cost,omitempty"`
}

// PricingMapResponse — карта цен провайдера по ключу типа лицензии,
// ключ "__package__" зарезервирован за пакетной ценой
type PricingMapResponse struct {
	ProviderID uint                    `json:"provider_id"`
	Pricing    map[string]PricingEntry `json:"pricing"`
}

// SavePricingRequest — батч-сохранение черновика редактора цен
type SavePricingRequest struct {
	Pricing map[string]SavePricingEntry `json:"pricing" binding:"required"`
}

type SavePricingEntry struct {
	Cost             float64    `json:"cost" binding:"gte=0"`
	Currency         string     `json:"currency"`
	BillingCycle     string     `json:"billing_cycle" binding:"omitempty,oneof=monthly quarterly yearly"`
	PaymentFrequency string     `json:"payment_frequency"`
	DisplayName      string     `json:"display_name"`
	MaxUsers         int        `json:"max_users" binding:"omitempty,gte=0"`
	NextBillingDate  *time.Time `json:"next_billing_date"`
	Notes            string     `json:"notes"`
}

// ============ Пакетные контракты (License Packages) ============

type PackageResponse struct {
	ID                   uint       `json:"id"`
	ProviderID           uint       `json:"provider_id"`
	Name                 string     `json:"name"`
	TotalSeats           int        `json:"total_seats"`
	UsedSeats            int        `json:"used_seats"`
	CostPerSeat          float64    `json:"cost_per_seat"`
	Currency             string     `json:"currency"`
	ContractStart        *time.Time `json:"contract_start,omitempty"`
	ContractEnd          *time.Time `json:"contract_end,omitempty"`
	AutoRenew            bool       `json:"auto_renew"`
	CancellationDeadline *time.Time `json:"cancellation_deadline,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
}

type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
	Total    int               `json:"total"`
}

type CreatePackageRequest struct {
	ProviderID           uint       `json:"provider_id" binding:"required"`
	Name                 string     `json:"name" binding:"required"`
	TotalSeats           int        `json:"total_seats" binding:"required,gt=0"`
	CostPerSeat          float64    `json:"cost_per_seat" binding:"required,gte=0"`
	Currency             string     `json:"currency"`
	ContractStart        *time.Time `json:"contract_start"`
	ContractEnd          *time.Time `json:"contract_end"`
	AutoRenew            bool       `json:"auto_renew"`
	CancellationDeadline *time.Time `json:"cancellation_deadline"`
}

type UpdatePackageRequest struct {
	Name                 *string    `json:"name"`
	TotalSeats           *int       `json:"total_seats" binding:"omitempty,gt=0"`
	CostPerSeat          *float64   `json:"cost_per_seat" binding:"omitempty,gte=0"`
	ContractStart        *time.Time `json:"contract_start"`
	ContractEnd          *time.Time `json:"contract_end"`
	AutoRenew            *bool      `json:"auto_renew"`
	CancellationDeadline *time.Time `json:"cancellation_deadline"`
	CancelledAt          *time.Time `json:"cancelled_at"`
}
