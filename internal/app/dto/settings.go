package dto

import "time"

// ============ Настройки компании (Settings) ============

type PaymentMethodResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	LastFour  string `json:"last_four,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
	Total          int                     `json:"total"`
}

type SavePaymentMethodRequest struct {
	Name      string `json:"name" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=card invoice bank_transfer"`
	LastFour  string `json:"last_four" binding:"omitempty,len=4"`
	IsDefault bool   `json:"is_default"`
}

type NotificationRuleResponse struct {
	ID          uint   `json:"id"`
	WarningType string `json:"warning_type"`
	Channel     string `json:"channel"`
	Threshold   int    `json:"threshold"`
	Enabled     bool   `json:"enabled"`
}

type NotificationRuleListResponse struct {
	Rules []NotificationRuleResponse `json:"rules"`
	Total int                        `json:"total"`
}

type SaveNotificationRuleRequest struct {
	WarningType string `json:"warning_type" binding:"required,oneof=unmatched expiring_contract low_utilization service_account"`
	Channel     string `json:"channel" binding:"omitempty,oneof=slack"`
	Threshold   int    `json:"threshold" binding:"omitempty,gte=0"`
	Enabled     *bool  `json:"enabled"`
}

type ThresholdSettingsResponse struct {
	ExpiryWarningDays     int `json:"expiry_warning_days"`
	LowUtilizationDays    int `json:"low_utilization_days"`
	LowUtilizationPercent int `json:"low_utilization_percent"`
}

type SaveThresholdSettingsRequest struct {
	ExpiryWarningDays     int `json:"expiry_warning_days" binding:"required,gt=0"`
	LowUtilizationDays    int `json:"low_utilization_days" binding:"required,gt=0"`
	LowUtilizationPercent int `json:"low_utilization_percent" binding:"required,gte=0,lte=100"`
}

type SlackConfigResponse struct {
	WebhookURL string `json:"webhook_url,omitempty"`
	Channel    string `json:"channel,omitempty"`
	Enabled    bool   `json:"enabled"`
}

type SaveSlackConfigRequest struct {
	WebhookURL string `json:"webhook_url" binding:"required,url"`
	Channel    string `json:"channel"`
	Enabled    bool   `json:"enabled"`
}

// ============ Файлы провайдера (Provider Files) ============

type ProviderFileResponse struct {
	ObjectName string    `json:"object_name"`
	FileName   string    `json:"file_name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ProviderFileListResponse struct {
	Files []ProviderFileResponse `json:"files"`
	Total int                    `json:"total"`
}

type FileURLResponse struct {
	URL string `json:"url"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     int    `json:"role"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
