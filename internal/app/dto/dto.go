package dto

import (
	"time"

	"licensehub/internal/app/derive"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Провайдеры (Providers) ============

type ProviderResponse struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	DisplayName string                 `json:"display_name"`
	IsManual    bool                   `json:"is_manual"`
	Config      map[string]interface{} `json:"config,omitempty"`
}

type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Total     int                `json:"total"`
}

type CreateProviderRequest struct {
	Name        string                 `json:"name" binding:"required,min=2,max=100"`
	DisplayName string                 `json:"display_name" binding:"required"`
	Config      map[string]interface{} `json:"config"`
}

type UpdateProviderConfigRequest struct {
	DisplayName string                 `json:"display_name"`
	Config      map[string]interface{} `json:"config"`
}

// ============ Лицензии (Licenses) ============

// CategorizedLicensesResponse — серверное разбиение лицензий по корзинам
// плюс агрегаты; внутри корзины assigned применена пагинация
type CategorizedLicensesResponse struct {
	Assigned        derive.Page          `json:"assigned"`
	Unassigned      SplitBucket          `json:"unassigned"`
	External        SplitBucket          `json:"external"`
	ServiceAccounts []derive.LicenseRow  `json:"service_accounts"`
	Stats           derive.Stats         `json:"stats"`
}

// SplitBucket — корзина, отрисовываемая двумя таблицами без пагинации
type SplitBucket struct {
	Active   []derive.LicenseRow `json:"active"`
	Inactive []derive.LicenseRow `json:"inactive"`
}

type LicenseListResponse struct {
	Licenses []derive.LicenseRow `json:"licenses"`
	Total    int                 `json:"total"`
}

type CreateLicenseRequest struct {
	ProviderID     uint    `json:"provider_id" binding:"required"`
	ExternalUserID string  `json:"external_user_id" binding:"required"`
	LicenseType    string  `json:"license_type" binding:"required"`
	MonthlyCost    float64 `json:"monthly_cost" binding:"omitempty,gte=0"`
	Currency       string  `json:"currency"`
	EmployeeID     *uint   `json:"employee_id"`
}

type UpdateLicenseRequest struct {
	Status           *string  `json:"status" binding:"omitempty,oneof=active inactive"`
	LicenseType      *string  `json:"license_type"`
	MonthlyCost      *float64 `json:"monthly_cost" binding:"omitempty,gte=0"`
	IsServiceAccount *bool    `json:"is_service_account"`
	IsAdminAccount   *bool    `json:"is_admin_account"`
}

type AssignLicenseRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required"`
}

// ============ Массовые операции (Bulk) ============

type BulkActionRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// BulkActionResponse — счётчики результата; частичный сбой не откатывается
type BulkActionResponse struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// ============ Сотрудники (Employees) ============

type EmployeeResponse struct {
	ID         uint       `json:"id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	ManagerID  *uint      `json:"manager_id,omitempty"`
	Status     string     `json:"status"`
	StartDate  *time.Time `json:"start_date,omitempty"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}

// ============ Предупреждения и обзор ============

type WarningListResponse struct {
	Warnings []derive.Warning `json:"warnings"`
	Total    int              `json:"total"`
}

// ProviderCostResponse — строка сводки затрат для графиков обзора
type ProviderCostResponse struct {
	ProviderID   uint    `json:"provider_id"`
	ProviderName string  `json:"provider_name"`
	DisplayName  string  `json:"display_name"`
	Licenses     int     `json:"licenses"`
	MonthlyCost  float64 `json:"monthly_cost"`
	YearlyCost   float64 `json:"yearly_cost"`
	Currency     string  `json:"currency"`
}

type CostOverviewResponse struct {
	Providers    []ProviderCostResponse `json:"providers"`
	MonthlyTotal float64                `json:"monthly_total"`
	YearlyTotal  float64                `json:"yearly_total"`
}
