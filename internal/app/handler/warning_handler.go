package handler

import (
	"net/http"
	"time"

	"licensehub/internal/app/derive"
	"licensehub/internal/app/ds"
	"licensehub/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ОБЗОР И ПРЕДУПРЕЖДЕНИЯ ============

// buildWarnings собирает предупреждения по текущему состоянию базы.
// Сбои чтения составных частей логируются и деградируют до пустых
// секций — страница обзора не падает целиком из-за одной выборки
func (h *APIHandler) buildWarnings(providerID uint) []derive.Warning {
	rows, err := h.Repository.GetLicenseRows(providerID)
	if err != nil {
		logrus.Error("warnings: error getting licenses: ", err)
		rows = []derive.LicenseRow{}
	}

	contracts := []derive.ContractInfo{}
	packages, err := h.Repository.GetPackages(providerID)
	if err != nil {
		logrus.Error("warnings: error getting packages: ", err)
		packages = []ds.LicensePackage{}
	}
	for _, pkg := range packages {
		used, err := h.Repository.CountActiveLicenses(pkg.ProviderID)
		if err != nil {
			logrus.Error("warnings: error counting licenses: ", err)
		}
		name := pkg.Provider.DisplayName
		if name == "" {
			name = pkg.Provider.Name
		}
		contracts = append(contracts, derive.ContractInfo{
			PackageID:            pkg.ID,
			ProviderName:         name,
			Name:                 pkg.Name,
			TotalSeats:           pkg.TotalSeats,
			UsedSeats:            used,
			ContractEnd:          pkg.ContractEnd,
			CancellationDeadline: pkg.CancellationDeadline,
			CancelledAt:          pkg.CancelledAt,
		})
	}

	thresholds := derive.Thresholds{
		ExpiryWarningDays:     60,
		LowUtilizationDays:    90,
		LowUtilizationPercent: 50,
	}
	if settings, err := h.Repository.GetThresholdSettings(); err != nil {
		logrus.Error("warnings: error getting thresholds: ", err)
	} else {
		thresholds = derive.Thresholds{
			ExpiryWarningDays:     settings.ExpiryWarningDays,
			LowUtilizationDays:    settings.LowUtilizationDays,
			LowUtilizationPercent: settings.LowUtilizationPercent,
		}
	}

	return derive.Warnings(rows, contracts, thresholds, time.Now())
}

// GetWarnings получает предупреждения
// @Summary Предупреждения
// @Description Несопоставленные лицензии, истекающие контракты, низкая утилизация, сервисные аккаунты
// @Tags Overview
// @Produce json
// @Param provider_id query int false "Фильтр по провайдеру"
// @Security BearerAuth
// @Success 200 {object} dto.WarningListResponse
// @Router /api/warnings [get]
func (h *APIHandler) GetWarnings(c *gin.Context) {
	warnings := h.buildWarnings(parseUintQuery(c, "provider_id"))
	c.JSON(http.StatusOK, dto.WarningListResponse{
		Warnings: warnings,
		Total:    len(warnings),
	})
}

// GetCostOverview получает сводку затрат по провайдерам
// @Summary Сводка затрат
// @Description Месячная и годовая стоимость лицензий по каждому провайдеру для графиков обзора
// @Tags Overview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CostOverviewResponse
// @Router /api/cost-overview [get]
func (h *APIHandler) GetCostOverview(c *gin.Context) {
	response := dto.CostOverviewResponse{Providers: []dto.ProviderCostResponse{}}

	providers, err := h.Repository.GetAllProviders()
	if err != nil {
		logrus.Error("cost-overview: error getting providers: ", err)
		c.JSON(http.StatusOK, response)
		return
	}

	for _, provider := range providers {
		rows, err := h.Repository.GetLicenseRows(provider.ID)
		if err != nil {
			// Сломанная выборка одного провайдера не валит всю сводку
			logrus.Errorf("cost-overview: error getting licenses for %s: %v", provider.Name, err)
			continue
		}

		cost := dto.ProviderCostResponse{
			ProviderID:   provider.ID,
			ProviderName: provider.Name,
			DisplayName:  provider.DisplayName,
			Licenses:     len(rows),
		}
		for _, row := range rows {
			cost.MonthlyCost += row.MonthlyCost
			if cost.Currency == "" {
				cost.Currency = row.Currency
			}
		}
		cost.YearlyCost = cost.MonthlyCost * 12

		response.Providers = append(response.Providers, cost)
		response.MonthlyTotal += cost.MonthlyCost
		response.YearlyTotal += cost.YearlyCost
	}

	c.JSON(http.StatusOK, response)
}
