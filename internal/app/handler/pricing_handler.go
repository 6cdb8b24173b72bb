package handler

import (
	"net/http"
	"time"

	"licensehub/internal/app/ds"
	"licensehub/internal/app/dto"
	"licensehub/internal/app/pricing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЦЕНЫ ============

func pricingEntry(record ds.LicenseTypePricing) dto.PricingEntry {
	entry := dto.PricingEntry{
		LicenseType:      record.LicenseType,
		Cost:             record.Cost,
		Currency:         record.Currency,
		BillingCycle:     record.BillingCycle,
		PaymentFrequency: record.PaymentFrequency,
		MaxUsers:         record.MaxUsers,
		NextBillingDate:  record.NextBillingDate,
		Notes:            record.Notes,
	}
	if record.DisplayName != nil {
		entry.DisplayName = *record.DisplayName
	}

	// Расчётные поля для отображения: хранимая запись не меняется
	entry.MonthlyEquivalent = pricing.Round2(pricing.MonthlyEquivalent(record.Cost, record.BillingCycle))
	entry.YearlyEquivalent = pricing.Round2(pricing.YearlyEquivalent(record.Cost, record.BillingCycle))
	if record.LicenseType == pricing.PackageKey {
		perSeat := pricing.PerSeatCost(record.Cost, record.MaxUsers)
		entry.PerSeatCost = pricing.Round2(perSeat)
		entry.MonthlyEquivalent = pricing.Round2(pricing.MonthlyEquivalent(perSeat, record.BillingCycle))
		entry.YearlyEquivalent = pricing.Round2(pricing.YearlyEquivalent(perSeat, record.BillingCycle))
	}
	return entry
}

// GetProviderPricing получает карту цен провайдера
// @Summary Цены провайдера
// @Description Возвращает записи цен по ключу типа лицензии; ключ __package__ зарезервирован за пакетной ценой
// @Tags Pricing
// @Produce json
// @Param id path int true "ID провайдера"
// @Security BearerAuth
// @Success 200 {object} dto.PricingMapResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/providers/{id}/pricing [get]
func (h *APIHandler) GetProviderPricing(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.Repository.GetProviderByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	records, err := h.Repository.GetProviderPricing(id)
	if err != nil {
		logrus.Error("Error getting pricing: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения цен")
		return
	}

	response := dto.PricingMapResponse{
		ProviderID: id,
		Pricing:    make(map[string]dto.PricingEntry, len(records)),
	}
	for key, record := range records {
		response.Pricing[key] = pricingEntry(record)
	}
	c.JSON(http.StatusOK, response)
}

// SaveProviderPricing батч-сохранение черновика цен
// @Summary Сохранение цен провайдера
// @Description Сохраняет черновик редактора цен одним батчем и пересчитывает месячную стоимость лицензий провайдера
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path int true "ID провайдера"
// @Param request body dto.SavePricingRequest true "Черновик цен по ключу типа лицензии"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/providers/{id}/pricing [put]
func (h *APIHandler) SaveProviderPricing(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.Repository.GetProviderByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	var request dto.SavePricingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	records := make([]ds.LicenseTypePricing, 0, len(request.Pricing))
	for licenseType, draft := range request.Pricing {
		currency := draft.Currency
		if currency == "" {
			currency = "USD"
		}
		billingCycle := draft.BillingCycle
		if billingCycle == "" {
			billingCycle = pricing.CycleMonthly
		}
		record := ds.LicenseTypePricing{
			ProviderID:       id,
			LicenseType:      licenseType,
			Cost:             draft.Cost,
			Currency:         currency,
			BillingCycle:     billingCycle,
			PaymentFrequency: draft.PaymentFrequency,
			MaxUsers:         draft.MaxUsers,
			NextBillingDate:  draft.NextBillingDate,
			Notes:            draft.Notes,
			UpdatedAt:        time.Now(),
		}
		if draft.DisplayName != "" {
			record.DisplayName = &draft.DisplayName
		}
		records = append(records, record)
	}

	if err := h.Repository.SaveProviderPricing(id, records); err != nil {
		logrus.Error("Error saving pricing: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка сохранения цен")
		return
	}

	h.successResponse(c, http.StatusOK, "цены сохранены", nil)
}
