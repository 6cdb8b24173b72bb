package handler

import (
	"errors"
	"net/http"
	"time"

	"licensehub/internal/app/derive"
	"licensehub/internal/app/ds"
	"licensehub/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЛИЦЕНЗИИ ============

// GetLicenses получает плоский список лицензий
// @Summary Список лицензий
// @Description Возвращает лицензии с фильтрацией по провайдеру, статусу и подстроке поиска
// @Tags Licenses
// @Produce json
// @Param provider_id query int false "Фильтр по провайдеру"
// @Param status query string false "Фильтр по статусу (active/inactive)"
// @Param q query string false "Поиск по подстроке"
// @Security BearerAuth
// @Success 200 {object} dto.LicenseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/licenses [get]
func (h *APIHandler) GetLicenses(c *gin.Context) {
	rows, err := h.Repository.GetLicenseRows(parseUintQuery(c, "provider_id"))
	if err != nil {
		logrus.Error("Error getting licenses: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения лицензий")
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]derive.LicenseRow, 0, len(rows))
		for _, row := range rows {
			if row.Status == status {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	rows = derive.Filter(rows, c.Query("q"))

	c.JSON(http.StatusOK, dto.LicenseListResponse{
		Licenses: rows,
		Total:    len(rows),
	})
}

// GetCategorizedLicenses получает лицензии, разбитые по корзинам
// @Summary Разбиение лицензий по корзинам
// @Description Возвращает серверное разбиение assigned/unassigned/external/service_accounts со статистикой. Поиск, сортировка и пагинация применяются внутри корзин
// @Tags Licenses
// @Produce json
// @Param provider_id query int false "Фильтр по провайдеру"
// @Param q query string false "Поиск по подстроке"
// @Param department query string false "Фильтр по отделу сотрудника"
// @Param sort query string false "Колонка сортировки" Enums(provider_name, external_user_id, employee_name, monthly_cost)
// @Param dir query string false "Направление сортировки" Enums(asc, desc)
// @Param page query int false "Номер страницы корзины assigned (с 1)"
// @Security BearerAuth
// @Success 200 {object} dto.CategorizedLicensesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/licenses/categorized [get]
func (h *APIHandler) GetCategorizedLicenses(c *gin.Context) {
	rows, err := h.Repository.GetLicenseRows(parseUintQuery(c, "provider_id"))
	if err != nil {
		logrus.Error("Error getting licenses: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения лицензий")
		return
	}

	// Статистика считается по корзинам до поиска — цифры карточек
	// не прыгают при вводе в строку поиска
	categorized := derive.Categorize(rows)
	stats := derive.ComputeStats(categorized)

	search := c.Query("q")
	department := c.Query("department")
	sortColumn := c.Query("sort")
	sortDir := c.DefaultQuery("dir", "asc")
	page := parseIntQuery(c, "page", 1)

	refine := func(bucket []derive.LicenseRow) []derive.LicenseRow {
		bucket = derive.Filter(bucket, search)
		bucket = derive.FilterDepartment(bucket, department)
		return derive.Sort(bucket, sortColumn, sortDir)
	}

	// Пагинация применяется только к таблице assigned; корзины
	// unassigned и external рендерятся целиком двумя таблицами
	assigned := derive.Paginate(refine(categorized.Assigned), page, derive.PageSize)

	unassignedActive, unassignedInactive := derive.SplitActive(refine(categorized.Unassigned))
	externalActive, externalInactive := derive.SplitActive(refine(categorized.External))

	c.JSON(http.StatusOK, dto.CategorizedLicensesResponse{
		Assigned: assigned,
		Unassigned: dto.SplitBucket{
			Active:   unassignedActive,
			Inactive: unassignedInactive,
		},
		External: dto.SplitBucket{
			Active:   externalActive,
			Inactive: externalInactive,
		},
		ServiceAccounts: refine(categorized.ServiceAccounts),
		Stats:           stats,
	})
}

// requireManualProvider проверяет, что лицензией можно управлять локально
func (h *APIHandler) requireManualProvider(providerID uint) (*ds.Provider, error) {
	provider, err := h.Repository.GetProviderByID(providerID)
	if err != nil {
		return nil, err
	}
	if !provider.IsManual() {
		return nil, errors.New("провайдер синхронизируется по API, локальное изменение лицензий запрещено")
	}
	return provider, nil
}

// CreateManualLicense создает лицензию ручного провайдера
// @Summary Создание лицензии
// @Description Создаёт лицензию для ручного провайдера; для API-провайдеров лицензии приходят синхронизацией
// @Tags Licenses
// @Accept json
// @Produce json
// @Param request body dto.CreateLicenseRequest true "Данные лицензии"
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/licenses [post]
func (h *APIHandler) CreateManualLicense(c *gin.Context) {
	var request dto.CreateLicenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.requireManualProvider(request.ProviderID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}
	license := ds.License{
		ProviderID:     request.ProviderID,
		ExternalUserID: request.ExternalUserID,
		LicenseType:    request.LicenseType,
		MonthlyCost:    request.MonthlyCost,
		Currency:       currency,
		Status:         derive.StatusActive,
		EmployeeID:     request.EmployeeID,
		CreatedAt:      time.Now(),
	}
	if err := h.Repository.CreateLicense(&license); err != nil {
		logrus.Error("Error creating license: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка создания лицензии")
		return
	}

	h.successResponse(c, http.StatusCreated, "лицензия создана", gin.H{"id": license.ID})
}

// UpdateLicense изменяет поля лицензии
// @Summary Изменение лицензии
// @Description Частичное обновление статуса, типа, стоимости и флагов лицензии
// @Tags Licenses
// @Accept json
// @Produce json
// @Param id path int true "ID лицензии"
// @Param request body dto.UpdateLicenseRequest true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/licenses/{id} [put]
func (h *APIHandler) UpdateLicense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.UpdateLicenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	license, err := h.Repository.GetLicenseByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	if request.Status != nil {
		license.Status = *request.Status
	}
	if request.LicenseType != nil {
		license.LicenseType = *request.LicenseType
	}
	if request.MonthlyCost != nil {
		license.MonthlyCost = *request.MonthlyCost
	}
	if request.IsServiceAccount != nil {
		license.IsServiceAccount = *request.IsServiceAccount
	}
	if request.IsAdminAccount != nil {
		license.IsAdminAccount = *request.IsAdminAccount
	}

	if err := h.Repository.UpdateLicense(license); err != nil {
		logrus.Error("Error updating license: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка изменения лицензии")
		return
	}

	h.successResponse(c, http.StatusOK, "лицензия изменена", nil)
}

// DeleteManualLicense удаляет лицензию ручного провайдера
// @Summary Удаление лицензии
// @Tags Licenses
// @Produce json
// @Param id path int true "ID лицензии"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/licenses/{id} [delete]
func (h *APIHandler) DeleteManualLicense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	license, err := h.Repository.GetLicenseByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	if _, err := h.requireManualProvider(license.ProviderID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeleteLicense(id); err != nil {
		logrus.Error("Error deleting license: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка удаления лицензии")
		return
	}

	h.successResponse(c, http.StatusOK, "лицензия удалена", nil)
}

// AssignManualLicense привязывает лицензию к сотруднику
// @Summary Привязка лицензии к сотруднику
// @Tags Licenses
// @Accept json
// @Produce json
// @Param id path int true "ID лицензии"
// @Param request body dto.AssignLicenseRequest true "Сотрудник"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/licenses/{id}/assign [put]
func (h *APIHandler) AssignManualLicense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.AssignLicenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	license, err := h.Repository.GetLicenseByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	if _, err := h.requireManualProvider(license.ProviderID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.AssignLicense(id, request.EmployeeID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "лицензия привязана к сотруднику", nil)
}

// UnassignManualLicense отвязывает лицензию от сотрудника
// @Summary Отвязка лицензии от сотрудника
// @Tags Licenses
// @Produce json
// @Param id path int true "ID лицензии"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/licenses/{id}/unassign [put]
func (h *APIHandler) UnassignManualLicense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	license, err := h.Repository.GetLicenseByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	if _, err := h.requireManualProvider(license.ProviderID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.UnassignLicense(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "лицензия отвязана от сотрудника", nil)
}
