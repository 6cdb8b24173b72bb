package handler

import (
	"net/http"
	"time"

	"licensehub/internal/app/ds"
	"licensehub/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПАКЕТНЫЕ КОНТРАКТЫ ============

func (h *APIHandler) packageResponse(pkg ds.LicensePackage) dto.PackageResponse {
	used, err := h.Repository.CountActiveLicenses(pkg.ProviderID)
	if err != nil {
		logrus.Warn("Error counting active licenses: ", err)
	}
	return dto.PackageResponse{
		ID:                   pkg.ID,
		ProviderID:           pkg.ProviderID,
		Name:                 pkg.Name,
		TotalSeats:           pkg.TotalSeats,
		UsedSeats:            used,
		CostPerSeat:          pkg.CostPerSeat,
		Currency:             pkg.Currency,
		ContractStart:        pkg.ContractStart,
		ContractEnd:          pkg.ContractEnd,
		AutoRenew:            pkg.AutoRenew,
		CancellationDeadline: pkg.CancellationDeadline,
		CancelledAt:          pkg.CancelledAt,
	}
}

// GetPackages получает пакетные контракты
// @Summary Список пакетных контрактов
// @Tags Packages
// @Produce json
// @Param provider_id query int false "Фильтр по провайдеру"
// @Security BearerAuth
// @Success 200 {object} dto.PackageListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/packages [get]
func (h *APIHandler) GetPackages(c *gin.Context) {
	packages, err := h.Repository.GetPackages(parseUintQuery(c, "provider_id"))
	if err != nil {
		logrus.Error("Error getting packages: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения контрактов")
		return
	}

	response := dto.PackageListResponse{
		Packages: make([]dto.PackageResponse, len(packages)),
		Total:    len(packages),
	}
	for i, pkg := range packages {
		response.Packages[i] = h.packageResponse(pkg)
	}
	c.JSON(http.StatusOK, response)
}

// GetPackage получает один контракт
// @Summary Контракт по ID
// @Tags Packages
// @Produce json
// @Param id path int true "ID контракта"
// @Security BearerAuth
// @Success 200 {object} dto.PackageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id} [get]
func (h *APIHandler) GetPackage(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.Repository.GetPackageByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, h.packageResponse(*pkg))
}

// CreatePackage создает пакетный контракт
// @Summary Создание контракта
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Данные контракта"
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/packages [post]
func (h *APIHandler) CreatePackage(c *gin.Context) {
	var request dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetProviderByID(request.ProviderID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}
	pkg := ds.LicensePackage{
		ProviderID:           request.ProviderID,
		Name:                 request.Name,
		TotalSeats:           request.TotalSeats,
		CostPerSeat:          request.CostPerSeat,
		Currency:             currency,
		ContractStart:        request.ContractStart,
		ContractEnd:          request.ContractEnd,
		AutoRenew:            request.AutoRenew,
		CancellationDeadline: request.CancellationDeadline,
		CreatedAt:            time.Now(),
	}
	if err := h.Repository.CreatePackage(&pkg); err != nil {
		logrus.Error("Error creating package: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка создания контракта")
		return
	}

	h.successResponse(c, http.StatusCreated, "контракт создан", gin.H{"id": pkg.ID})
}

// UpdatePackage изменяет контракт
// @Summary Изменение контракта
// @Tags Packages
// @Accept json
// @Produce json
// @Param id path int true "ID контракта"
// @Param request body dto.UpdatePackageRequest true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id} [put]
func (h *APIHandler) UpdatePackage(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.Repository.GetPackageByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	if request.Name != nil {
		pkg.Name = *request.Name
	}
	if request.TotalSeats != nil {
		pkg.TotalSeats = *request.TotalSeats
	}
	if request.CostPerSeat != nil {
		pkg.CostPerSeat = *request.CostPerSeat
	}
	if request.ContractStart != nil {
		pkg.ContractStart = request.ContractStart
	}
	if request.ContractEnd != nil {
		pkg.ContractEnd = request.ContractEnd
	}
	if request.AutoRenew != nil {
		pkg.AutoRenew = *request.AutoRenew
	}
	if request.CancellationDeadline != nil {
		pkg.CancellationDeadline = request.CancellationDeadline
	}
	if request.CancelledAt != nil {
		pkg.CancelledAt = request.CancelledAt
	}

	if err := h.Repository.UpdatePackage(pkg); err != nil {
		logrus.Error("Error updating package: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка изменения контракта")
		return
	}

	h.successResponse(c, http.StatusOK, "контракт изменён", nil)
}

// DeletePackage удаляет контракт
// @Summary Удаление контракта
// @Tags Packages
// @Produce json
// @Param id path int true "ID контракта"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id} [delete]
func (h *APIHandler) DeletePackage(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeletePackage(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "контракт удалён", nil)
}
