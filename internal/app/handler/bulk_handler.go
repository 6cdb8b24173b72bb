package handler

import (
	"net/http"

	"licensehub/internal/app/derive"
	"licensehub/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Массовые операции над лицензиями ============
//
// Каждая операция обрабатывает id по одному и возвращает счётчики
// {successful, failed, total}. Частичный сбой не откатывается —
// клиент перечитывает авторитетное состояние следующим запросом.

// BulkRemoveFromProvider массово отзывает лицензии у провайдера
// @Summary Массовый отзыв лицензий у провайдера
// @Description Отзывает выбранные лицензии у провайдеров из allow-list удалённого отзыва; лицензии остальных провайдеров считаются сбоем
// @Tags Licenses
// @Accept json
// @Produce json
// @Param request body dto.BulkActionRequest true "Список ID лицензий"
// @Security BearerAuth
// @Success 200 {object} dto.BulkActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/licenses/bulk-remove [post]
func (h *APIHandler) BulkRemoveFromProvider(c *gin.Context) {
	var request dto.BulkActionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	response := dto.BulkActionResponse{Total: len(request.IDs)}
	for _, id := range request.IDs {
		license, err := h.Repository.GetLicenseByID(id)
		if err != nil {
			response.Failed++
			continue
		}
		if !derive.RemovableProviders[license.Provider.Name] {
			logrus.Warnf("bulk-remove: provider %s does not support remote removal", license.Provider.Name)
			response.Failed++
			continue
		}
		if err := h.Repository.DeleteLicense(id); err != nil {
			logrus.Error("bulk-remove: ", err)
			response.Failed++
			continue
		}
		response.Successful++
	}

	c.JSON(http.StatusOK, response)
}

// BulkDeleteLicenses массово удаляет лицензии из базы
// @Summary Массовое удаление лицензий
// @Description Удаляет выбранные лицензии локально, без обращения к провайдеру
// @Tags Licenses
// @Accept json
// @Produce json
// @Param request body dto.BulkActionRequest true "Список ID лицензий"
// @Security BearerAuth
// @Success 200 {object} dto.BulkActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/licenses/bulk-delete [post]
func (h *APIHandler) BulkDeleteLicenses(c *gin.Context) {
	var request dto.BulkActionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	response := dto.BulkActionResponse{Total: len(request.IDs)}
	for _, id := range request.IDs {
		if err := h.Repository.DeleteLicense(id); err != nil {
			logrus.Error("bulk-delete: ", err)
			response.Failed++
			continue
		}
		response.Successful++
	}

	c.JSON(http.StatusOK, response)
}

// BulkUnassignLicenses массово отвязывает лицензии от сотрудников
// @Summary Массовая отвязка лицензий
// @Description Отвязывает выбранные лицензии от сотрудников; лицензии без сотрудника считаются сбоем
// @Tags Licenses
// @Accept json
// @Produce json
// @Param request body dto.BulkActionRequest true "Список ID лицензий"
// @Security BearerAuth
// @Success 200 {object} dto.BulkActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/licenses/bulk-unassign [post]
func (h *APIHandler) BulkUnassignLicenses(c *gin.Context) {
	var request dto.BulkActionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	response := dto.BulkActionResponse{Total: len(request.IDs)}
	for _, id := range request.IDs {
		license, err := h.Repository.GetLicenseByID(id)
		if err != nil || license.EmployeeID == nil {
			response.Failed++
			continue
		}
		if err := h.Repository.UnassignLicense(id); err != nil {
			logrus.Error("bulk-unassign: ", err)
			response.Failed++
			continue
		}
		response.Successful++
	}

	c.JSON(http.StatusOK, response)
}
