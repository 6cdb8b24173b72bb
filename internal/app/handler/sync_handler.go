package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TriggerProviderSync запускает внеплановую синхронизацию провайдера
// @Summary Запуск синхронизации
// @Description Немедленная синхронизация лицензий с провайдером вне расписания
// @Tags Providers
// @Produce json
// @Param id path int true "ID провайдера"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/providers/{id}/sync [post]
func (h *APIHandler) TriggerProviderSync(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	provider, err := h.Repository.GetProviderByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	if provider.IsManual() {
		h.errorResponse(c, http.StatusBadRequest, "ручной провайдер не синхронизируется")
		return
	}

	run, err := h.Syncer.SyncProvider(c.Request.Context(), provider)
	if err != nil {
		logrus.Errorf("Error syncing provider %s: %v", provider.Name, err)
		// Журнальная запись с ошибкой возвращается клиенту, если она успела открыться
		if run != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"status":  "fail",
				"message": "ошибка синхронизации с провайдером",
				"data":    run,
			})
			return
		}
		h.errorResponse(c, http.StatusBadGateway, "ошибка синхронизации с провайдером")
		return
	}

	h.successResponse(c, http.StatusOK, "синхронизация завершена", run)
}
