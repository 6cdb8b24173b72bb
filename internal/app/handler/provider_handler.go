package handler

import (
	"net/http"

	"licensehub/internal/app/ds"
	"licensehub/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПРОВАЙДЕРЫ ============

func providerResponse(p ds.Provider) dto.ProviderResponse {
	return dto.ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: p.DisplayName,
		IsManual:    p.IsManual(),
		Config:      p.Config,
	}
}

// GetProviders получает список провайдеров
// @Summary Список провайдеров
// @Tags Providers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProviderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/providers [get]
func (h *APIHandler) GetProviders(c *gin.Context) {
	providers, err := h.Repository.GetAllProviders()
	if err != nil {
		logrus.Error("Error getting providers: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения провайдеров")
		return
	}

	response := dto.ProviderListResponse{
		Providers: make([]dto.ProviderResponse, len(providers)),
		Total:     len(providers),
	}
	for i, p := range providers {
		response.Providers[i] = providerResponse(p)
	}
	c.JSON(http.StatusOK, response)
}

// GetProvider получает одного провайдера
// @Summary Провайдер по ID
// @Tags Providers
// @Produce json
// @Param id path int true "ID провайдера"
// @Security BearerAuth
// @Success 200 {object} dto.ProviderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/providers/{id} [get]
func (h *APIHandler) GetProvider(c *gin.Context) {
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
	c.JSON(http.StatusOK, providerResponse(*provider))
}

// CreateProvider создает ручного провайдера
// @Summary Создание провайдера
// @Description Создаёт провайдера с ручным вводом лицензий; API-интеграции настраиваются через config
// @Tags Providers
// @Accept json
// @Produce json
// @Param request body dto.CreateProviderRequest true "Данные провайдера"
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/providers [post]
func (h *APIHandler) CreateProvider(c *gin.Context) {
	var request dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	config := request.Config
	if config == nil {
		config = map[string]interface{}{"provider_type": ds.ProviderTypeManual}
	}
	provider := ds.Provider{
		Name:        request.Name,
		DisplayName: request.DisplayName,
		Config:      config,
	}
	if err := h.Repository.CreateProvider(&provider); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusCreated, "провайдер создан", gin.H{"id": provider.ID})
}

// UpdateProviderConfig изменяет провайдера
// @Summary Изменение провайдера
// @Description Обновляет отображаемое имя и config-мешок интеграции
// @Tags Providers
// @Accept json
// @Produce json
// @Param id path int true "ID провайдера"
// @Param request body dto.UpdateProviderConfigRequest true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/providers/{id} [put]
func (h *APIHandler) UpdateProviderConfig(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.UpdateProviderConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	provider, err := h.Repository.GetProviderByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	if request.DisplayName != "" {
		provider.DisplayName = request.DisplayName
	}
	if request.Config != nil {
		provider.Config = request.Config
	}

	if err := h.Repository.UpdateProvider(provider); err != nil {
		logrus.Error("Error updating provider: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка изменения провайдера")
		return
	}

	h.successResponse(c, http.StatusOK, "провайдер изменён", nil)
}

// DeleteProvider мягко удаляет провайдера
// @Summary Удаление провайдера
// @Tags Providers
// @Produce json
// @Param id path int true "ID провайдера"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/providers/{id} [delete]
func (h *APIHandler) DeleteProvider(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeleteProvider(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "провайдер удалён", nil)
}

// GetSyncRuns получает журнал синхронизаций провайдера
// @Summary Журнал синхронизаций
// @Tags Providers
// @Produce json
// @Param id path int true "ID провайдера"
// @Param limit query int false "Сколько последних запусков вернуть"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/providers/{id}/sync-runs [get]
func (h *APIHandler) GetSyncRuns(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	runs, err := h.Repository.GetSyncRuns(id, parseIntQuery(c, "limit", 20))
	if err != nil {
		logrus.Error("Error getting sync runs: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения журнала синхронизаций")
		return
	}

	h.successResponse(c, http.StatusOK, "", runs)
}
