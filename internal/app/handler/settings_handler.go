package handler

import (
	"net/http"

	"licensehub/internal/app/ds"
	"licensehub/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ НАСТРОЙКИ КОМПАНИИ ============

// ============ Способы оплаты ============

// GetPaymentMethods получает способы оплаты
// @Summary Способы оплаты
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PaymentMethodListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings/payment-methods [get]
func (h *APIHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.Repository.GetPaymentMethods()
	if err != nil {
		logrus.Error("Error getting payment methods: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения способов оплаты")
		return
	}

	response := dto.PaymentMethodListResponse{
		PaymentMethods: make([]dto.PaymentMethodResponse, len(methods)),
		Total:          len(methods),
	}
	for i, m := range methods {
		response.PaymentMethods[i] = dto.PaymentMethodResponse{
			ID:        m.ID,
			Name:      m.Name,
			Kind:      m.Kind,
			LastFour:  m.LastFour,
			IsDefault: m.IsDefault,
		}
	}
	c.JSON(http.StatusOK, response)
}

// CreatePaymentMethod создает способ оплаты
// @Summary Создание способа оплаты
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.SavePaymentMethodRequest true "Данные способа оплаты"
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/settings/payment-methods [post]
func (h *APIHandler) CreatePaymentMethod(c *gin.Context) {
	var request dto.SavePaymentMethodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	method := ds.PaymentMethod{
		Name:      request.Name,
		Kind:      request.Kind,
		LastFour:  request.LastFour,
		IsDefault: request.IsDefault,
	}
	if err := h.Repository.CreatePaymentMethod(&method); err != nil {
		logrus.Error("Error creating payment method: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка создания способа оплаты")
		return
	}

	h.successResponse(c, http.StatusCreated, "способ оплаты создан", gin.H{"id": method.ID})
}

// UpdatePaymentMethod изменяет способ оплаты
// @Summary Изменение способа оплаты
// @Tags Settings
// @Accept json
// @Produce json
// @Param id path int true "ID способа оплаты"
// @Param request body dto.SavePaymentMethodRequest true "Данные способа оплаты"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/settings/payment-methods/{id} [put]
func (h *APIHandler) UpdatePaymentMethod(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.SavePaymentMethodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	method, err := h.Repository.GetPaymentMethodByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	method.Name = request.Name
	method.Kind = request.Kind
	method.LastFour = request.LastFour
	method.IsDefault = request.IsDefault

	if err := h.Repository.UpdatePaymentMethod(method); err != nil {
		logrus.Error("Error updating payment method: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка изменения способа оплаты")
		return
	}

	h.successResponse(c, http.StatusOK, "способ оплаты изменён", nil)
}

// DeletePaymentMethod удаляет способ оплаты
// @Summary Удаление способа оплаты
// @Tags Settings
// @Produce json
// @Param id path int true "ID способа оплаты"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/settings/payment-methods/{id} [delete]
func (h *APIHandler) DeletePaymentMethod(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeletePaymentMethod(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "способ оплаты удалён", nil)
}

// ============ Правила уведомлений ============

// GetNotificationRules получает правила уведомлений
// @Summary Правила уведомлений
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.NotificationRuleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings/notification-rules [get]
func (h *APIHandler) GetNotificationRules(c *gin.Context) {
	rules, err := h.Repository.GetNotificationRules()
	if err != nil {
		logrus.Error("Error getting notification rules: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения правил уведомлений")
		return
	}

	response := dto.NotificationRuleListResponse{
		Rules: make([]dto.NotificationRuleResponse, len(rules)),
		Total: len(rules),
	}
	for i, r := range rules {
		response.Rules[i] = dto.NotificationRuleResponse{
			ID:          r.ID,
			WarningType: r.WarningType,
			Channel:     r.Channel,
			Threshold:   r.Threshold,
			Enabled:     r.Enabled,
		}
	}
	c.JSON(http.StatusOK, response)
}

// CreateNotificationRule создает правило уведомлений
// @Summary Создание правила уведомлений
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.SaveNotificationRuleRequest true "Данные правила"
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/settings/notification-rules [post]
func (h *APIHandler) CreateNotificationRule(c *gin.Context) {
	var request dto.SaveNotificationRuleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	channel := request.Channel
	if channel == "" {
		channel = "slack"
	}
	enabled := true
	if request.Enabled != nil {
		enabled = *request.Enabled
	}
	rule := ds.NotificationRule{
		WarningType: request.WarningType,
		Channel:     channel,
		Threshold:   request.Threshold,
		Enabled:     enabled,
	}
	if err := h.Repository.CreateNotificationRule(&rule); err != nil {
		logrus.Error("Error creating notification rule: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка создания правила уведомлений")
		return
	}

	h.successResponse(c, http.StatusCreated, "правило создано", gin.H{"id": rule.ID})
}

// UpdateNotificationRule изменяет правило уведомлений
// @Summary Изменение правила уведомлений
// @Tags Settings
// @Accept json
// @Produce json
// @Param id path int true "ID правила"
// @Param request body dto.SaveNotificationRuleRequest true "Данные правила"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/settings/notification-rules/{id} [put]
func (h *APIHandler) UpdateNotificationRule(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.SaveNotificationRuleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	rule, err := h.Repository.GetNotificationRuleByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	rule.WarningType = request.WarningType
	if request.Channel != "" {
		rule.Channel = request.Channel
	}
	rule.Threshold = request.Threshold
	if request.Enabled != nil {
		rule.Enabled = *request.Enabled
	}

	if err := h.Repository.UpdateNotificationRule(rule); err != nil {
		logrus.Error("Error updating notification rule: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка изменения правила уведомлений")
		return
	}

	h.successResponse(c, http.StatusOK, "правило изменено", nil)
}

// DeleteNotificationRule удаляет правило уведомлений
// @Summary Удаление правила уведомлений
// @Tags Settings
// @Produce json
// @Param id path int true "ID правила"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/settings/notification-rules/{id} [delete]
func (h *APIHandler) DeleteNotificationRule(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeleteNotificationRule(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "правило удалено", nil)
}

// ============ Пороги предупреждений ============

// GetThresholdSettings получает пороги предупреждений
// @Summary Пороги предупреждений
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ThresholdSettingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings/thresholds [get]
func (h *APIHandler) GetThresholdSettings(c *gin.Context) {
	settings, err := h.Repository.GetThresholdSettings()
	if err != nil {
		logrus.Error("Error getting thresholds: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения порогов")
		return
	}

	c.JSON(http.StatusOK, dto.ThresholdSettingsResponse{
		ExpiryWarningDays:     settings.ExpiryWarningDays,
		LowUtilizationDays:    settings.LowUtilizationDays,
		LowUtilizationPercent: settings.LowUtilizationPercent,
	})
}

// SaveThresholdSettings сохраняет пороги предупреждений
// @Summary Сохранение порогов
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.SaveThresholdSettingsRequest true "Пороги"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/settings/thresholds [put]
func (h *APIHandler) SaveThresholdSettings(c *gin.Context) {
	var request dto.SaveThresholdSettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	settings := ds.ThresholdSettings{
		ExpiryWarningDays:     request.ExpiryWarningDays,
		LowUtilizationDays:    request.LowUtilizationDays,
		LowUtilizationPercent: request.LowUtilizationPercent,
	}
	if err := h.Repository.SaveThresholdSettings(&settings); err != nil {
		logrus.Error("Error saving thresholds: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка сохранения порогов")
		return
	}

	h.successResponse(c, http.StatusOK, "пороги сохранены", nil)
}

// ============ Slack ============

// GetSlackConfig получает конфигурацию Slack
// @Summary Конфигурация Slack
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SlackConfigResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings/slack [get]
func (h *APIHandler) GetSlackConfig(c *gin.Context) {
	cfg, err := h.Repository.GetSlackConfig()
	if err != nil {
		logrus.Error("Error getting slack config: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения конфигурации Slack")
		return
	}

	c.JSON(http.StatusOK, dto.SlackConfigResponse{
		WebhookURL: cfg.WebhookURL,
		Channel:    cfg.Channel,
		Enabled:    cfg.Enabled,
	})
}

// SaveSlackConfig сохраняет конфигурацию Slack
// @Summary Сохранение конфигурации Slack
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.SaveSlackConfigRequest true "Конфигурация"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/settings/slack [put]
func (h *APIHandler) SaveSlackConfig(c *gin.Context) {
	var request dto.SaveSlackConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cfg := ds.SlackConfig{
		WebhookURL: request.WebhookURL,
		Channel:    request.Channel,
		Enabled:    request.Enabled,
	}
	if err := h.Repository.SaveSlackConfig(&cfg); err != nil {
		logrus.Error("Error saving slack config: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка сохранения конфигурации Slack")
		return
	}

	h.successResponse(c, http.StatusOK, "конфигурация Slack сохранена", nil)
}

// SendSlackTestMessage отправляет тестовое сообщение в Slack
// @Summary Тест Slack-интеграции
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/settings/slack/test [post]
func (h *APIHandler) SendSlackTestMessage(c *gin.Context) {
	cfg, err := h.Repository.GetSlackConfig()
	if err != nil {
		logrus.Error("Error getting slack config: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения конфигурации Slack")
		return
	}
	if cfg.WebhookURL == "" {
		h.errorResponse(c, http.StatusBadRequest, "webhook не настроен")
		return
	}

	if err := h.SlackClient.SendTestMessage(c.Request.Context(), cfg.WebhookURL, cfg.Channel); err != nil {
		logrus.Error("Error sending slack test message: ", err)
		h.errorResponse(c, http.StatusBadGateway, "ошибка отправки тестового сообщения")
		return
	}

	h.successResponse(c, http.StatusOK, "тестовое сообщение отправлено", nil)
}
