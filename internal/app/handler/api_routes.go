package handler

import (
	"licensehub/internal/app/middleware"
	"licensehub/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	anyUser := authMiddleware.WithAuthCheck(role.Viewer, role.Manager, role.Admin)
	managers := authMiddleware.WithAuthCheck(role.Manager, role.Admin)
	admins := authMiddleware.WithAuthCheck(role.Admin)

	// ============ Провайдеры (Providers) ============
	providers := api.Group("/providers")
	{
		providers.GET("", anyUser, h.GetProviders)
		providers.GET("/:id", anyUser, h.GetProvider)
		providers.POST("", managers, h.CreateProvider)           // POST создание (ручной провайдер)
		providers.PUT("/:id", managers, h.UpdateProviderConfig)  // PUT изменение config-а
		providers.DELETE("/:id", admins, h.DeleteProvider)       // DELETE мягкое удаление
		providers.GET("/:id/sync-runs", anyUser, h.GetSyncRuns)  // журнал синхронизаций
		providers.POST("/:id/sync", managers, h.TriggerProviderSync)

		// Цены провайдера
		providers.GET("/:id/pricing", anyUser, h.GetProviderPricing)
		providers.PUT("/:id/pricing", managers, h.SaveProviderPricing) // батч-сохранение черновика

		// Файлы провайдера (контракты, счета)
		providers.GET("/:id/files", anyUser, h.ListProviderFiles)
		providers.POST("/:id/files", managers, h.UploadProviderFile)
		providers.DELETE("/:id/files/:object", managers, h.DeleteProviderFile)
		providers.GET("/:id/files/:object/url", anyUser, h.GetProviderFileURL)
	}

	// ============ Лицензии (Licenses) ============
	licenses := api.Group("/licenses")
	{
		licenses.GET("", anyUser, h.GetLicenses)
		licenses.GET("/categorized", anyUser, h.GetCategorizedLicenses)

		// CRUD для лицензий ручных провайдеров
		licenses.POST("", managers, h.CreateManualLicense)
		licenses.PUT("/:id", managers, h.UpdateLicense)
		licenses.DELETE("/:id", managers, h.DeleteManualLicense)
		licenses.PUT("/:id/assign", managers, h.AssignManualLicense)
		licenses.PUT("/:id/unassign", managers, h.UnassignManualLicense)

		// Массовые операции над выбранными лицензиями
		licenses.POST("/bulk-remove", managers, h.BulkRemoveFromProvider)
		licenses.POST("/bulk-delete", managers, h.BulkDeleteLicenses)
		licenses.POST("/bulk-unassign", managers, h.BulkUnassignLicenses)
	}

	// ============ Пакетные контракты (Packages) ============
	packages := api.Group("/packages")
	{
		packages.GET("", anyUser, h.GetPackages)
		packages.GET("/:id", anyUser, h.GetPackage)
		packages.POST("", managers, h.CreatePackage)
		packages.PUT("/:id", managers, h.UpdatePackage)
		packages.DELETE("/:id", managers, h.DeletePackage)
	}

	// ============ Сотрудники (Employees) ============
	employees := api.Group("/employees")
	{
		employees.GET("", anyUser, h.GetEmployees)
	}
	api.GET("/departments", anyUser, h.GetDepartments)

	// ============ Обзор и предупреждения ============
	api.GET("/warnings", anyUser, h.GetWarnings)
	api.GET("/cost-overview", anyUser, h.GetCostOverview)

	// ============ Настройки компании (Settings) ============
	settings := api.Group("/settings", admins)
	{
		settings.GET("/payment-methods", h.GetPaymentMethods)
		settings.POST("/payment-methods", h.CreatePaymentMethod)
		settings.PUT("/payment-methods/:id", h.UpdatePaymentMethod)
		settings.DELETE("/payment-methods/:id", h.DeletePaymentMethod)

		settings.GET("/notification-rules", h.GetNotificationRules)
		settings.POST("/notification-rules", h.CreateNotificationRule)
		settings.PUT("/notification-rules/:id", h.UpdateNotificationRule)
		settings.DELETE("/notification-rules/:id", h.DeleteNotificationRule)

		settings.GET("/thresholds", h.GetThresholdSettings)
		settings.PUT("/thresholds", h.SaveThresholdSettings)

		settings.GET("/slack", h.GetSlackConfig)
		settings.PUT("/slack", h.SaveSlackConfig)
		settings.POST("/slack/test", h.SendSlackTestMessage)
	}

	// ============ Аутентификация (публичные эндпоинты) ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.GET("/profile", anyUser, h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", anyUser, h.AuthHandler.UpdateProfile)
		auth.POST("/logout", anyUser, h.AuthHandler.LogoutUser)
	}

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
