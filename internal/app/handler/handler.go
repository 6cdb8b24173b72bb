package handler

import (
	"fmt"
	"strconv"

	"licensehub/internal/app/dto"
	"licensehub/internal/app/notify"
	"licensehub/internal/app/repository"
	"licensehub/internal/app/role"
	"licensehub/internal/app/storage"
	"licensehub/internal/app/syncer"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	SlackClient *notify.SlackClient
	Syncer      *syncer.Syncer
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, slackClient *notify.SlackClient, sync *syncer.Syncer, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		SlackClient: slackClient,
		Syncer:      sync,
		AuthHandler: authHandler,
	}
}

// userFromContext читает идентификатор и роль текущего пользователя,
// сохранённые middleware-ом авторизации
func userFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Viewer, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("userFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// parseIDParam читает числовой path-параметр
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("некорректный идентификатор")
	}
	return uint(id), nil
}

// parseUintQuery читает необязательный числовой query-параметр, 0 если не задан
func parseUintQuery(c *gin.Context, name string) uint {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}
	return uint(parsed)
}

// parseIntQuery читает необязательный числовой query-параметр с дефолтом
func parseIntQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}
