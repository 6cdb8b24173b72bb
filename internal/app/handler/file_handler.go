package handler

import (
	"io"
	"net/http"
	"strings"

	"licensehub/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ФАЙЛЫ ПРОВАЙДЕРА ============

const maxUploadSize = 20 << 20 // 20 МБ на файл контракта

// UploadProviderFile загружает файл провайдера
// @Summary Загрузка файла провайдера
// @Description Принимает multipart-файл (контракт, счёт) и кладёт его в хранилище
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID провайдера"
// @Param file formData file true "Файл"
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/providers/{id}/files [post]
func (h *APIHandler) UploadProviderFile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.Repository.GetProviderByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "файл не передан")
		return
	}
	if fileHeader.Size > maxUploadSize {
		h.errorResponse(c, http.StatusBadRequest, "файл слишком большой")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}

	objectName, err := h.MinIOClient.UploadProviderFile(c.Request.Context(), id, fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка загрузки файла")
		return
	}

	h.successResponse(c, http.StatusCreated, "файл загружен", gin.H{"object_name": objectName})
}

// ListProviderFiles получает файлы провайдера
// @Summary Файлы провайдера
// @Tags Files
// @Produce json
// @Param id path int true "ID провайдера"
// @Security BearerAuth
// @Success 200 {object} dto.ProviderFileListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/providers/{id}/files [get]
func (h *APIHandler) ListProviderFiles(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	files, err := h.MinIOClient.ListProviderFiles(c.Request.Context(), id)
	if err != nil {
		logrus.Error("Error listing files: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения файлов")
		return
	}

	response := dto.ProviderFileListResponse{
		Files: make([]dto.ProviderFileResponse, len(files)),
		Total: len(files),
	}
	for i, f := range files {
		response.Files[i] = dto.ProviderFileResponse{
			ObjectName: f.ObjectName,
			FileName:   f.FileName,
			Size:       f.Size,
			UploadedAt: f.UploadedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

// objectParam восстанавливает имя объекта из path-параметра.
// Имя объекта содержит '/', в URL он передаётся как ':'
func objectParam(c *gin.Context) string {
	return strings.ReplaceAll(c.Param("object"), ":", "/")
}

// DeleteProviderFile удаляет файл провайдера
// @Summary Удаление файла провайдера
// @Tags Files
// @Produce json
// @Param id path int true "ID провайдера"
// @Param object path string true "Имя объекта (слэш заменён на двоеточие)"
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/providers/{id}/files/{object} [delete]
func (h *APIHandler) DeleteProviderFile(c *gin.Context) {
	objectName := objectParam(c)

	exists, err := h.MinIOClient.FileExists(c.Request.Context(), objectName)
	if err != nil {
		logrus.Error("Error checking file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка проверки файла")
		return
	}
	if !exists {
		h.errorResponse(c, http.StatusNotFound, "файл не найден")
		return
	}

	if err := h.MinIOClient.DeleteFile(c.Request.Context(), objectName); err != nil {
		logrus.Error("Error deleting file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка удаления файла")
		return
	}

	h.successResponse(c, http.StatusOK, "файл удалён", nil)
}

// GetProviderFileURL получает временную ссылку на файл
// @Summary Ссылка на скачивание файла
// @Description Возвращает presigned URL со сроком жизни один час
// @Tags Files
// @Produce json
// @Param id path int true "ID провайдера"
// @Param object path string true "Имя объекта (слэш заменён на двоеточие)"
// @Security BearerAuth
// @Success 200 {object} dto.FileURLResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/providers/{id}/files/{object}/url [get]
func (h *APIHandler) GetProviderFileURL(c *gin.Context) {
	objectName := objectParam(c)

	exists, err := h.MinIOClient.FileExists(c.Request.Context(), objectName)
	if err != nil {
		logrus.Error("Error checking file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка проверки файла")
		return
	}
	if !exists {
		h.errorResponse(c, http.StatusNotFound, "файл не найден")
		return
	}

	url, err := h.MinIOClient.GetFileURL(c.Request.Context(), objectName)
	if err != nil {
		logrus.Error("Error generating file URL: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения ссылки")
		return
	}

	c.JSON(http.StatusOK, dto.FileURLResponse{URL: url})
}
