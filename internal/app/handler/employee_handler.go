package handler

import (
	"net/http"

	"licensehub/internal/app/dto"
	"licensehub/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН СОТРУДНИКИ ============

// GetEmployees получает список сотрудников
// @Summary Список сотрудников
// @Description Возвращает сотрудников с фильтрацией по отделу, статусу и подстроке поиска
// @Tags Employees
// @Produce json
// @Param department query string false "Фильтр по отделу"
// @Param status query string false "Фильтр по статусу (active/offboarded)"
// @Param q query string false "Поиск по имени или email"
// @Security BearerAuth
// @Success 200 {object} dto.EmployeeListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/employees [get]
func (h *APIHandler) GetEmployees(c *gin.Context) {
	employees, err := h.Repository.GetEmployees(repository.EmployeeFilters{
		Department: c.Query("department"),
		Status:     c.Query("status"),
		Search:     c.Query("q"),
	})
	if err != nil {
		logrus.Error("Error getting employees: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения сотрудников")
		return
	}

	response := dto.EmployeeListResponse{
		Employees: make([]dto.EmployeeResponse, len(employees)),
		Total:     len(employees),
	}
	for i, e := range employees {
		response.Employees[i] = dto.EmployeeResponse{
			ID:         e.ID,
			FullName:   e.FullName,
			Email:      e.Email,
			Department: e.Department,
			ManagerID:  e.ManagerID,
			Status:     e.Status,
			StartDate:  e.StartDate,
		}
	}
	c.JSON(http.StatusOK, response)
}

// GetDepartments получает список отделов
// @Summary Список отделов
// @Description Возвращает уникальные отделы сотрудников для фильтров
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DepartmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/departments [get]
func (h *APIHandler) GetDepartments(c *gin.Context) {
	departments, err := h.Repository.GetDepartments()
	if err != nil {
		logrus.Error("Error getting departments: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения отделов")
		return
	}

	c.JSON(http.StatusOK, dto.DepartmentListResponse{Departments: departments})
}
