package repository

import (
	"errors"
	"fmt"
	"strings"

	"licensehub/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с сотрудниками

// EmployeeFilters — фильтры списка сотрудников
type EmployeeFilters struct {
	Department string
	Status     string
	Search     string
}

// GetEmployees возвращает сотрудников с фильтрацией по отделу, статусу и подстроке
func (r *Repository) GetEmployees(filters EmployeeFilters) ([]ds.Employee, error) {
	q := r.db.Model(&ds.Employee{})

	if filters.Department != "" {
		q = q.Where("department = ?", filters.Department)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.Search != "" {
		needle := "%" + strings.ToLower(filters.Search) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", needle, needle)
	}

	var employees []ds.Employee
	if err := q.Order("full_name").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployeeByID возвращает сотрудника по ID
func (r *Repository) GetEmployeeByID(id uint) (*ds.Employee, error) {
	var employee ds.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("сотрудник не найден")
		}
		return nil, err
	}
	return &employee, nil
}

// GetEmployeeByEmail ищет сотрудника по email (сопоставление при синхронизации)
func (r *Repository) GetEmployeeByEmail(email string) (*ds.Employee, error) {
	var employee ds.Employee
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // не найден — не ошибка, лицензия останется несопоставленной
		}
		return nil, err
	}
	return &employee, nil
}

// GetDepartments возвращает отсортированный список уникальных отделов
func (r *Repository) GetDepartments() ([]string, error) {
	var departments []string
	err := r.db.Model(&ds.Employee{}).
		Distinct("department").
		Where("department <> ''").
		Order("department").
		Pluck("department", &departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// CreateEmployee создаёт сотрудника (загрузка из HR-выгрузки или сидер)
func (r *Repository) CreateEmployee(employee *ds.Employee) error {
	return r.db.Create(employee).Error
}

// UpdateEmployee сохраняет изменения сотрудника
func (r *Repository) UpdateEmployee(employee *ds.Employee) error {
	return r.db.Save(employee).Error
}
