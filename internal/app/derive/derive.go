package derive

import (
	"sort"
	"strings"
	"time"
)

// Пакет derive содержит чистые функции над выборкой лицензий:
// разбиение на категории, поиск, сортировка, пагинация.
// Функции не ходят в БД и не имеют побочных эффектов.

// LicenseRow — плоское представление лицензии со склеенными данными
// провайдера и сотрудника, единица работы всех функций пакета.
// ProviderName — отображаемое имя для таблиц и поиска,
// ProviderInternalName — внутреннее имя (google_workspace, manual, ...)
// для проверок по allow-list-ам
type LicenseRow struct {
	ID                   uint   `json:"id"`
	ProviderID           uint   `json:"provider_id"`
	ProviderName         string `json:"provider_name"`
	ProviderInternalName string `json:"provider_internal_name"`
	ExternalUserID       string  `json:"external_user_id"`
	EmployeeID           *uint   `json:"employee_id,omitempty"`
	EmployeeName         string  `json:"employee_name,omitempty"`
	EmployeeEmail        string  `json:"employee_email,omitempty"`
	Department           string  `json:"department,omitempty"`
	Status               string  `json:"status"`
	LicenseType          string  `json:"license_type"`
	LicenseTypeName      string  `json:"license_type_name,omitempty"`
	MonthlyCost          float64 `json:"monthly_cost"`
	Currency             string  `json:"currency"`

	IsServiceAccount   bool       `json:"is_service_account"`
	IsAdminAccount     bool       `json:"is_admin_account"`
	EmployeeOffboarded bool       `json:"-"`
	LastActivityAt     *time.Time `json:"last_activity_at,omitempty"`
}

const StatusActive = "active"

// Categorized — разбиение лицензий на корзины, как его потребляет клиент
type Categorized struct {
	Assigned        []LicenseRow `json:"assigned"`
	Unassigned      []LicenseRow `json:"unassigned"`
	External        []LicenseRow `json:"external"`
	ServiceAccounts []LicenseRow `json:"service_accounts"`
}

// Stats — агрегаты по выборке
type Stats struct {
	Total            int     `json:"total"`
	Assigned         int     `json:"assigned"`
	Unassigned       int     `json:"unassigned"`
	External         int     `json:"external"`
	ServiceAccounts  int     `json:"service_accounts"`
	TotalMonthlyCost float64 `json:"total_monthly_cost"`
	Currency         string  `json:"currency"`
}

// Categorize разбивает лицензии на корзины. Правила, по приоритету:
// флаг сервисного аккаунта; сопоставленный активный сотрудник — assigned;
// сопоставленный уволенный — external; нет сопоставления — unassigned
// ("не найден в HRIS")
func Categorize(rows []LicenseRow) Categorized {
	c := Categorized{
		Assigned:        []LicenseRow{},
		Unassigned:      []LicenseRow{},
		External:        []LicenseRow{},
		ServiceAccounts: []LicenseRow{},
	}
	for _, row := range rows {
		switch {
		case row.IsServiceAccount:
			c.ServiceAccounts = append(c.ServiceAccounts, row)
		case row.EmployeeID == nil:
			c.Unassigned = append(c.Unassigned, row)
		case row.EmployeeOffboarded:
			c.External = append(c.External, row)
		default:
			c.Assigned = append(c.Assigned, row)
		}
	}
	return c
}

// ComputeStats считает агрегаты по уже разбитой выборке
func ComputeStats(c Categorized) Stats {
	s := Stats{
		Assigned:        len(c.Assigned),
		Unassigned:      len(c.Unassigned),
		External:        len(c.External),
		ServiceAccounts: len(c.ServiceAccounts),
	}
	s.Total = s.Assigned + s.Unassigned + s.External + s.ServiceAccounts

	for _, bucket := range [][]LicenseRow{c.Assigned, c.Unassigned, c.External, c.ServiceAccounts} {
		for _, row := range bucket {
			s.TotalMonthlyCost += row.MonthlyCost
			if s.Currency == "" && row.Currency != "" {
				s.Currency = row.Currency
			}
		}
	}
	return s
}

// Filter возвращает лицензии, у которых хотя бы одно из полей
// external_user_id, имя сотрудника, email сотрудника, имя провайдера,
// тип лицензии содержит подстроку search (без учёта регистра).
// Пустая строка поиска возвращает выборку без изменений
func Filter(rows []LicenseRow, search string) []LicenseRow {
	if search == "" {
		return rows
	}
	needle := strings.ToLower(search)

	out := make([]LicenseRow, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row LicenseRow, needle string) bool {
	fields := []string{
		row.ExternalUserID,
		row.EmployeeName,
		row.EmployeeEmail,
		row.ProviderName,
		row.LicenseType,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterDepartment оставляет лицензии сотрудников указанного отдела.
// Пустой фильтр возвращает выборку без изменений
func FilterDepartment(rows []LicenseRow, department string) []LicenseRow {
	if department == "" {
		return rows
	}
	out := make([]LicenseRow, 0, len(rows))
	for _, row := range rows {
		if row.Department == department {
			out = append(out, row)
		}
	}
	return out
}

// Колонки сортировки
const (
	SortProviderName   = "provider_name"
	SortExternalUserID = "external_user_id"
	SortEmployeeName   = "employee_name"
	SortMonthlyCost    = "monthly_cost"
)

// Sort возвращает новый срез, устойчиво отсортированный по колонке.
// Отсутствующие значения сортируются как пустая строка / ноль.
// Неизвестная колонка оставляет исходный порядок
func Sort(rows []LicenseRow, column, direction string) []LicenseRow {
	out := make([]LicenseRow, len(rows))
	copy(out, rows)

	var less func(a, b LicenseRow) bool
	switch column {
	case SortProviderName:
		less = func(a, b LicenseRow) bool { return a.ProviderName < b.ProviderName }
	case SortExternalUserID:
		less = func(a, b LicenseRow) bool { return a.ExternalUserID < b.ExternalUserID }
	case SortEmployeeName:
		less = func(a, b LicenseRow) bool { return a.EmployeeName < b.EmployeeName }
	case SortMonthlyCost:
		less = func(a, b LicenseRow) bool { return a.MonthlyCost < b.MonthlyCost }
	default:
		return out
	}

	desc := direction == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// PageSize — фиксированный размер страницы для таблицы assigned
const PageSize = 50

// Page — страница выборки с метаданными пагинации
type Page struct {
	Rows       []LicenseRow `json:"rows"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
}

// Paginate вырезает страницу page (с единицы) размером pageSize.
// Выход за границы зажимается в допустимый диапазон, так что после
// смены фильтра устаревший номер страницы не даёт пустой результат
func Paginate(rows []LicenseRow, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = PageSize
	}

	totalPages := (len(rows) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page{
		Rows:       rows[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      len(rows),
		TotalPages: totalPages,
	}
}

// SplitActive разделяет выборку на активные и неактивные лицензии —
// вкладки unassigned и external рендерят их двумя таблицами без пагинации
func SplitActive(rows []LicenseRow) (active, inactive []LicenseRow) {
	active = []LicenseRow{}
	inactive = []LicenseRow{}
	for _, row := range rows {
		if row.Status == StatusActive {
			active = append(active, row)
		} else {
			inactive = append(inactive, row)
		}
	}
	return active, inactive
}
