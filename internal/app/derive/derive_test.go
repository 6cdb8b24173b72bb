package derive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestCategorize(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, ExternalUserID: "alice@corp.com", EmployeeID: uintPtr(10), Status: StatusActive},
		{ID: 2, ExternalUserID: "bob@corp.com", Status: StatusActive},
		{ID: 3, ExternalUserID: "carol@corp.com", EmployeeID: uintPtr(11), EmployeeOffboarded: true},
		{ID: 4, ExternalUserID: "backup-svc@corp.com", IsServiceAccount: true},
		// флаг сервисного аккаунта сильнее сопоставления с сотрудником
		{ID: 5, ExternalUserID: "ci-bot@corp.com", EmployeeID: uintPtr(12), IsServiceAccount: true},
	}

	c := Categorize(rows)

	assert.Equal(t, []uint{1}, rowIDs(c.Assigned))
	assert.Equal(t, []uint{2}, rowIDs(c.Unassigned))
	assert.Equal(t, []uint{3}, rowIDs(c.External))
	assert.Equal(t, []uint{4, 5}, rowIDs(c.ServiceAccounts))
}

func TestCategorizeEmpty(t *testing.T) {
	c := Categorize(nil)

	// Пустые корзины сериализуются как [], а не null
	assert.NotNil(t, c.Assigned)
	assert.NotNil(t, c.Unassigned)
	assert.NotNil(t, c.External)
	assert.NotNil(t, c.ServiceAccounts)
}

func TestComputeStats(t *testing.T) {
	c := Categorize([]LicenseRow{
		{ID: 1, EmployeeID: uintPtr(10), MonthlyCost: 12.5, Currency: "USD"},
		{ID: 2, MonthlyCost: 7.5, Currency: "USD"},
		{ID: 3, IsServiceAccount: true},
	})

	s := ComputeStats(c)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Assigned)
	assert.Equal(t, 1, s.Unassigned)
	assert.Equal(t, 1, s.ServiceAccounts)
	assert.InDelta(t, 20.0, s.TotalMonthlyCost, 0.001)
	assert.Equal(t, "USD", s.Currency)
}

func TestFilter(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, ExternalUserID: "alice@corp.com", EmployeeName: "Alice Smith", ProviderName: "google_workspace", LicenseType: "business_plus"},
		{ID: 2, ExternalUserID: "bob@corp.com", EmployeeName: "Bob Jones", ProviderName: "slack", LicenseType: "pro"},
	}

	assert.Equal(t, []uint{1}, rowIDs(Filter(rows, "ALICE")))
	assert.Equal(t, []uint{1}, rowIDs(Filter(rows, "business")))
	assert.Equal(t, []uint{2}, rowIDs(Filter(rows, "slack")))
	assert.Equal(t, []uint{1, 2}, rowIDs(Filter(rows, "corp.com")))
	assert.Empty(t, Filter(rows, "nothing-matches"))
}

func TestFilterEmptySearchReturnsAll(t *testing.T) {
	rows := []LicenseRow{{ID: 1}, {ID: 2}}
	assert.Equal(t, rows, Filter(rows, ""))
}

func TestFilterDepartment(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, Department: "Engineering"},
		{ID: 2, Department: "Sales"},
		{ID: 3},
	}

	assert.Equal(t, []uint{2}, rowIDs(FilterDepartment(rows, "Sales")))
	assert.Equal(t, rows, FilterDepartment(rows, ""))
}

func TestSort(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, EmployeeName: "Carol", MonthlyCost: 30},
		{ID: 2, EmployeeName: "Alice", MonthlyCost: 10},
		{ID: 3, EmployeeName: "Bob", MonthlyCost: 20},
	}

	asc := Sort(rows, SortEmployeeName, "asc")
	assert.Equal(t, []uint{2, 3, 1}, rowIDs(asc))

	desc := Sort(rows, SortEmployeeName, "desc")
	assert.Equal(t, []uint{1, 3, 2}, rowIDs(desc))

	byCost := Sort(rows, SortMonthlyCost, "asc")
	assert.Equal(t, []uint{2, 3, 1}, rowIDs(byCost))

	// Исходный срез не изменяется
	assert.Equal(t, []uint{1, 2, 3}, rowIDs(rows))
}

func TestSortUnknownColumnKeepsOrder(t *testing.T) {
	rows := []LicenseRow{{ID: 3}, {ID: 1}, {ID: 2}}
	assert.Equal(t, []uint{3, 1, 2}, rowIDs(Sort(rows, "bogus", "asc")))
}

func TestSortStable(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, ProviderName: "slack"},
		{ID: 2, ProviderName: "slack"},
		{ID: 3, ProviderName: "google_workspace"},
	}

	sorted := Sort(rows, SortProviderName, "asc")
	// Равные ключи сохраняют относительный порядок
	assert.Equal(t, []uint{3, 1, 2}, rowIDs(sorted))
}

func TestPaginate(t *testing.T) {
	rows := make([]LicenseRow, 120)
	for i := range rows {
		rows[i] = LicenseRow{ID: uint(i + 1)}
	}

	p := Paginate(rows, 1, PageSize)
	require.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 120, p.Total)
	assert.Len(t, p.Rows, 50)
	assert.Equal(t, uint(1), p.Rows[0].ID)

	p = Paginate(rows, 3, PageSize)
	assert.Len(t, p.Rows, 20)
	assert.Equal(t, uint(101), p.Rows[0].ID)
	assert.Equal(t, uint(120), p.Rows[19].ID)
}

func TestPaginateClampsPage(t *testing.T) {
	rows := make([]LicenseRow, 60)
	for i := range rows {
		rows[i] = LicenseRow{ID: uint(i + 1)}
	}

	// Устаревший номер страницы после смены фильтра зажимается к последней
	p := Paginate(rows, 99, PageSize)
	assert.Equal(t, 2, p.Page)
	assert.Len(t, p.Rows, 10)

	p = Paginate(rows, 0, PageSize)
	assert.Equal(t, 1, p.Page)
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]LicenseRow{}, 1, PageSize)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.Empty(t, p.Rows)
}

func TestSplitActive(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, Status: StatusActive},
		{ID: 2, Status: "inactive"},
		{ID: 3, Status: StatusActive},
	}

	active, inactive := SplitActive(rows)
	assert.Equal(t, []uint{1, 3}, rowIDs(active))
	assert.Equal(t, []uint{2}, rowIDs(inactive))
}

func TestRefinePipeline(t *testing.T) {
	// Поиск, фильтр по отделу и сортировка комбинируются последовательно
	rows := make([]LicenseRow, 0, 10)
	for i := 1; i <= 10; i++ {
		dept := "Engineering"
		if i%2 == 0 {
			dept = "Sales"
		}
		rows = append(rows, LicenseRow{
			ID:           uint(i),
			EmployeeName: fmt.Sprintf("User %02d", 11-i),
			Department:   dept,
			ProviderName: "google_workspace",
		})
	}

	refined := Sort(FilterDepartment(Filter(rows, "google"), "Sales"), SortEmployeeName, "asc")
	assert.Equal(t, []uint{10, 8, 6, 4, 2}, rowIDs(refined))
}

func rowIDs(rows []LicenseRow) []uint {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}
