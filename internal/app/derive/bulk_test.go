package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionSelection(t *testing.T) {
	rows := []LicenseRow{
		{ID: 1, ProviderInternalName: "google_workspace", EmployeeID: uintPtr(10)},
		{ID: 2, ProviderInternalName: "slack", EmployeeID: uintPtr(11)},
		{ID: 3, ProviderInternalName: "slack"},
		{ID: 4, ProviderInternalName: "google_workspace"},
	}
	selected := map[uint]bool{1: true, 2: true, 3: true}

	s := PartitionSelection(rows, selected)

	// Подмножества независимы: строка может попасть в несколько сразу
	assert.Equal(t, []uint{1}, s.Removable)
	assert.Equal(t, []uint{1, 2}, s.Assigned)
	assert.Equal(t, []uint{1, 2, 3}, s.All)
}

func TestPartitionSelectionUsesInternalProviderName(t *testing.T) {
	// Репозиторий подменяет ProviderName на отображаемое имя провайдера;
	// allow-list должен смотреть на внутреннее имя
	rows := []LicenseRow{
		{ID: 1, ProviderName: "Google Workspace", ProviderInternalName: "google_workspace", EmployeeID: uintPtr(10)},
		{ID: 2, ProviderName: "google_workspace", ProviderInternalName: "manual"},
	}
	selected := map[uint]bool{1: true, 2: true}

	s := PartitionSelection(rows, selected)

	assert.Equal(t, []uint{1}, s.Removable)
}

func TestPartitionSelectionEmpty(t *testing.T) {
	s := PartitionSelection([]LicenseRow{{ID: 1}}, map[uint]bool{})

	assert.Empty(t, s.Removable)
	assert.Empty(t, s.Assigned)
	assert.Empty(t, s.All)
}

func TestToggleSelectAll(t *testing.T) {
	visible := []LicenseRow{{ID: 1}, {ID: 2}, {ID: 3}}

	selected := ToggleSelectAll(visible, map[uint]bool{})
	assert.Equal(t, map[uint]bool{1: true, 2: true, 3: true}, selected)

	// Повторный вызов снимает выбор с видимых строк
	selected = ToggleSelectAll(visible, selected)
	assert.Empty(t, selected)
}

func TestToggleSelectAllKeepsForeignSelection(t *testing.T) {
	visible := []LicenseRow{{ID: 1}, {ID: 2}}
	selected := map[uint]bool{1: true, 2: true, 99: true}

	// Снятие выбора затрагивает только видимую страницу
	out := ToggleSelectAll(visible, selected)
	assert.Equal(t, map[uint]bool{99: true}, out)

	// Частично выбранная страница довыбирается, чужой id остаётся
	out = ToggleSelectAll(visible, map[uint]bool{1: true, 99: true})
	assert.Equal(t, map[uint]bool{1: true, 2: true, 99: true}, out)
}
