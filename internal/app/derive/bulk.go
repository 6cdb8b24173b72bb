package derive

// Разбиение выбранных лицензий на подмножества для массовых операций.
// Подмножества независимы и могут пересекаться.

// RemovableProviders — провайдеры, поддерживающие удалённый отзыв лицензии
// через API. Ключ — внутреннее имя провайдера, не отображаемое.
// Для остальных массовое удаление у провайдера невозможно
var RemovableProviders = map[string]bool{
	"google_workspace": true,
}

// Selection — результат разбиения выбранных строк
type Selection struct {
	Removable []uint // можно отозвать у провайдера (allow-list)
	Assigned  []uint // есть сопоставленный сотрудник, можно отвязать
	All       []uint // все выбранные, для локального удаления
}

// PartitionSelection раскладывает выбранные лицензии по подмножествам
// массовых операций. Подмножества считаются независимо друг от друга
func PartitionSelection(rows []LicenseRow, selected map[uint]bool) Selection {
	s := Selection{
		Removable: []uint{},
		Assigned:  []uint{},
		All:       []uint{},
	}
	for _, row := range rows {
		if !selected[row.ID] {
			continue
		}
		s.All = append(s.All, row.ID)
		if RemovableProviders[row.ProviderInternalName] {
			s.Removable = append(s.Removable, row.ID)
		}
		if row.EmployeeID != nil {
			s.Assigned = append(s.Assigned, row.ID)
		}
	}
	return s
}

// ToggleSelectAll реализует семантику "выбрать все" для видимой страницы:
// затрагиваются только строки текущего среза, чужие id не трогаются.
// Если все видимые строки уже выбраны — выбор с них снимается
func ToggleSelectAll(visible []LicenseRow, selected map[uint]bool) map[uint]bool {
	out := make(map[uint]bool, len(selected))
	for id, v := range selected {
		if v {
			out[id] = true
		}
	}

	allSelected := len(visible) > 0
	for _, row := range visible {
		if !out[row.ID] {
			allSelected = false
			break
		}
	}

	for _, row := range visible {
		if allSelected {
			delete(out, row.ID)
		} else {
			out[row.ID] = true
		}
	}
	return out
}
