package ds

// 2. Таблица провайдеров лицензий (Google Workspace, Slack, ручные и т.д.)
type Provider struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);unique;not null"` // внутреннее имя: google_workspace, manual, ...
	DisplayName string `gorm:"type:varchar(255);not null"`
	IsDeleted   bool   `gorm:"type:boolean;default:false;not null"`

	// Свободный config-мешок интеграции: provider_type, license_model,
	// currency, billing_cycle, package_cost, max_users и т.п.
	Config map[string]interface{} `gorm:"serializer:json;type:jsonb"`
}

const (
	ProviderTypeManual = "manual"
	ProviderTypeAPI    = "api"
)

// IsManual возвращает true для ручного провайдера: удалённая синхронизация
// выключена, вместо неё разрешён локальный CRUD лицензий
func (p *Provider) IsManual() bool {
	if p.Name == ProviderTypeManual {
		return true
	}
	if p.Config == nil {
		return false
	}
	t, _ := p.Config["provider_type"].(string)
	return t == ProviderTypeManual
}

// ConfigString читает строковое значение из config-мешка
func (p *Provider) ConfigString(key string) string {
	if p.Config == nil {
		return ""
	}
	s, _ := p.Config[key].(string)
	return s
}
