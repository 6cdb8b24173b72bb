package role

// Role определяет уровень доступа пользователя
type Role int

const (
	Viewer  Role = iota // просмотр данных
	Manager             // управление лицензиями и ценами
	Admin               // полный доступ, включая настройки компании
)

func (r Role) String() string {
	switch r {
	case Viewer:
		return "viewer"
	case Manager:
		return "manager"
	case Admin:
		return "admin"
	}
	return "unknown"
}
