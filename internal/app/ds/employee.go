package ds

import "time"

// 3. Таблица сотрудников — реплика данных из HR-системы (источник правды снаружи)
type Employee struct {
	ID         uint   `gorm:"primaryKey"`
	FullName   string `gorm:"type:varchar(255);not null"`
	Email      string `gorm:"type:varchar(255);unique;not null"`
	Department string `gorm:"type:varchar(100);index"`
	ManagerID  *uint  `gorm:"default:null"`
	Status     string `gorm:"type:varchar(20);not null;default:'active'"` // active, offboarded

	StartDate       *time.Time `gorm:"default:null"`
	TerminationDate *time.Time `gorm:"default:null"`

	Manager *Employee `gorm:"foreignKey:ManagerID"`
}

const (
	EmployeeStatusActive     = "active"
	EmployeeStatusOffboarded = "offboarded"
)
