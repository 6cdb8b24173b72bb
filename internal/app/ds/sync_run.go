package ds

import "time"

// 8. Журнал запусков синхронизации с провайдером
type SyncRun struct {
	ID         uint      `gorm:"primaryKey"`
	RunUUID    string    `gorm:"type:varchar(36);not null;index"`
	ProviderID uint      `gorm:"not null;index"`
	StartedAt  time.Time `gorm:"not null"`
	FinishedAt *time.Time
	Status     string `gorm:"type:varchar(20);not null"` // running, completed, failed, skipped
	Fetched    int    `gorm:"type:int;default:0"`
	Created    int    `gorm:"type:int;default:0"`
	Updated    int    `gorm:"type:int;default:0"`
	Deleted    int    `gorm:"type:int;default:0"`
	Error      string `gorm:"type:text"`

	Provider Provider `gorm:"foreignKey:ProviderID"`
}

const (
	SyncStatusRunning   = "running"
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
	SyncStatusSkipped   = "skipped"
)
