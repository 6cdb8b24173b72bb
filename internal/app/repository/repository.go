package repository

import (
	"fmt"

	"licensehub/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Provider{},
		&ds.Employee{},
		&ds.License{},
		&ds.LicenseTypePricing{},
		&ds.LicensePackage{},
		&ds.PaymentMethod{},
		&ds.NotificationRule{},
		&ds.ThresholdSettings{},
		&ds.SlackConfig{},
		&ds.SyncRun{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
