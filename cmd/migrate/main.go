package main

import (
	"log"

	"licensehub/internal/app/ds"
	"licensehub/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gorm.io/driver/postgres"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
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
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	// Справочные данные: ручной провайдер и пороги по умолчанию
	seed := []ds.Provider{
		{Name: "manual", DisplayName: "Manual licenses", Config: map[string]interface{}{"provider_type": "manual"}},
		{Name: "google_workspace", DisplayName: "Google Workspace", Config: map[string]interface{}{"provider_type": "api"}},
	}
	for i := range seed {
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&seed[i]).Error
		if err != nil {
			log.Fatalf("Failed to seed provider %s: %v", seed[i].Name, err)
		}
	}

	var thresholds ds.ThresholdSettings
	if err := db.First(&thresholds).Error; err != nil {
		thresholds = ds.ThresholdSettings{
			ExpiryWarningDays:     60,
			LowUtilizationDays:    90,
			LowUtilizationPercent: 50,
		}
		if err := db.Create(&thresholds).Error; err != nil {
			log.Fatalf("Failed to seed threshold settings: %v", err)
		}
	}

	log.Println("Seed data applied successfully")
}
