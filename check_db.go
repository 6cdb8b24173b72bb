package main

import (
	"fmt"
	"log"

	"licensehub/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=licensehub port=5432 sslmode=disable TimeZone=Europe/Moscow"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var providers []ds.Provider
	err = db.Find(&providers).Error
	if err != nil {
		log.Fatal("Failed to get providers:", err)
	}

	fmt.Println("Providers in database:")
	for _, provider := range providers {
		var count int64
		_ = db.Model(&ds.License{}).Where("provider_id = ?", provider.ID).Count(&count).Error
		fmt.Printf("ID: %d, Name: %s, Manual: %v, Licenses: %d\n", provider.ID, provider.Name, provider.IsManual(), count)
	}
}
