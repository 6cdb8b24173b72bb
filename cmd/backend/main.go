package main

import (
	"log"

	"licensehub/internal/api"
)

// @title LicenseHub API
// @version 1.0
// @description Сервис учёта корпоративных лицензий: провайдеры, сотрудники, цены, предупреждения

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
