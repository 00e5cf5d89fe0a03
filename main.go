package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/athletix/club-api/cmd/app"
)

// @contact.name   API Support
// @contact.email  support@athletix.club
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
