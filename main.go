package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/baileyhood/smashbash/cmd/app"
)

// @title        smashbash API
// @description  Event management backend: accounts, events, attendance.
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
