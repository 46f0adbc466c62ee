package main

import (
	"Nutriplan-Backend/cmd/config"
	migration "Nutriplan-Backend/cmd/database/migrate"
	"Nutriplan-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal(err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatal(err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatal(err)
	}
}
