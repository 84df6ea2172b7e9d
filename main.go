package main

import (
	"log"

	"TasteTrail-Backend/cmd/config"
	migration "TasteTrail-Backend/cmd/database/migrate"
	"TasteTrail-Backend/internal/utils"
	"TasteTrail-Backend/pkg/mq"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	mongoDB, err := config.ConnectMongo()
	if err != nil {
		log.Fatalf("failed to connect mongodb: %v", err)
	}

	publisher, err := mq.NewPublisher()
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}
	defer publisher.Close()

	app, err := config.NewApp(db, mongoDB, publisher)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
