package migration

import (
	"fmt"
	"log"

	"TasteTrail-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Merchant{},
		&entities.Media{},
		&entities.Dish{},
		&entities.DeliveryPlatform{},
		&entities.Taste{},
		&entities.Collection{},
		&entities.Like{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
