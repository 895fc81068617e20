package migration

import (
	"fmt"

	"healthy-eats-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	if err := db.AutoMigrate(&entities.Dish{}); err != nil {
		return fmt.Errorf("error migrating dish table: %w", err)
	}
	if err := db.AutoMigrate(&entities.GreyZoneIngredient{}); err != nil {
		return fmt.Errorf("error migrating grey zone ingredient table: %w", err)
	}
	return nil
}
