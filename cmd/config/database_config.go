package config

import (
	"fmt"

	"healthy-eats-backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens postgres, or a local sqlite file when DB_DRIVER is "sqlite".
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch utils.GetConfig("DB_DRIVER") {
	case "sqlite":
		dialector = sqlite.Open(utils.GetConfig("SQLITE_PATH"))
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
