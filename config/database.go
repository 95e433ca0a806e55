package config

import (
	"fmt"
	"log"
	"os"

	"picboard/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_USER", "picboard"),
		envOr("DB_PASSWORD", "picboard"),
		envOr("DB_NAME", "picboard"),
		envOr("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostSource{},
		&models.Tag{},
		&models.TagPost{},
		&models.Pool{},
		&models.PoolPost{},
		&models.Setting{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
