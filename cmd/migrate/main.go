package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"manualbot-be/internal/model"
	"manualbot-be/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatalf("Extension setup failed: %v", err)
	}

	log.Println("Step 2: Migrating tables...")
	err = db.AutoMigrate(
		&model.User{},
		&model.Manual{},
		&model.Inquiry{},
		&model.AccessLog{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
