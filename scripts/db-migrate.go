package main

import (
	"log"
	"os"

	"github.com/headshot-studio/backend/database"
)

func main() {
	log.Println("Starting database migration...")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	conn, err := database.NewDBConnection("primary", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := conn.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	log.Println("Database migration completed successfully!")
}
