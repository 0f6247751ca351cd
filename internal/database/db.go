package database

import (
	"context"
	"log"
	"time"

	"github.com/foundryai/studio-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations for the studio
// models.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.Application{},
		&models.Meeting{},
		&models.Job{},
		&models.Admin{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// Ping reports whether the database is currently reachable. Admin routes use
// this to return 503 up front instead of failing mid-query.
func Ping(db *gorm.DB) bool {
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}
