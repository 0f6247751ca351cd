package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/foundryai/studio-api/internal/config"
	"github.com/foundryai/studio-api/internal/database"
	"github.com/foundryai/studio-api/internal/services"
	"github.com/joho/godotenv"
)

// Bootstrap tool for the first admin account. There is deliberately no open
// registration route on the API.
//
// Usage: createadmin <username> <password> <email>
func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: createadmin <username> <password> <email>")
		os.Exit(2)
	}
	username, password, email := os.Args[1], os.Args[2], os.Args[3]

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	auth := services.NewAuthService(db, cfg.JWTSecret)
	admin, err := auth.Register(username, password, email)
	if errors.Is(err, services.ErrAdminExists) {
		log.Fatal("⚠️  Admin with this username or email already exists")
	}
	if err != nil {
		log.Fatal("Failed to create admin: ", err)
	}

	log.Printf("✅ Admin %q (%s) created successfully", admin.Username, admin.Email)
	log.Println("📝 Save these credentials securely and change the password after first login")
}
