package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/foundryai/studio-api/internal/config"
	"github.com/foundryai/studio-api/internal/database"
	"github.com/foundryai/studio-api/internal/handlers"
	"github.com/foundryai/studio-api/internal/notify"
	"github.com/foundryai/studio-api/internal/services"
	"github.com/foundryai/studio-api/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// 3. Notification Gateway: SendGrid first, SMTP fallback. With neither
	// configured the chain degrades to "not sent" and the API keeps serving.
	var mailers []notify.Mailer
	if cfg.SendGridAPIKey != "" {
		log.Println("📧 SendGrid mailer configured")
		mailers = append(mailers, notify.NewSendGridMailer(cfg.SendGridAPIKey))
	}
	if cfg.SMTPConfigured() {
		log.Println("📧 SMTP fallback mailer configured")
		mailers = append(mailers, notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass))
	}
	dispatcher := notify.NewDispatcher(notify.NewChain(mailers...))

	// 4. Resume Storage
	resumes, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatal("Failed to initialize resume storage: ", err)
	}

	// 5. Core Services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	appService := services.NewApplicationService(db, dispatcher, cfg.AdminEmail, cfg.FromEmail)
	meetingService := services.NewMeetingService(db, dispatcher, cfg.AdminEmail, cfg.FromEmail)
	jobService := services.NewJobService(db)

	// 6. Router
	r := handlers.NewRouter(handlers.Deps{
		DB:             db,
		Auth:           authService,
		Health:         handlers.NewHealthHandler(db, cfg.Environment),
		Careers:        handlers.NewCareerHandler(appService, jobService, resumes),
		Meetings:       handlers.NewMeetingHandler(meetingService),
		Admin:          handlers.NewAdminHandler(authService, appService, resumes),
		Jobs:           handlers.NewJobHandler(jobService),
		Contact:        handlers.NewContactHandler(dispatcher, cfg.AdminEmail, cfg.FromEmail),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Server starting on port %d...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Shutdown error: %v", err)
	}

	// Let in-flight notification sends finish before exiting.
	dispatcher.Wait()
	log.Println("👋 Server stopped")
}
