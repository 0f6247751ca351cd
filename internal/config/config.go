package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures environment driven configuration for the studio API.
type Config struct {
	Port        int
	Environment string

	DatabaseURL string
	JWTSecret   string

	SendGridAPIKey string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	FromEmail      string
	AdminEmail     string

	AllowedOrigins []string
	UploadDir      string
}

// Load parses configuration from the current process environment. Defaults
// cover optional fields; missing or malformed values are reported by name.
func Load() (Config, error) {
	cfg := Config{
		Port:        8080,
		Environment: "development",
		SMTPPort:    587,
		FromEmail:   "noreply@foundryai.com",
		UploadDir:   "./uploads",
	}

	var missing []string
	var invalid []string

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			invalid = append(invalid, "PORT")
		} else {
			cfg.Port = port
		}
	}

	if v := strings.TrimSpace(os.Getenv("GO_ENV")); v != "" {
		cfg.Environment = v
	}

	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v == "" {
		missing = append(missing, "DATABASE_URL")
	} else {
		cfg.DatabaseURL = v
	}

	// No hardcoded fallback secret: an unset JWT_SECRET is a boot failure,
	// not a silently insecure default.
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v == "" {
		missing = append(missing, "JWT_SECRET")
	} else {
		cfg.JWTSecret = v
	}

	cfg.SendGridAPIKey = strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPUser = strings.TrimSpace(os.Getenv("EMAIL_USER"))
	cfg.SMTPPass = strings.TrimSpace(os.Getenv("EMAIL_PASS"))

	if v := strings.TrimSpace(os.Getenv("SMTP_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			invalid = append(invalid, "SMTP_PORT")
		} else {
			cfg.SMTPPort = port
		}
	}

	if v := strings.TrimSpace(os.Getenv("EMAIL_FROM")); v != "" {
		cfg.FromEmail = v
	}
	cfg.AdminEmail = strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))

	if v := strings.TrimSpace(os.Getenv("UPLOAD_DIR")); v != "" {
		cfg.UploadDir = v
	}

	cfg.AllowedOrigins = []string{"http://localhost:3000"}
	if v := strings.TrimSpace(os.Getenv("FRONTEND_URL")); v != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimRight(v, "/"))
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// SMTPConfigured reports whether the SMTP fallback has enough credentials
// to attempt a send.
func (c Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}
