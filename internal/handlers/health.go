package handlers

import (
	"net/http"
	"time"

	"github.com/foundryai/studio-api/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB          *gorm.DB
	Environment string
}

func NewHealthHandler(db *gorm.DB, environment string) *HealthHandler {
	return &HealthHandler{DB: db, Environment: environment}
}

// Check reports liveness plus a database connectivity flag.
func (h *HealthHandler) Check(c *gin.Context) {
	dbState := "disconnected"
	if database.Ping(h.DB) {
		dbState = "connected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.Environment,
		"database":    dbState,
	})
}
