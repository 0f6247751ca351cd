package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/foundryai/studio-api/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TokenParser verifies a bearer token and yields the admin ID it carries.
type TokenParser interface {
	ParseToken(token string) (uint, error)
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// RequireAdmin guards the admin surface with the JWT scheme.
func RequireAdmin(auth TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			fail(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		adminID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid token.")
			c.Abort()
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}

// RequireDatabase returns 503 up front when the store is unreachable, so
// admin reads and writes fail cleanly instead of mid-query.
func RequireDatabase(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !database.Ping(db) {
			fail(c, http.StatusServiceUnavailable, "Database connection not available")
			c.Abort()
			return
		}
		c.Next()
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
