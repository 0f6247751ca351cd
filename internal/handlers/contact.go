package handlers

import (
	"net/http"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/notify"
	"github.com/foundryai/studio-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ContactHandler serves the contact form. Email only, nothing persisted.
type ContactHandler struct {
	Notifier   services.Notifier
	AdminEmail string
	FromEmail  string
}

func NewContactHandler(notifier services.Notifier, adminEmail, fromEmail string) *ContactHandler {
	return &ContactHandler{Notifier: notifier, AdminEmail: adminEmail, FromEmail: fromEmail}
}

// Submit is POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide name, email, and message")
		return
	}

	if h.AdminEmail != "" {
		h.Notifier.Dispatch(notify.ContactAlert(
			req.Name, req.Email, req.Phone, req.Company, req.Subject, req.Message,
			h.AdminEmail, h.FromEmail,
		))
	}
	h.Notifier.Dispatch(notify.ContactAck(req.Name, req.Email, h.FromEmail))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully! We will get back to you soon.",
	})
}
