package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/services"
	"github.com/foundryai/studio-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// AdminHandler covers login plus the application-triage surface.
type AdminHandler struct {
	Auth         *services.AuthService
	Applications *services.ApplicationService
	Resumes      storage.Store
}

func NewAdminHandler(auth *services.AuthService, apps *services.ApplicationService, resumes storage.Store) *AdminHandler {
	return &AdminHandler{Auth: auth, Applications: apps, Resumes: resumes}
}

// Login is POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide username and password")
		return
	}

	token, admin, err := h.Auth.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// ListApplications is GET /api/admin/applications with page/limit/status
// query parameters.
func (h *AdminHandler) ListApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	apps, total, err := h.Applications.List(page, limit, status)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	pages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": apps,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetApplication is GET /api/admin/applications/:id.
func (h *AdminHandler) GetApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	app, err := h.Applications.Get(id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Application not found")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to fetch application")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

// UpdateApplicationStatus is PATCH /api/admin/applications/:id/status.
func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	app, err := h.Applications.UpdateStatus(id, req.Status)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Application not found")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Status updated successfully",
		"application": app,
	})
}

// DeleteApplication is DELETE /api/admin/applications/:id.
func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.Applications.Delete(id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Application not found")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to delete application")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application deleted successfully",
	})
}

// Stats is GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Applications.Stats()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// DownloadResume is GET /api/admin/applications/:id/resume. Streams the
// stored file inline, or as an attachment with ?download=true.
func (h *AdminHandler) DownloadResume(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	app, err := h.Applications.Get(id)
	if errors.Is(err, services.ErrNotFound) || (err == nil && app.ResumeFilename == "") {
		fail(c, http.StatusNotFound, "Resume not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch application")
		return
	}

	rc, err := h.Resumes.Open(app.ResumeFilename)
	if errors.Is(err, storage.ErrNotFound) {
		fail(c, http.StatusNotFound, "Resume not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch resume")
		return
	}
	defer rc.Close()

	disposition := "inline"
	if c.Query("download") == "true" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition+`; filename="`+app.ResumeFilename+`"`)
	c.Header("Content-Type", resumeContentType(app.ResumeFilename))
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc)
}

func resumeContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(filename, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case strings.HasSuffix(filename, ".doc"):
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
