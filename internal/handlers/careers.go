package handlers

import (
	"errors"
	"net/http"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/services"
	"github.com/foundryai/studio-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// CareerHandler serves the public careers surface: the active job listing,
// the application form and the resume upload.
type CareerHandler struct {
	Applications *services.ApplicationService
	Jobs         *services.JobService
	Resumes      storage.Store
}

func NewCareerHandler(apps *services.ApplicationService, jobs *services.JobService, resumes storage.Store) *CareerHandler {
	return &CareerHandler{Applications: apps, Jobs: jobs, Resumes: resumes}
}

// Apply is POST /api/careers.
func (h *CareerHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide name, email, and position")
		return
	}

	if _, err := h.Applications.Create(&req); err != nil {
		fail(c, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application submitted successfully! We will review and get back to you.",
	})
}

// ListJobs is GET /api/careers, active postings only, with the seed
// fallback when the store has nothing to show.
func (h *CareerHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    h.Jobs.ListActive(),
	})
}

// UploadResume is POST /api/careers/upload-resume (multipart field "resume").
func (h *CareerHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer src.Close()

	url, storedName, err := h.Resumes.Save(file.Filename, file.Size, src)
	switch {
	case errors.Is(err, storage.ErrFileTooLarge), errors.Is(err, storage.ErrUnsupportedType):
		fail(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to upload resume")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      url,
		"filename": storedName,
		"message":  "Resume uploaded successfully",
	})
}
