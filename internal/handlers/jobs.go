package handlers

import (
	"errors"
	"net/http"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/services"
	"github.com/gin-gonic/gin"
)

// JobHandler is the admin side of job postings. The public listing lives on
// CareerHandler.
type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// ListAll is GET /api/admin/jobs.
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.Jobs.ListAll()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// Create is POST /api/admin/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide a job title")
		return
	}

	job, err := h.Jobs.Create(&req)
	switch {
	case errors.Is(err, services.ErrInvalidJobType):
		fail(c, http.StatusBadRequest, "Invalid job type")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job created successfully",
		"job":     job,
	})
}

// Update is PUT /api/admin/jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide a job title")
		return
	}

	job, err := h.Jobs.Update(id, &req)
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Job not found")
		return
	case errors.Is(err, services.ErrInvalidJobType):
		fail(c, http.StatusBadRequest, "Invalid job type")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully",
		"job":     job,
	})
}

// Delete is DELETE /api/admin/jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.Jobs.Delete(id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Job not found")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
	})
}

// Toggle is PATCH /api/admin/jobs/:id/toggle.
func (h *JobHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.ToggleActive(id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Job not found")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job visibility updated",
		"job":     job,
	})
}
