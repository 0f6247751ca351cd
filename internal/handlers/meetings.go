package handlers

import (
	"errors"
	"net/http"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/services"
	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	Meetings *services.MeetingService
}

func NewMeetingHandler(meetings *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{Meetings: meetings}
}

// Schedule is POST /api/contact/schedule, the public booking form.
func (h *MeetingHandler) Schedule(c *gin.Context) {
	var req dtos.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	meeting, err := h.Meetings.Schedule(&req)
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		fail(c, http.StatusBadRequest, "Invalid date. Please use the YYYY-MM-DD format.")
		return
	case errors.Is(err, services.ErrSlotTaken):
		fail(c, http.StatusConflict, "The slot on "+req.Date+" at "+req.Time+" is already booked. Please choose another time.")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Meeting scheduled successfully! You will receive a confirmation shortly.",
		"meeting": meeting,
	})
}

// List is GET /api/admin/meetings.
func (h *MeetingHandler) List(c *gin.Context) {
	meetings, err := h.Meetings.List()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch meetings")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(meetings),
		"meetings": meetings,
	})
}

// Cancel is POST /api/admin/meetings/:id/cancel.
func (h *MeetingHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Cancellation reason is required")
		return
	}

	meeting, err := h.Meetings.Cancel(id, req.Reason)
	switch {
	case errors.Is(err, services.ErrMissingReason):
		fail(c, http.StatusBadRequest, "Cancellation reason is required")
		return
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Meeting not found")
		return
	case errors.Is(err, services.ErrAlreadyCancelled):
		fail(c, http.StatusBadRequest, "Meeting is already cancelled")
		return
	case errors.Is(err, services.ErrAlreadyCompleted):
		fail(c, http.StatusBadRequest, "Completed meetings cannot be cancelled")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to cancel meeting")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Meeting cancelled successfully",
		"meeting": meeting,
	})
}

// Complete is POST /api/admin/meetings/:id/complete.
func (h *MeetingHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	meeting, err := h.Meetings.Complete(id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "Meeting not found")
		return
	case errors.Is(err, services.ErrAlreadyCancelled):
		fail(c, http.StatusBadRequest, "Cancelled meetings cannot be completed")
		return
	case errors.Is(err, services.ErrAlreadyCompleted):
		fail(c, http.StatusBadRequest, "Meeting is already completed")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to update meeting")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Meeting marked as completed",
		"meeting": meeting,
	})
}
