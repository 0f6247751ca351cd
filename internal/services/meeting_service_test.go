package services

import (
	"testing"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeetingService(t *testing.T) (*MeetingService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewMeetingService(newTestDB(t), notifier, "admin@foundryai.test", "noreply@foundryai.test"), notifier
}

func scheduleRequest(email, date, slot string) *dtos.ScheduleRequest {
	return &dtos.ScheduleRequest{
		Name:     "Acme Founder",
		Email:    email,
		Phone:    "+91 99999 99999",
		Industry: "Fintech",
		Services: []string{"AI Strategy", "Product Development"},
		Date:     date,
		Time:     slot,
	}
}

func TestMeetingSchedule(t *testing.T) {
	svc, notifier := newMeetingService(t)

	meeting, err := svc.Schedule(scheduleRequest("founder@acme.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)

	assert.Equal(t, models.MeetingScheduled, meeting.Status)
	assert.Equal(t, "5:00 PM", meeting.Time)
	assert.Equal(t, []string{"AI Strategy", "Product Development"}, []string(meeting.Services))

	msgs := notifier.messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Subject, "New Meeting Scheduled")
	assert.Equal(t, "founder@acme.com", msgs[1].To)
	assert.Contains(t, msgs[1].Subject, "Meeting Confirmed")
}

func TestMeetingScheduleRejectsBadDate(t *testing.T) {
	svc, _ := newMeetingService(t)
	_, err := svc.Schedule(scheduleRequest("a@x.com", "June 1st", "5:00 PM"))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMeetingScheduleConflict(t *testing.T) {
	svc, _ := newMeetingService(t)

	_, err := svc.Schedule(scheduleRequest("first@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)

	_, err = svc.Schedule(scheduleRequest("second@x.com", "2025-06-01", "5:00 PM"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// The losing request must not leave a second record behind.
	var count int64
	require.NoError(t, svc.DB.Model(&models.Meeting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A different slot label on the same day is fine.
	_, err = svc.Schedule(scheduleRequest("second@x.com", "2025-06-01", "6:00 PM"))
	require.NoError(t, err)
}

func TestMeetingScheduleUniqueIndexBackstopsRace(t *testing.T) {
	svc, _ := newMeetingService(t)

	// Simulate a racer that slipped past the pre-check by inserting
	// directly, then try the normal path against the occupied slot.
	_, err := svc.Schedule(scheduleRequest("first@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)

	req := scheduleRequest("second@x.com", "2025-06-01", "5:00 PM")
	meeting := &models.Meeting{
		Name: req.Name, Email: req.Email, Phone: req.Phone, Industry: req.Industry,
		Date: mustDate(t, req.Date), Time: req.Time, Status: models.MeetingScheduled,
	}
	err = svc.DB.Create(meeting).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}

func TestMeetingCancelledSlotCanBeRebooked(t *testing.T) {
	svc, _ := newMeetingService(t)

	meeting, err := svc.Schedule(scheduleRequest("first@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)

	_, err = svc.Cancel(meeting.ID, "client asked to reschedule")
	require.NoError(t, err)

	_, err = svc.Schedule(scheduleRequest("second@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)
}

func TestMeetingCancelRequiresReason(t *testing.T) {
	svc, _ := newMeetingService(t)

	meeting, err := svc.Schedule(scheduleRequest("a@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)

	_, err = svc.Cancel(meeting.ID, "")
	assert.ErrorIs(t, err, ErrMissingReason)
	_, err = svc.Cancel(meeting.ID, "   ")
	assert.ErrorIs(t, err, ErrMissingReason)

	stored, err := svc.Get(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingScheduled, stored.Status)
}

func TestMeetingCancel(t *testing.T) {
	svc, notifier := newMeetingService(t)

	meeting, err := svc.Schedule(scheduleRequest("a@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)
	sentAfterSchedule := notifier.count()

	cancelled, err := svc.Cancel(meeting.ID, "team unavailable")
	require.NoError(t, err)
	assert.Equal(t, models.MeetingCancelled, cancelled.Status)
	assert.Equal(t, "team unavailable", cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)

	msgs := notifier.messages()
	require.Len(t, msgs, sentAfterSchedule+1)
	assert.Contains(t, msgs[len(msgs)-1].Subject, "Meeting Cancelled")

	// Cancelling again fails and must not re-send the notification.
	_, err = svc.Cancel(meeting.ID, "duplicate click")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, sentAfterSchedule+1, notifier.count())
}

func TestMeetingCancelNotFound(t *testing.T) {
	svc, _ := newMeetingService(t)
	_, err := svc.Cancel(42, "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMeetingComplete(t *testing.T) {
	svc, _ := newMeetingService(t)

	meeting, err := svc.Schedule(scheduleRequest("a@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)

	done, err := svc.Complete(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingCompleted, done.Status)

	// Completed is terminal in both directions.
	_, err = svc.Complete(meeting.ID)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	_, err = svc.Cancel(meeting.ID, "too late")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestMeetingCompleteCancelled(t *testing.T) {
	svc, _ := newMeetingService(t)

	meeting, err := svc.Schedule(scheduleRequest("a@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)
	_, err = svc.Cancel(meeting.ID, "client dropped out")
	require.NoError(t, err)

	_, err = svc.Complete(meeting.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestMeetingListSorted(t *testing.T) {
	svc, _ := newMeetingService(t)

	_, err := svc.Schedule(scheduleRequest("a@x.com", "2025-06-02", "5:00 PM"))
	require.NoError(t, err)
	_, err = svc.Schedule(scheduleRequest("b@x.com", "2025-06-01", "5:00 PM"))
	require.NoError(t, err)
	_, err = svc.Schedule(scheduleRequest("c@x.com", "2025-06-01", "3:00 PM"))
	require.NoError(t, err)

	meetings, err := svc.List()
	require.NoError(t, err)
	require.Len(t, meetings, 3)
	assert.Equal(t, "c@x.com", meetings[0].Email)
	assert.Equal(t, "b@x.com", meetings[1].Email)
	assert.Equal(t, "a@x.com", meetings[2].Email)
}
