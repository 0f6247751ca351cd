package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationService(t *testing.T) (*ApplicationService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewApplicationService(newTestDB(t), notifier, "admin@foundryai.test", "noreply@foundryai.test"), notifier
}

func applicationRequest(name, email, position string) *dtos.ApplicationRequest {
	return &dtos.ApplicationRequest{Name: name, Email: email, Position: position}
}

func TestApplicationCreateDefaultsToPending(t *testing.T) {
	svc, notifier := newApplicationService(t)

	app, err := svc.Create(applicationRequest("Jane Doe", "jane@x.com", "Engineer"))
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.NotZero(t, app.ID)
	assert.False(t, app.CreatedAt.IsZero())

	// Admin alert plus applicant acknowledgment.
	msgs := notifier.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "admin@foundryai.test", msgs[0].To)
	assert.Contains(t, msgs[0].Subject, "Job Application: Engineer")
	assert.Equal(t, "jane@x.com", msgs[1].To)
	assert.Contains(t, msgs[1].Subject, "Application Received")
}

func TestApplicationCreateWithoutAdminEmail(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewApplicationService(newTestDB(t), notifier, "", "noreply@foundryai.test")

	_, err := svc.Create(applicationRequest("Jane Doe", "jane@x.com", "Engineer"))
	require.NoError(t, err)

	// Only the applicant acknowledgment goes out.
	assert.Equal(t, 1, notifier.count())
}

func TestApplicationListPaginationAndFilter(t *testing.T) {
	svc, _ := newApplicationService(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		app, err := svc.Create(applicationRequest(fmt.Sprintf("Applicant %d", i), "a@x.com", "Engineer"))
		require.NoError(t, err)
		// Distinct creation times so the newest-first ordering is checkable.
		require.NoError(t, svc.DB.Model(app).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	apps, total, err := svc.List(1, 2, "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, apps, 2)
	assert.Equal(t, "Applicant 4", apps[0].Name)
	assert.Equal(t, "Applicant 3", apps[1].Name)

	apps, _, err = svc.List(3, 2, "")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Applicant 0", apps[0].Name)

	// Move two records to reviewed and filter on it.
	_, err = svc.UpdateStatus(1, models.ApplicationReviewed)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(2, models.ApplicationReviewed)
	require.NoError(t, err)

	apps, total, err = svc.List(1, 20, models.ApplicationReviewed)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, app := range apps {
		assert.Equal(t, models.ApplicationReviewed, app.Status)
	}
}

func TestApplicationUpdateStatus(t *testing.T) {
	svc, _ := newApplicationService(t)

	app, err := svc.Create(applicationRequest("Jane Doe", "jane@x.com", "Engineer"))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(app.ID, models.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationShortlisted, updated.Status)

	stored, err := svc.Get(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationShortlisted, stored.Status)
}

func TestApplicationUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := newApplicationService(t)

	app, err := svc.Create(applicationRequest("Jane Doe", "jane@x.com", "Engineer"))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(app.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// The record is untouched.
	stored, err := svc.Get(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, stored.Status)
}

func TestApplicationUpdateStatusNotFound(t *testing.T) {
	svc, _ := newApplicationService(t)
	_, err := svc.UpdateStatus(999, models.ApplicationReviewed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicationDelete(t *testing.T) {
	svc, _ := newApplicationService(t)

	app, err := svc.Create(applicationRequest("Jane Doe", "jane@x.com", "Engineer"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(app.ID))
	_, err = svc.Get(app.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(app.ID), ErrNotFound)
}

func TestApplicationStats(t *testing.T) {
	svc, _ := newApplicationService(t)

	for i := 0; i < 4; i++ {
		_, err := svc.Create(applicationRequest(fmt.Sprintf("Applicant %d", i), "a@x.com", "Engineer"))
		require.NoError(t, err)
	}
	_, err := svc.UpdateStatus(1, models.ApplicationReviewed)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(2, models.ApplicationRejected)
	require.NoError(t, err)

	// Push one record outside the 7-day recency window.
	require.NoError(t, svc.DB.Model(&models.Application{ID: 4}).
		Update("created_at", time.Now().AddDate(0, 0, -8)).Error)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.Total)
	assert.EqualValues(t, 2, stats.Pending)
	assert.EqualValues(t, 1, stats.Reviewed)
	assert.EqualValues(t, 0, stats.Shortlisted)
	assert.EqualValues(t, 1, stats.Rejected)
	assert.EqualValues(t, 3, stats.Recent)

	// Total agrees with an unfiltered list at the same moment.
	_, total, err := svc.List(1, 100, "")
	require.NoError(t, err)
	assert.Equal(t, stats.Total, total)
}

func TestApplicationNotificationFailureDoesNotFailCreate(t *testing.T) {
	// The dispatcher swallows provider errors; from the service's point of
	// view Dispatch never fails. This pins the contract: Create only
	// returns an error for the write itself.
	svc, _ := newApplicationService(t)

	app, err := svc.Create(&dtos.ApplicationRequest{
		Name:     strings.Repeat("x", 200),
		Email:    "long@x.com",
		Position: "Engineer",
	})
	require.NoError(t, err)
	assert.NotZero(t, app.ID)
}
