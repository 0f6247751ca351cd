package services

import (
	"testing"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService(t *testing.T) *JobService {
	return NewJobService(newTestDB(t))
}

func jobRequest(title string) *dtos.JobRequest {
	return &dtos.JobRequest{
		Title:        title,
		Department:   "Engineering",
		Location:     "Bangalore, India",
		Description:  "Build things.",
		Requirements: "Go, SQL, 3+ years experience",
	}
}

func TestJobCreateSplitsRequirements(t *testing.T) {
	svc := newJobService(t)

	req := jobRequest("Backend Engineer")
	req.Requirements = "a, b, c"
	job, err := svc.Create(req)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, []string(job.Requirements))
	assert.Equal(t, "Full time", job.Type)
	assert.True(t, job.IsActive)

	// Round-trips through the store.
	stored, err := svc.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, []string(stored.Requirements))
}

func TestJobCreateDropsEmptyRequirementSegments(t *testing.T) {
	svc := newJobService(t)

	req := jobRequest("Backend Engineer")
	req.Requirements = " a ,, b , "
	job, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string(job.Requirements))
}

func TestJobCreateRejectsUnknownType(t *testing.T) {
	svc := newJobService(t)

	req := jobRequest("Backend Engineer")
	req.Type = "Freelance"
	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrInvalidJobType)
}

func TestJobUpdate(t *testing.T) {
	svc := newJobService(t)

	job, err := svc.Create(jobRequest("Backend Engineer"))
	require.NoError(t, err)

	req := jobRequest("Senior Backend Engineer")
	req.Type = "Contract"
	req.Salary = "₹40L"
	updated, err := svc.Update(job.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, "Contract", updated.Type)
	assert.Equal(t, "₹40L", updated.Salary)

	_, err = svc.Update(999, req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobToggleActive(t *testing.T) {
	svc := newJobService(t)

	job, err := svc.Create(jobRequest("Backend Engineer"))
	require.NoError(t, err)
	require.True(t, job.IsActive)

	toggled, err := svc.ToggleActive(job.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleActive(job.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = svc.ToggleActive(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobDelete(t *testing.T) {
	svc := newJobService(t)

	job, err := svc.Create(jobRequest("Backend Engineer"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(job.ID))
	assert.ErrorIs(t, svc.Delete(job.ID), ErrNotFound)
}

func TestJobListActiveExcludesInactive(t *testing.T) {
	svc := newJobService(t)

	active, err := svc.Create(jobRequest("Visible Role"))
	require.NoError(t, err)
	hidden, err := svc.Create(jobRequest("Hidden Role"))
	require.NoError(t, err)
	_, err = svc.ToggleActive(hidden.ID)
	require.NoError(t, err)

	jobs := svc.ListActive()
	require.Len(t, jobs, 1)
	assert.Equal(t, active.ID, jobs[0].ID)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestJobListActiveFallsBackWhenEmpty(t *testing.T) {
	svc := newJobService(t)

	jobs := svc.ListActive()
	require.Len(t, jobs, 3)
	for _, job := range jobs {
		assert.True(t, job.IsActive)
		assert.NotEmpty(t, job.Requirements)
	}

	// A real posting displaces the seeds.
	created, err := svc.Create(jobRequest("Real Opening"))
	require.NoError(t, err)
	jobs = svc.ListActive()
	require.Len(t, jobs, 1)
	assert.Equal(t, created.ID, jobs[0].ID)
}
