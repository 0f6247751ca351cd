package services

import (
	"errors"
	"time"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/models"
	"github.com/foundryai/studio-api/internal/notify"
	"gorm.io/gorm"
)

// Notifier is the async side of the notification gateway. Sends fire off the
// request path; a failed send never fails the triggering operation.
type Notifier interface {
	Dispatch(msg notify.Message)
}

// ApplicationStats is the admin dashboard aggregate.
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Reviewed    int64 `json:"reviewed"`
	Shortlisted int64 `json:"shortlisted"`
	Rejected    int64 `json:"rejected"`
	Recent      int64 `json:"recent"`
}

type ApplicationService struct {
	DB         *gorm.DB
	Notifier   Notifier
	AdminEmail string
	FromEmail  string
}

func NewApplicationService(db *gorm.DB, notifier Notifier, adminEmail, fromEmail string) *ApplicationService {
	return &ApplicationService{
		DB:         db,
		Notifier:   notifier,
		AdminEmail: adminEmail,
		FromEmail:  fromEmail,
	}
}

// Create persists a submission and dispatches the admin alert plus the
// applicant acknowledgment after the write commits.
func (s *ApplicationService) Create(req *dtos.ApplicationRequest) (*models.Application, error) {
	app := &models.Application{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Position:       req.Position,
		Experience:     req.Experience,
		CoverLetter:    req.CoverLetter,
		ResumeURL:      req.ResumeURL,
		ResumeFilename: req.ResumeFilename,
		Status:         models.ApplicationPending,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}

	if s.AdminEmail != "" {
		s.Notifier.Dispatch(notify.ApplicationAlert(app, s.AdminEmail, s.FromEmail))
	}
	s.Notifier.Dispatch(notify.ApplicationAck(app, s.FromEmail))

	return app, nil
}

// List returns a page of applications, newest first, optionally filtered by
// status. Unknown status values are ignored rather than rejected so stale
// dashboard filters degrade to "all".
func (s *ApplicationService) List(page, limit int, status string) ([]models.Application, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	q := s.DB.Model(&models.Application{})
	if models.ValidApplicationStatus(status) {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (s *ApplicationService) Get(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.DB.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// UpdateStatus moves an application within the status enum. Out-of-enum
// values are rejected before the record is touched.
func (s *ApplicationService) UpdateStatus(id uint, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	app, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(app).Update("status", status).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Delete(id uint) error {
	res := s.DB.Delete(&models.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates counts per status plus a 7-day rolling recent window.
func (s *ApplicationService) Stats() (*ApplicationStats, error) {
	stats := &ApplicationStats{}
	counts := []struct {
		dest  *int64
		where []interface{}
	}{
		{&stats.Total, nil},
		{&stats.Pending, []interface{}{"status = ?", models.ApplicationPending}},
		{&stats.Reviewed, []interface{}{"status = ?", models.ApplicationReviewed}},
		{&stats.Shortlisted, []interface{}{"status = ?", models.ApplicationShortlisted}},
		{&stats.Rejected, []interface{}{"status = ?", models.ApplicationRejected}},
		{&stats.Recent, []interface{}{"created_at >= ?", time.Now().AddDate(0, 0, -7)}},
	}
	for _, c := range counts {
		q := s.DB.Model(&models.Application{})
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
