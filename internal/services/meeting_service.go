package services

import (
	"errors"
	"strings"
	"time"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/models"
	"github.com/foundryai/studio-api/internal/notify"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type MeetingService struct {
	DB         *gorm.DB
	Notifier   Notifier
	AdminEmail string
	FromEmail  string
}

func NewMeetingService(db *gorm.DB, notifier Notifier, adminEmail, fromEmail string) *MeetingService {
	return &MeetingService{
		DB:         db,
		Notifier:   notifier,
		AdminEmail: adminEmail,
		FromEmail:  fromEmail,
	}
}

// Schedule books a consultation slot. The pre-check gives racing callers a
// friendly conflict message; the partial unique index on (date, time) is the
// actual guarantee, so a unique violation on insert maps to the same error.
func (s *MeetingService) Schedule(req *dtos.ScheduleRequest) (*models.Meeting, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var existing models.Meeting
	err = s.DB.Where("date = ? AND time = ? AND status <> ?", date, req.Time, models.MeetingCancelled).
		First(&existing).Error
	if err == nil {
		return nil, ErrSlotTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	meeting := &models.Meeting{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Industry:    req.Industry,
		Services:    models.StringList(req.Services),
		SocialMedia: req.SocialMedia,
		Documents:   req.Documents,
		Date:        date,
		Time:        req.Time,
		Status:      models.MeetingScheduled,
	}
	if err := s.DB.Create(meeting).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.AdminEmail != "" {
		s.Notifier.Dispatch(notify.MeetingAlert(meeting, s.AdminEmail, s.FromEmail))
	}
	s.Notifier.Dispatch(notify.MeetingConfirmation(meeting, s.FromEmail))

	return meeting, nil
}

// List returns all meetings ordered by date, then slot label.
func (s *MeetingService) List() ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := s.DB.Order("date ASC, time ASC").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *MeetingService) Get(id uint) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := s.DB.First(&meeting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// Cancel moves a scheduled meeting to its cancelled terminal state and
// notifies the client exactly once.
func (s *MeetingService) Cancel(id uint, reason string) (*models.Meeting, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrMissingReason
	}

	meeting, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	switch meeting.Status {
	case models.MeetingCancelled:
		return nil, ErrAlreadyCancelled
	case models.MeetingCompleted:
		return nil, ErrAlreadyCompleted
	}

	now := time.Now()
	err = s.DB.Model(meeting).Updates(map[string]interface{}{
		"status":              models.MeetingCancelled,
		"cancellation_reason": reason,
		"cancelled_at":        now,
	}).Error
	if err != nil {
		return nil, err
	}

	s.Notifier.Dispatch(notify.MeetingCancellation(meeting, s.FromEmail))

	return meeting, nil
}

// Complete marks a scheduled meeting as held. Terminal, no notification.
func (s *MeetingService) Complete(id uint) (*models.Meeting, error) {
	meeting, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	switch meeting.Status {
	case models.MeetingCancelled:
		return nil, ErrAlreadyCancelled
	case models.MeetingCompleted:
		return nil, ErrAlreadyCompleted
	}

	if err := s.DB.Model(meeting).Update("status", models.MeetingCompleted).Error; err != nil {
		return nil, err
	}
	return meeting, nil
}

// isUniqueViolation detects a duplicate-key insert on Postgres (23505) and
// on the sqlite driver the tests run against.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
