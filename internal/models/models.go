package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Application statuses. An application is created as pending and only an
// admin moves it from there.
const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
)

// Meeting statuses. Completed and cancelled are terminal.
const (
	MeetingScheduled = "scheduled"
	MeetingCompleted = "completed"
	MeetingCancelled = "cancelled"
)

// JobTypes is the accepted set of employment types for a posting.
var JobTypes = []string{"Full time", "Part time", "Contract", "Internship"}

func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected:
		return true
	}
	return false
}

func ValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}

// StringList stores a []string as a JSON text column. Used for meeting
// service selections and job requirements.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`
	Phone string `json:"phone"`
	// Position is a plain string on purpose: applications may reference
	// postings that have since been removed.
	Position    string `gorm:"not null" json:"position"`
	Experience  string `json:"experience"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`

	ResumeURL      string `json:"resume_url"`
	ResumeFilename string `json:"resume_filename"`

	Status string `gorm:"default:'pending';index" json:"status"`
}

type Meeting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Industry string `gorm:"not null" json:"industry"`

	Services    StringList `gorm:"type:text" json:"services"`
	SocialMedia string     `json:"social_media"`
	Documents   string     `json:"documents"`

	// The partial unique index makes slot reservation atomic: at most one
	// non-cancelled meeting may hold a (date, time) pair.
	Date time.Time `gorm:"type:date;index:idx_meeting_slot,unique,where:status <> 'cancelled'" json:"date"`
	Time string    `gorm:"not null;index:idx_meeting_slot,unique,where:status <> 'cancelled'" json:"time"`

	Status             string     `gorm:"default:'scheduled'" json:"status"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title        string     `gorm:"not null" json:"title"`
	Department   string     `json:"department"`
	Type         string     `gorm:"default:'Full time'" json:"type"`
	Location     string     `json:"location"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements StringList `gorm:"type:text" json:"requirements"`
	Salary       string     `json:"salary,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
}

type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
