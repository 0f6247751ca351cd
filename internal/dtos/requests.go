package dtos

// ApplicationRequest is the public job-application submission. Name, email
// and position are the required minimum; everything else is optional so the
// form stays permissive.
type ApplicationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Position    string `json:"position" binding:"required"`
	Experience  string `json:"experience"`
	CoverLetter string `json:"cover_letter"`

	ResumeURL      string `json:"resume_url"`
	ResumeFilename string `json:"resume_filename"`
}

// ScheduleRequest books a consultation call. Date is a calendar date in
// YYYY-MM-DD form; Time is a free-text slot label like "5:00 PM".
type ScheduleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required"`
	Industry    string   `json:"industry" binding:"required"`
	Services    []string `json:"services"`
	SocialMedia string   `json:"social_media"`
	Documents   string   `json:"documents"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// JobRequest creates or updates a posting. Requirements arrive as a single
// comma-separated string and are split server side.
type JobRequest struct {
	Title        string `json:"title" binding:"required"`
	Department   string `json:"department"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
	IsActive     *bool  `json:"is_active"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
