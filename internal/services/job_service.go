package services

import (
	"errors"
	"log"
	"strings"

	"github.com/foundryai/studio-api/internal/dtos"
	"github.com/foundryai/studio-api/internal/models"
	"gorm.io/gorm"
)

// fallbackJobs keeps the public careers page populated when the store is
// empty or unreachable. Availability choice, not an error path.
var fallbackJobs = []models.Job{
	{
		ID:         1,
		Title:      "FullStack Developers with basic knowledge of Prompt Engineering",
		Department: "Engineering",
		Type:       "Full time",
		Location:   "Bangalore, India",
		Description: "Develop robust web applications and APIs with modern frameworks " +
			"while leveraging AI prompt engineering for enhanced functionality.",
		Requirements: models.StringList{
			"3+ years Full Stack Development",
			"React/JavaScript expertise",
			"Database design",
			"Basic Prompt Engineering knowledge",
			"API development",
		},
		IsActive: true,
	},
	{
		ID:         2,
		Title:      "Software Engineer who have knowledge on GEO",
		Department: "Engineering",
		Type:       "Full time",
		Location:   "Bangalore, India",
		Description: "Build location based applications and services using geospatial " +
			"technologies and mapping solutions.",
		Requirements: models.StringList{
			"2+ years Software Engineering",
			"GIS/Geospatial knowledge",
			"Mapping APIs experience",
			"Database systems",
			"Problem solving skills",
		},
		IsActive: true,
	},
	{
		ID:         3,
		Title:      "Performance Marketing Lead",
		Department: "Marketing",
		Type:       "Full time",
		Location:   "Bangalore, India",
		Description: "Lead performance marketing campaigns across digital channels to drive " +
			"growth and user acquisition for our portfolio companies.",
		Requirements: models.StringList{
			"5+ years Performance Marketing",
			"Digital advertising platforms",
			"Analytics and data driven approach",
			"Campaign optimization",
			"Team leadership",
		},
		IsActive: true,
	},
}

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) Create(req *dtos.JobRequest) (*models.Job, error) {
	jobType := req.Type
	if jobType == "" {
		jobType = "Full time"
	}
	if !models.ValidJobType(jobType) {
		return nil, ErrInvalidJobType
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	job := &models.Job{
		Title:        req.Title,
		Department:   req.Department,
		Type:         jobType,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: splitRequirements(req.Requirements),
		Salary:       req.Salary,
		IsActive:     active,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Update(id uint, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	jobType := req.Type
	if jobType == "" {
		jobType = job.Type
	}
	if !models.ValidJobType(jobType) {
		return nil, ErrInvalidJobType
	}

	job.Title = req.Title
	job.Department = req.Department
	job.Type = jobType
	job.Location = req.Location
	job.Description = req.Description
	job.Requirements = splitRequirements(req.Requirements)
	job.Salary = req.Salary
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Delete(id uint) error {
	res := s.DB.Delete(&models.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleActive flips the posting's visibility on the public listing.
func (s *JobService) ToggleActive(id uint) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	job.IsActive = !job.IsActive
	if err := s.DB.Model(job).Update("is_active", job.IsActive).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ListAll returns every posting for the admin console, newest first.
func (s *JobService) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListActive serves the public careers page. When the store is empty or the
// query fails it falls back to the seed postings so the page never goes dark.
func (s *JobService) ListActive() []models.Job {
	var jobs []models.Job
	err := s.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		log.Printf("⚠️  Job listing query failed, serving fallback postings: %v", err)
		return fallbackJobs
	}
	if len(jobs) == 0 {
		return fallbackJobs
	}
	return jobs
}

// splitRequirements turns "a, b, c" into ["a","b","c"], dropping empty
// segments.
func splitRequirements(raw string) models.StringList {
	parts := strings.Split(raw, ",")
	out := make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
