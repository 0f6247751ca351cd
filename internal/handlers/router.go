package handlers

import (
	"github.com/foundryai/studio-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the router wires together. main and the handler
// tests build it the same way.
type Deps struct {
	DB             *gorm.DB
	Auth           *services.AuthService
	Health         *HealthHandler
	Careers        *CareerHandler
	Meetings       *MeetingHandler
	Admin          *AdminHandler
	Jobs           *JobHandler
	Contact        *ContactHandler
	AllowedOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	if len(d.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = d.AllowedOrigins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	{
		api.GET("/health", d.Health.Check)

		api.GET("/careers", d.Careers.ListJobs)
		api.POST("/careers", d.Careers.Apply)
		api.POST("/careers/upload-resume", d.Careers.UploadResume)

		api.POST("/contact", d.Contact.Submit)
		api.POST("/contact/schedule", d.Meetings.Schedule)
	}

	admin := api.Group("/admin")
	admin.POST("/login", RequireDatabase(d.DB), d.Admin.Login)

	guarded := admin.Group("", RequireAdmin(d.Auth), RequireDatabase(d.DB))
	{
		guarded.GET("/applications", d.Admin.ListApplications)
		guarded.GET("/applications/:id", d.Admin.GetApplication)
		guarded.GET("/applications/:id/resume", d.Admin.DownloadResume)
		guarded.PATCH("/applications/:id/status", d.Admin.UpdateApplicationStatus)
		guarded.DELETE("/applications/:id", d.Admin.DeleteApplication)
		guarded.GET("/stats", d.Admin.Stats)

		guarded.GET("/meetings", d.Meetings.List)
		guarded.POST("/meetings/:id/cancel", d.Meetings.Cancel)
		guarded.POST("/meetings/:id/complete", d.Meetings.Complete)

		guarded.GET("/jobs", d.Jobs.ListAll)
		guarded.POST("/jobs", d.Jobs.Create)
		guarded.PUT("/jobs/:id", d.Jobs.Update)
		guarded.DELETE("/jobs/:id", d.Jobs.Delete)
		guarded.PATCH("/jobs/:id/toggle", d.Jobs.Toggle)
	}

	return r
}
