package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/joblane/joblane-backend/internal/api/handlers"
	"github.com/joblane/joblane-backend/internal/api/middleware"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Resume      *handlers.ResumeHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.GET("/auth/me", middleware.JWTAuth(), d.Auth.Me)

	// Jobs: listing and detail are public; download too.
	api.GET("/jobs", d.Job.List)
	api.GET("/resume/download/:id", d.Resume.Download)

	recruiter := api.Group("/", middleware.JWTAuth(), middleware.RequireRecruiter())
	recruiter.GET("/jobs/my-jobs", d.Job.MyJobs)
	recruiter.POST("/jobs", d.Job.Create)
	recruiter.PUT("/jobs/:id", d.Job.Update)
	recruiter.DELETE("/jobs/:id", d.Job.Delete)
	recruiter.GET("/applications/job/:jobId", d.Application.JobApplicants)
	recruiter.PUT("/applications/:id/status", d.Application.UpdateStatus)

	api.GET("/jobs/:id", d.Job.Get)

	jobseeker := api.Group("/", middleware.JWTAuth(), middleware.RequireJobseeker())
	jobseeker.GET("/applications/my-applications", d.Application.MyApplications)
	jobseeker.GET("/applications/saved", d.Application.SavedJobs)
	jobseeker.POST("/applications/save/:jobId", d.Application.ToggleSave)
	jobseeker.POST("/applications/:jobId", d.Application.Apply)

	// Resume CRUD is open to both roles.
	auth := api.Group("/", middleware.JWTAuth())
	auth.POST("/resume", d.Resume.Save)
	auth.GET("/resume", d.Resume.Mine)
	auth.GET("/resume/:id", d.Resume.Get)
	auth.DELETE("/resume", d.Resume.Delete)
}
