package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joblane/joblane-backend/internal/models"
	mongorepo "github.com/joblane/joblane-backend/internal/repositories/mongo"
	"github.com/joblane/joblane-backend/internal/services"
	"github.com/joblane/joblane-backend/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// List handles GET /jobs: search, filter, paginate. Query parsing is
// lenient: bad numbers mean "no filter".
func (h *JobHandler) List(c *gin.Context) {
	result, err := h.svc.Search(c.Request.Context(), services.JobSearchQuery{
		Search:     c.Query("search"),
		Location:   c.Query("location"),
		Type:       c.Query("type"),
		Experience: c.Query("experience"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

type JobRequest struct {
	Title        string                 `json:"title" binding:"required"`
	Location     string                 `json:"location" binding:"required"`
	Type         models.JobType         `json:"type"`
	Salary       models.SalaryRange     `json:"salary"`
	Experience   models.ExperienceRange `json:"experience"`
	Description  string                 `json:"description" binding:"required"`
	Requirements []string               `json:"requirements"`
	Skills       []string               `json:"skills"`
	Benefits     []string               `json:"benefits"`
	Deadline     *time.Time             `json:"deadline"`
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}

	job, err := h.svc.Create(c.Request.Context(), userID, services.CreateJobParams{
		Title:        req.Title,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Experience:   req.Experience,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Benefits:     req.Benefits,
		Deadline:     req.Deadline,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

type JobUpdateRequest struct {
	Title        *string                 `json:"title"`
	Location     *string                 `json:"location"`
	Type         *models.JobType         `json:"type"`
	Salary       *models.SalaryRange     `json:"salary"`
	Experience   *models.ExperienceRange `json:"experience"`
	Description  *string                 `json:"description"`
	Requirements []string                `json:"requirements"`
	Skills       []string                `json:"skills"`
	Benefits     []string                `json:"benefits"`
	IsActive     *bool                   `json:"isActive"`
	Deadline     *time.Time              `json:"deadline"`
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "invalid request body", err))
		return
	}

	job, err := h.svc.Update(c.Request.Context(), userID, c.Param("id"), mongorepo.JobUpdate{
		Title:        req.Title,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Experience:   req.Experience,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Benefits:     req.Benefits,
		IsActive:     req.IsActive,
		Deadline:     req.Deadline,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job removed"})
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.svc.MyJobs(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}
