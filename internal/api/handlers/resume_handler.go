package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/services"
	"github.com/joblane/joblane-backend/internal/utils"
)

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

type SaveResumeRequest struct {
	Template       models.ResumeTemplate  `json:"template"`
	PersonalInfo   models.PersonalInfo    `json:"personalInfo" binding:"required"`
	Education      []models.Education     `json:"education"`
	Experience     []models.Experience    `json:"experience"`
	Skills         []models.ResumeSkill   `json:"skills"`
	Projects       []models.Project       `json:"projects"`
	Certifications []models.Certification `json:"certifications"`
	Languages      []models.Language      `json:"languages"`
}

func (h *ResumeHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Save", "invalid request body", err))
		return
	}

	resume, err := h.svc.Save(c.Request.Context(), userID, services.SaveResumeParams{
		Template:       req.Template,
		PersonalInfo:   req.PersonalInfo,
		Education:      req.Education,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Certifications: req.Certifications,
		Languages:      req.Languages,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Mine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resume, err := h.svc.Mine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted"})
}

// Download streams the rendered PDF. Rendering happens fully before the
// first byte is written, so a missing resume is a clean 404.
func (h *ResumeHandler) Download(c *gin.Context) {
	data, filename, err := h.svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
