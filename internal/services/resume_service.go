package services

import (
	"context"
	"errors"
	"strings"

	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/pdf"
	mongorepo "github.com/joblane/joblane-backend/internal/repositories/mongo"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaveResumeParams is the full replacement payload; a save always overwrites
// the user's existing resume wholesale.
type SaveResumeParams struct {
	Template       models.ResumeTemplate
	PersonalInfo   models.PersonalInfo
	Education      []models.Education
	Experience     []models.Experience
	Skills         []models.ResumeSkill
	Projects       []models.Project
	Certifications []models.Certification
	Languages      []models.Language
}

type ResumeService interface {
	Save(ctx context.Context, userID string, p SaveResumeParams) (*models.Resume, error)
	Mine(ctx context.Context, userID string) (*models.Resume, error)
	Get(ctx context.Context, resumeID string) (*models.Resume, error)
	Delete(ctx context.Context, userID string) error
	Download(ctx context.Context, resumeID string) ([]byte, string, error)
}

type resumeService struct {
	resumes  mongorepo.ResumeRepository
	renderer *pdf.Renderer
}

func NewResumeService(resumes mongorepo.ResumeRepository, renderer *pdf.Renderer) ResumeService {
	return &resumeService{resumes: resumes, renderer: renderer}
}

func (s *resumeService) Save(ctx context.Context, userID string, p SaveResumeParams) (*models.Resume, error) {
	const op = "ResumeService.Save"

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	p.PersonalInfo.FullName = strings.TrimSpace(p.PersonalInfo.FullName)
	p.PersonalInfo.Email = strings.TrimSpace(p.PersonalInfo.Email)
	if p.PersonalInfo.FullName == "" || p.PersonalInfo.Email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "personalInfo.fullName and personalInfo.email are required", nil)
	}

	if p.Template == "" {
		p.Template = models.TemplateModern
	}
	if !p.Template.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "template must be modern, classic, or minimal", nil)
	}

	for i := range p.Skills {
		if p.Skills[i].Name == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "skill name is required", nil)
		}
		if p.Skills[i].Level == "" {
			p.Skills[i].Level = models.SkillIntermediate
		}
		if !p.Skills[i].Level.Valid() {
			return nil, utils.E(utils.CodeInvalidArgument, op, "invalid skill level", nil)
		}
	}
	for _, edu := range p.Education {
		if edu.Institution == "" || edu.Degree == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "education entries need institution and degree", nil)
		}
	}
	for _, exp := range p.Experience {
		if exp.Company == "" || exp.Position == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "experience entries need company and position", nil)
		}
	}

	doc := &models.Resume{
		UserID:         uid,
		Template:       p.Template,
		PersonalInfo:   p.PersonalInfo,
		Education:      p.Education,
		Experience:     p.Experience,
		Skills:         p.Skills,
		Projects:       p.Projects,
		Certifications: p.Certifications,
		Languages:      p.Languages,
	}

	out, err := s.resumes.Upsert(ctx, doc)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save resume", err)
	}
	return out, nil
}

func (s *resumeService) Mine(ctx context.Context, userID string) (*models.Resume, error) {
	const op = "ResumeService.Mine"

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	out, err := s.resumes.GetByUser(ctx, uid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load resume", err)
	}
	return out, nil
}

func (s *resumeService) Get(ctx context.Context, resumeID string) (*models.Resume, error) {
	const op = "ResumeService.Get"

	id, err := primitive.ObjectIDFromHex(resumeID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid resume id", err)
	}

	out, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load resume", err)
	}
	return out, nil
}

func (s *resumeService) Delete(ctx context.Context, userID string) error {
	const op = "ResumeService.Delete"

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	if err := s.resumes.DeleteByUser(ctx, uid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete resume", err)
	}
	return nil
}

// Download renders the resume to a complete PDF in memory, so a failure
// never leaves partial bytes on the wire.
func (s *resumeService) Download(ctx context.Context, resumeID string) ([]byte, string, error) {
	const op = "ResumeService.Download"

	resume, err := s.Get(ctx, resumeID)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.Render(resume)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to render resume", err)
	}
	return data, pdf.FileName(resume.PersonalInfo.FullName), nil
}
