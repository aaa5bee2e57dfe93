package services

import (
	"context"
	"errors"
	"time"

	"github.com/joblane/joblane-backend/internal/models"
	mongorepo "github.com/joblane/joblane-backend/internal/repositories/mongo"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplyParams struct {
	ResumeID    string
	CoverLetter string
}

// ToggleSaveResult reports the new membership state after a bookmark flip.
type ToggleSaveResult struct {
	Saved     bool                 `json:"saved"`
	SavedJobs []primitive.ObjectID `json:"savedJobs"`
}

type ApplicationService interface {
	Apply(ctx context.Context, applicantID, jobID string, p ApplyParams) (*models.Application, error)
	MyApplications(ctx context.Context, applicantID string) ([]models.ApplicationWithJob, error)
	JobApplicants(ctx context.Context, requesterID, jobID string) ([]models.ApplicationWithApplicant, error)
	SetStatus(ctx context.Context, requesterID, applicationID string, status models.ApplicationStatus) (*models.Application, error)
	ToggleSave(ctx context.Context, userID, jobID string) (*ToggleSaveResult, error)
	SavedJobs(ctx context.Context, userID string) ([]models.Job, error)
}

type applicationService struct {
	applications mongorepo.ApplicationRepository
	jobs         mongorepo.JobRepository
	users        mongorepo.UserRepository
}

func NewApplicationService(
	applications mongorepo.ApplicationRepository,
	jobs mongorepo.JobRepository,
	users mongorepo.UserRepository,
) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs, users: users}
}

func (s *applicationService) Apply(ctx context.Context, applicantID, jobID string, p ApplyParams) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	applicant, err := primitive.ObjectIDFromHex(applicantID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}
	job, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job id", err)
	}

	if _, err := s.jobs.GetByID(ctx, job); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	app := &models.Application{
		JobID:       job,
		ApplicantID: applicant,
		CoverLetter: p.CoverLetter,
		Status:      models.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}
	if p.ResumeID != "" {
		resumeID, err := primitive.ObjectIDFromHex(p.ResumeID)
		if err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, "invalid resume id", err)
		}
		app.ResumeID = &resumeID
	}

	// The unique (job, applicant) index decides races: one insert wins,
	// the other surfaces as a conflict.
	if err := s.applications.Create(ctx, app); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "You have already applied to this job", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}

	if err := s.jobs.PushApplicant(ctx, job, app.ID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record applicant on job", err)
	}
	return app, nil
}

func (s *applicationService) MyApplications(ctx context.Context, applicantID string) ([]models.ApplicationWithJob, error) {
	const op = "ApplicationService.MyApplications"

	applicant, err := primitive.ObjectIDFromHex(applicantID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	rows, err := s.applications.ListByApplicant(ctx, applicant)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) JobApplicants(ctx context.Context, requesterID, jobID string) ([]models.ApplicationWithApplicant, error) {
	const op = "ApplicationService.JobApplicants"

	job, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job id", err)
	}

	j, err := s.jobs.GetByID(ctx, job)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}
	if j.PostedBy.Hex() != requesterID {
		return nil, utils.E(utils.CodeForbidden, op, "not authorized to view applicants for this job", nil)
	}

	rows, err := s.applications.ListByJob(ctx, job)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applicants", err)
	}
	return rows, nil
}

func (s *applicationService) SetStatus(ctx context.Context, requesterID, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	const op = "ApplicationService.SetStatus"

	id, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid application id", err)
	}
	if !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}

	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load application", err)
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}
	if job.PostedBy.Hex() != requesterID {
		return nil, utils.E(utils.CodeForbidden, op, "not authorized to update this application", nil)
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"cannot move application from "+string(app.Status)+" to "+string(status), nil)
	}

	if err := s.applications.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update status", err)
	}

	app.Status = status
	return app, nil
}

func (s *applicationService) ToggleSave(ctx context.Context, userID, jobID string) (*ToggleSaveResult, error) {
	const op = "ApplicationService.ToggleSave"

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}
	jid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job id", err)
	}

	if _, err := s.jobs.GetByID(ctx, jid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	saved := make([]primitive.ObjectID, 0, len(user.SavedJobs)+1)
	found := false
	for _, id := range user.SavedJobs {
		if id == jid {
			found = true
			continue
		}
		saved = append(saved, id)
	}
	if !found {
		saved = append(saved, jid)
	}

	if err := s.users.SetSavedJobs(ctx, uid, saved); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save bookmarks", err)
	}
	return &ToggleSaveResult{Saved: !found, SavedJobs: saved}, nil
}

func (s *applicationService) SavedJobs(ctx context.Context, userID string) ([]models.Job, error) {
	const op = "ApplicationService.SavedJobs"

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	jobs, err := s.jobs.FindByIDs(ctx, user.SavedJobs)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load saved jobs", err)
	}

	// preserve the order jobs were saved in
	byID := make(map[primitive.ObjectID]models.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	ordered := make([]models.Job, 0, len(user.SavedJobs))
	for _, id := range user.SavedJobs {
		if j, ok := byID[id]; ok {
			ordered = append(ordered, j)
		}
	}
	return ordered, nil
}
