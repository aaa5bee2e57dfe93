package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joblane/joblane-backend/internal/cache"
	"github.com/joblane/joblane-backend/internal/models"
	mongorepo "github.com/joblane/joblane-backend/internal/repositories/mongo"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50

	searchCacheTTL = time.Minute
	detailCacheTTL = 5 * time.Minute

	jobsGenKey = "jobs:gen"
)

// JobSearchQuery is the raw, untrusted query input. Numeric fields arrive as
// strings; anything unparsable is treated as an absent filter, not a fault.
type JobSearchQuery struct {
	Search     string
	Location   string
	Type       string
	Experience string
	Page       string
	Limit      string
}

type JobSearchResult struct {
	Items       []models.Job `json:"items"`
	TotalPages  int64        `json:"totalPages"`
	CurrentPage int64        `json:"currentPage"`
	Total       int64        `json:"total"`
}

type CreateJobParams struct {
	Title        string
	Location     string
	Type         models.JobType
	Salary       models.SalaryRange
	Experience   models.ExperienceRange
	Description  string
	Requirements []string
	Skills       []string
	Benefits     []string
	Deadline     *time.Time
}

type JobService interface {
	Search(ctx context.Context, q JobSearchQuery) (*JobSearchResult, error)
	Get(ctx context.Context, jobID string) (*models.JobWithPoster, error)
	Create(ctx context.Context, recruiterID string, p CreateJobParams) (*models.Job, error)
	Update(ctx context.Context, recruiterID, jobID string, upd mongorepo.JobUpdate) (*models.Job, error)
	Delete(ctx context.Context, recruiterID, jobID string) error
	MyJobs(ctx context.Context, recruiterID string) ([]models.JobWithApplicantCount, error)
}

type jobService struct {
	jobs  mongorepo.JobRepository
	users mongorepo.UserRepository
	cache cache.Cache // optional; nil disables caching
}

func NewJobService(jobs mongorepo.JobRepository, users mongorepo.UserRepository, c cache.Cache) JobService {
	return &jobService{jobs: jobs, users: users, cache: c}
}

// normalizeSearchQuery folds the raw query into a store filter plus
// pagination. Page defaults to 1, limit to defaultPageSize.
func normalizeSearchQuery(q JobSearchQuery) (mongorepo.JobSearchFilter, int64, int64) {
	f := mongorepo.JobSearchFilter{
		Search:   strings.TrimSpace(q.Search),
		Location: strings.TrimSpace(q.Location),
	}

	if t := models.JobType(strings.TrimSpace(q.Type)); t.Valid() {
		f.Type = t
	}
	if exp, err := strconv.Atoi(strings.TrimSpace(q.Experience)); err == nil && exp >= 0 {
		f.Experience = &exp
	}

	page := int64(1)
	if p, err := strconv.ParseInt(strings.TrimSpace(q.Page), 10, 64); err == nil && p > 0 {
		page = p
	}

	limit := int64(defaultPageSize)
	if l, err := strconv.ParseInt(strings.TrimSpace(q.Limit), 10, 64); err == nil && l > 0 {
		if l > maxPageSize {
			l = maxPageSize
		}
		limit = l
	}

	return f, page, limit
}

func totalPages(total, limit int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func searchCacheKey(gen int64, f mongorepo.JobSearchFilter, page, limit int64) string {
	exp := -1
	if f.Experience != nil {
		exp = *f.Experience
	}
	payload, _ := json.Marshal(map[string]any{
		"search":     strings.ToLower(f.Search),
		"location":   strings.ToLower(f.Location),
		"type":       f.Type,
		"experience": exp,
		"page":       page,
		"limit":      limit,
	})
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("jobs:search:%d:%s", gen, hex.EncodeToString(sum[:]))
}

func detailCacheKey(id primitive.ObjectID) string {
	return "jobs:detail:" + id.Hex()
}

// listingGen reads the current listing generation; bumped on every job
// mutation so stale search pages age out without pattern deletes.
func (s *jobService) listingGen(ctx context.Context) int64 {
	if s.cache == nil {
		return 0
	}
	var gen int64
	_, _ = s.cache.GetJSON(ctx, jobsGenKey, &gen)
	return gen
}

func (s *jobService) bumpListingGen(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_, _ = s.cache.Incr(ctx, jobsGenKey)
}

func (s *jobService) Search(ctx context.Context, q JobSearchQuery) (*JobSearchResult, error) {
	const op = "JobService.Search"

	f, page, limit := normalizeSearchQuery(q)

	var key string
	if s.cache != nil {
		key = searchCacheKey(s.listingGen(ctx), f, page, limit)
		var cached JobSearchResult
		if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	jobs, total, err := s.jobs.Search(ctx, f, (page-1)*limit, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search jobs", err)
	}

	out := &JobSearchResult{
		Items:       jobs,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, searchCacheTTL)
	}
	return out, nil
}

func (s *jobService) Get(ctx context.Context, jobID string) (*models.JobWithPoster, error) {
	const op = "JobService.Get"

	id, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job id", err)
	}

	if s.cache != nil {
		var cached models.JobWithPoster
		if hit, _ := s.cache.GetJSON(ctx, detailCacheKey(id), &cached); hit {
			return &cached, nil
		}
	}

	job, err := s.jobs.GetWithPoster(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, detailCacheKey(id), job, detailCacheTTL)
	}
	return job, nil
}

func (s *jobService) Create(ctx context.Context, recruiterID string, p CreateJobParams) (*models.Job, error) {
	const op = "JobService.Create"

	posterID, err := primitive.ObjectIDFromHex(recruiterID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	p.Title = strings.TrimSpace(p.Title)
	p.Location = strings.TrimSpace(p.Location)
	if p.Title == "" || p.Location == "" || strings.TrimSpace(p.Description) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title, location, and description are required", nil)
	}
	if len(p.Title) > 100 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title must be at most 100 characters", nil)
	}
	if p.Type == "" {
		p.Type = models.JobTypeFullTime
	}
	if !p.Type.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job type", nil)
	}

	// Company always comes from the recruiter's profile, never the payload.
	recruiter, err := s.users.GetByID(ctx, posterID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "unknown recruiter", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load recruiter", err)
	}
	company := recruiter.Company
	if company == "" {
		company = recruiter.Name
	}

	job := &models.Job{
		Title:        p.Title,
		Company:      company,
		Location:     p.Location,
		Type:         p.Type,
		Salary:       p.Salary,
		Experience:   p.Experience,
		Description:  p.Description,
		Requirements: p.Requirements,
		Skills:       p.Skills,
		Benefits:     p.Benefits,
		PostedBy:     posterID,
		IsActive:     true,
		Deadline:     p.Deadline,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	s.bumpListingGen(ctx)
	return job, nil
}

// ownedJob loads a job and verifies the requester posted it.
func (s *jobService) ownedJob(ctx context.Context, op, recruiterID, jobID string) (*models.Job, error) {
	id, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job id", err)
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	if job.PostedBy.Hex() != recruiterID {
		return nil, utils.E(utils.CodeForbidden, op, "not authorized to modify this job", nil)
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, recruiterID, jobID string, upd mongorepo.JobUpdate) (*models.Job, error) {
	const op = "JobService.Update"

	job, err := s.ownedJob(ctx, op, recruiterID, jobID)
	if err != nil {
		return nil, err
	}
	if upd.Type != nil && !upd.Type.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job type", nil)
	}
	if upd.Title != nil && (strings.TrimSpace(*upd.Title) == "" || len(*upd.Title) > 100) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title must be 1-100 characters", nil)
	}

	updated, err := s.jobs.Update(ctx, job.ID, upd)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}

	s.bumpListingGen(ctx)
	if s.cache != nil {
		_ = s.cache.Del(ctx, detailCacheKey(job.ID))
	}
	return updated, nil
}

func (s *jobService) Delete(ctx context.Context, recruiterID, jobID string) error {
	const op = "JobService.Delete"

	job, err := s.ownedJob(ctx, op, recruiterID, jobID)
	if err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, job.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}

	s.bumpListingGen(ctx)
	if s.cache != nil {
		_ = s.cache.Del(ctx, detailCacheKey(job.ID))
	}
	return nil
}

func (s *jobService) MyJobs(ctx context.Context, recruiterID string) ([]models.JobWithApplicantCount, error) {
	const op = "JobService.MyJobs"

	posterID, err := primitive.ObjectIDFromHex(recruiterID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	rows, err := s.jobs.ListByPoster(ctx, posterID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return rows, nil
}
