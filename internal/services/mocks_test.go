package services

import (
	"context"

	"github.com/joblane/joblane-backend/internal/models"
	mongorepo "github.com/joblane/joblane-backend/internal/repositories/mongo"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (m *mockUserRepo) add(u models.User) primitive.ObjectID {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.ID] = &u
	return u.ID
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return utils.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *mockUserRepo) SetSavedJobs(_ context.Context, userID primitive.ObjectID, saved []primitive.ObjectID) error {
	u, ok := m.users[userID]
	if !ok {
		return utils.ErrNotFound
	}
	u.SavedJobs = saved
	return nil
}

type mockJobRepo struct {
	jobs map[primitive.ObjectID]*models.Job

	searchItems []models.Job
	searchTotal int64
	gotFilter   mongorepo.JobSearchFilter
	gotSkip     int64
	gotLimit    int64

	pushed []primitive.ObjectID
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: map[primitive.ObjectID]*models.Job{}}
}

func (m *mockJobRepo) add(j models.Job) primitive.ObjectID {
	if j.ID.IsZero() {
		j.ID = primitive.NewObjectID()
	}
	m.jobs[j.ID] = &j
	return j.ID
}

func (m *mockJobRepo) Create(_ context.Context, j *models.Job) error {
	j.ID = primitive.NewObjectID()
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *mockJobRepo) GetWithPoster(ctx context.Context, id primitive.ObjectID) (*models.JobWithPoster, error) {
	j, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.JobWithPoster{Job: *j}, nil
}

func (m *mockJobRepo) Search(_ context.Context, f mongorepo.JobSearchFilter, skip, limit int64) ([]models.Job, int64, error) {
	m.gotFilter, m.gotSkip, m.gotLimit = f, skip, limit
	return m.searchItems, m.searchTotal, nil
}

func (m *mockJobRepo) Update(ctx context.Context, id primitive.ObjectID, upd mongorepo.JobUpdate) (*models.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.IsActive != nil {
		j.IsActive = *upd.IsActive
	}
	cp := *j
	return &cp, nil
}

func (m *mockJobRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.jobs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *mockJobRepo) ListByPoster(_ context.Context, posterID primitive.ObjectID) ([]models.JobWithApplicantCount, error) {
	rows := []models.JobWithApplicantCount{}
	for _, j := range m.jobs {
		if j.PostedBy == posterID {
			rows = append(rows, models.JobWithApplicantCount{Job: *j})
		}
	}
	return rows, nil
}

func (m *mockJobRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Job, error) {
	jobs := []models.Job{}
	for _, id := range ids {
		if j, ok := m.jobs[id]; ok {
			jobs = append(jobs, *j)
		}
	}
	return jobs, nil
}

func (m *mockJobRepo) PushApplicant(_ context.Context, jobID, applicationID primitive.ObjectID) error {
	m.pushed = append(m.pushed, applicationID)
	if j, ok := m.jobs[jobID]; ok {
		j.Applicants = append(j.Applicants, applicationID)
	}
	return nil
}

type pairKey struct {
	job, applicant primitive.ObjectID
}

type mockApplicationRepo struct {
	apps  map[primitive.ObjectID]*models.Application
	pairs map[pairKey]struct{}
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{
		apps:  map[primitive.ObjectID]*models.Application{},
		pairs: map[pairKey]struct{}{},
	}
}

func (m *mockApplicationRepo) Create(_ context.Context, a *models.Application) error {
	key := pairKey{a.JobID, a.ApplicantID}
	if _, dup := m.pairs[key]; dup {
		return utils.ErrDuplicate
	}
	a.ID = primitive.NewObjectID()
	m.apps[a.ID] = a
	m.pairs[key] = struct{}{}
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockApplicationRepo) ListByApplicant(_ context.Context, applicantID primitive.ObjectID) ([]models.ApplicationWithJob, error) {
	rows := []models.ApplicationWithJob{}
	for _, a := range m.apps {
		if a.ApplicantID == applicantID {
			rows = append(rows, models.ApplicationWithJob{Application: *a})
		}
	}
	return rows, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID primitive.ObjectID) ([]models.ApplicationWithApplicant, error) {
	rows := []models.ApplicationWithApplicant{}
	for _, a := range m.apps {
		if a.JobID == jobID {
			rows = append(rows, models.ApplicationWithApplicant{Application: *a})
		}
	}
	return rows, nil
}

func (m *mockApplicationRepo) SetStatus(_ context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	a, ok := m.apps[id]
	if !ok {
		return utils.ErrNotFound
	}
	a.Status = status
	return nil
}

type mockResumeRepo struct {
	byUser map[primitive.ObjectID]*models.Resume
}

func newMockResumeRepo() *mockResumeRepo {
	return &mockResumeRepo{byUser: map[primitive.ObjectID]*models.Resume{}}
}

func (m *mockResumeRepo) Upsert(_ context.Context, doc *models.Resume) (*models.Resume, error) {
	existing, ok := m.byUser[doc.UserID]
	if ok {
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
	} else {
		doc.ID = primitive.NewObjectID()
	}
	cp := *doc
	m.byUser[doc.UserID] = &cp
	return doc, nil
}

func (m *mockResumeRepo) GetByUser(_ context.Context, userID primitive.ObjectID) (*models.Resume, error) {
	r, ok := m.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockResumeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Resume, error) {
	for _, r := range m.byUser {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *mockResumeRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	if _, ok := m.byUser[userID]; !ok {
		return utils.ErrNotFound
	}
	delete(m.byUser, userID)
	return nil
}
