package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobSearchFilter carries the normalized listing criteria. Nil/zero fields
// mean "no constraint"; only active jobs are ever matched.
type JobSearchFilter struct {
	Search     string
	Location   string
	Type       models.JobType
	Experience *int
}

// JobUpdate lists the recruiter-editable fields; nil pointers are left
// untouched. posted_by and company are deliberately absent.
type JobUpdate struct {
	Title        *string
	Location     *string
	Type         *models.JobType
	Salary       *models.SalaryRange
	Experience   *models.ExperienceRange
	Description  *string
	Requirements []string
	Skills       []string
	Benefits     []string
	IsActive     *bool
	Deadline     *time.Time
}

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	GetWithPoster(ctx context.Context, id primitive.ObjectID) (*models.JobWithPoster, error)
	Search(ctx context.Context, f JobSearchFilter, skip, limit int64) ([]models.Job, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, upd JobUpdate) (*models.Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByPoster(ctx context.Context, posterID primitive.ObjectID) ([]models.JobWithApplicantCount, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Job, error)
	PushApplicant(ctx context.Context, jobID, applicationID primitive.ObjectID) error
}

type jobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepository {
	return &jobRepo{col: db.Collection("jobs")}
}

// buildSearchQuery translates a filter into the mongo query document.
// Free text matches title OR company OR any skill (case-insensitive
// substring); the other criteria AND onto it.
func buildSearchQuery(f JobSearchFilter) bson.M {
	query := bson.M{"is_active": true}

	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"company": re},
			bson.M{"skills": re},
		}
	}
	if f.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.Experience != nil {
		query["experience.min"] = bson.M{"$lte": *f.Experience}
	}
	return query
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		j.ID = id
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var j models.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) GetWithPoster(ctx context.Context, id primitive.ObjectID) (*models.JobWithPoster, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "posted_by",
			"foreignField": "_id",
			"as":           "poster",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"poster_name": bson.M{"$first": "$poster.name"},
		}}},
		{{Key: "$project", Value: bson.M{"poster": 0}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.JobWithPoster
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.ErrNotFound
	}
	return &rows[0], nil
}

func (r *jobRepo) Search(ctx context.Context, f JobSearchFilter, skip, limit int64) ([]models.Job, int64, error) {
	query := buildSearchQuery(f)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	jobs := []models.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, id primitive.ObjectID, upd JobUpdate) (*models.Job, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Salary != nil {
		set["salary"] = *upd.Salary
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Requirements != nil {
		set["requirements"] = upd.Requirements
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}
	if upd.Benefits != nil {
		set["benefits"] = upd.Benefits
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}
	if upd.Deadline != nil {
		set["deadline"] = upd.Deadline.UTC()
	}

	var j models.Job
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) ListByPoster(ctx context.Context, posterID primitive.ObjectID) ([]models.JobWithApplicantCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"posted_by": posterID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "applications",
			"localField":   "_id",
			"foreignField": "job_id",
			"as":           "job_applications",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"applicant_count": bson.M{"$size": "$job_applications"},
		}}},
		{{Key: "$project", Value: bson.M{"job_applications": 0}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []models.JobWithApplicantCount{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *jobRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Job, error) {
	if len(ids) == 0 {
		return []models.Job{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	jobs := []models.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepo) PushApplicant(ctx context.Context, jobID, applicationID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{"$push": bson.M{"applicants": applicationID}},
	)
	return err
}
