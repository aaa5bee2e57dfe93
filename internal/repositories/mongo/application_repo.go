package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.Application) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.ApplicationWithJob, error)
	ListByJob(ctx context.Context, jobID primitive.ObjectID) ([]models.ApplicationWithApplicant, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error
}

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepository {
	return &applicationRepo{col: db.Collection("applications")}
}

// Create inserts the application. The unique (job_id, applicant_id) index
// turns a concurrent double-apply into exactly one utils.ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = id
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var a models.Application
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.ApplicationWithJob, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"applicant_id": applicantID}}},
		{{Key: "$sort", Value: bson.D{{Key: "applied_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "jobs",
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$job",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []models.ApplicationWithJob{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID primitive.ObjectID) ([]models.ApplicationWithApplicant, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"job_id": jobID}}},
		{{Key: "$sort", Value: bson.D{{Key: "applied_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "applicant_id",
			"foreignField": "_id",
			"as":           "applicant",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$applicant",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "resumes",
			"localField":   "resume_id",
			"foreignField": "_id",
			"as":           "resume",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$resume",
			"preserveNullAndEmptyArrays": true,
		}}},
		// never ship password hashes to the recruiter view
		{{Key: "$project", Value: bson.M{"applicant.password": 0}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []models.ApplicationWithApplicant{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *applicationRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
