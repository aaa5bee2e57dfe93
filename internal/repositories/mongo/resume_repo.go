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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResumeRepository interface {
	Upsert(ctx context.Context, r *models.Resume) (*models.Resume, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Resume, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resume, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type resumeRepo struct {
	col *mongo.Collection
}

func NewResumeRepo(db *mongo.Database) ResumeRepository {
	return &resumeRepo{col: db.Collection("resumes")}
}

// Upsert replaces the user's resume wholesale, keyed by user_id; updated_at
// is refreshed on every save.
func (r *resumeRepo) Upsert(ctx context.Context, doc *models.Resume) (*models.Resume, error) {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"template":       doc.Template,
			"personal_info":  doc.PersonalInfo,
			"education":      doc.Education,
			"experience":     doc.Experience,
			"skills":         doc.Skills,
			"projects":       doc.Projects,
			"certifications": doc.Certifications,
			"languages":      doc.Languages,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"user_id":    doc.UserID,
			"created_at": now,
		},
	}

	var out models.Resume
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"user_id": doc.UserID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *resumeRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Resume, error) {
	var out models.Resume
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &out, err
}

func (r *resumeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resume, error) {
	var out models.Resume
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &out, err
}

func (r *resumeRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
