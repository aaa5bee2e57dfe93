package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}

	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// users
	users := db.Collection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("uniq_email").
			SetUnique(true),
	})
	if err != nil {
		return err
	}

	// applications: the one-application-per-(job,applicant) invariant lives
	// here so concurrent applies race at the store, not in the service.
	applications := db.Collection("applications")
	_, err = applications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_job_applicant").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "applicant_id", Value: 1}, {Key: "applied_at", Value: -1}},
			Options: options.Index().SetName("by_applicant_applied"),
		},
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "applied_at", Value: -1}},
			Options: options.Index().SetName("by_job_applied"),
		},
	})
	if err != nil {
		return err
	}

	// jobs: listing is always is_active + created_at desc; my-jobs by poster.
	jobs := db.Collection("jobs")
	_, err = jobs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_active_created"),
		},
		{
			Keys:    bson.D{{Key: "posted_by", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_poster_created"),
		},
	})
	if err != nil {
		return err
	}

	// resumes: one resume per user, upsert keyed on user_id.
	resumes := db.Collection("resumes")
	_, err = resumes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().
			SetName("uniq_user").
			SetUnique(true),
	})
	return err
}
