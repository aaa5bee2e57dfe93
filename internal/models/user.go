package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleJobseeker UserRole = "jobseeker"
	RoleRecruiter UserRole = "recruiter"
)

func (r UserRole) Valid() bool {
	return r == RoleJobseeker || r == RoleRecruiter
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Role     UserRole           `bson:"role" json:"role"`

	// Recruiter profile; company is copied onto jobs at posting time.
	Company string `bson:"company,omitempty" json:"company,omitempty"`

	// Jobseeker bookmarks.
	SavedJobs []primitive.ObjectID `bson:"saved_jobs,omitempty" json:"savedJobs,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PublicProfile is the applicant summary joined onto applications
// when a recruiter lists applicants for a job.
type PublicProfile struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}
