package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

type SalaryRange struct {
	Min      int    `bson:"min,omitempty" json:"min,omitempty"`
	Max      int    `bson:"max,omitempty" json:"max,omitempty"`
	Currency string `bson:"currency,omitempty" json:"currency,omitempty"`
}

type ExperienceRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max,omitempty" json:"max,omitempty"`
}

type Job struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title        string               `bson:"title" json:"title"`
	Company      string               `bson:"company" json:"company"` // derived from the posting recruiter
	Location     string               `bson:"location" json:"location"`
	Type         JobType              `bson:"type" json:"type"`
	Salary       SalaryRange          `bson:"salary,omitempty" json:"salary,omitempty"`
	Experience   ExperienceRange      `bson:"experience" json:"experience"`
	Description  string               `bson:"description" json:"description"`
	Requirements []string             `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Skills       []string             `bson:"skills,omitempty" json:"skills,omitempty"`
	Benefits     []string             `bson:"benefits,omitempty" json:"benefits,omitempty"`
	PostedBy     primitive.ObjectID   `bson:"posted_by" json:"postedBy"` // immutable after creation
	Applicants   []primitive.ObjectID `bson:"applicants,omitempty" json:"applicants,omitempty"`
	IsActive     bool                 `bson:"is_active" json:"isActive"`
	Deadline     *time.Time           `bson:"deadline,omitempty" json:"deadline,omitempty"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
}

// JobWithPoster joins the poster's public fields onto a job for detail views.
type JobWithPoster struct {
	Job        `bson:",inline"`
	PosterName string `bson:"poster_name,omitempty" json:"posterName,omitempty"`
}

// JobWithApplicantCount is the recruiter dashboard row for /jobs/my-jobs.
type JobWithApplicantCount struct {
	Job            `bson:",inline"`
	ApplicantCount int64 `bson:"applicant_count" json:"applicantCount"`
}
