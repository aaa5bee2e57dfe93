package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed.
// pending may move to any reviewed state; reviewed may still be decided;
// rejected and hired are terminal.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !next.Valid() || next == StatusPending {
		return false
	}
	switch s {
	case StatusPending:
		return true
	case StatusReviewed:
		return next != StatusReviewed
	default:
		return false
	}
}

type Application struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	JobID       primitive.ObjectID  `bson:"job_id" json:"jobId"`
	ApplicantID primitive.ObjectID  `bson:"applicant_id" json:"applicantId"`
	ResumeID    *primitive.ObjectID `bson:"resume_id,omitempty" json:"resumeId,omitempty"`
	CoverLetter string              `bson:"cover_letter,omitempty" json:"coverLetter,omitempty"`
	Status      ApplicationStatus   `bson:"status" json:"status"`
	AppliedAt   time.Time           `bson:"applied_at" json:"appliedAt"`
}

// JobSummary is the slice of a job joined onto a jobseeker's application list.
type JobSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Company  string             `bson:"company" json:"company"`
	Location string             `bson:"location" json:"location"`
	Type     JobType            `bson:"type" json:"type"`
	Salary   SalaryRange        `bson:"salary,omitempty" json:"salary,omitempty"`
}

type ApplicationWithJob struct {
	Application `bson:",inline"`
	Job         *JobSummary `bson:"job,omitempty" json:"job,omitempty"`
}

// ApplicationWithApplicant is the recruiter view of a single application.
type ApplicationWithApplicant struct {
	Application `bson:",inline"`
	Applicant   *PublicProfile `bson:"applicant,omitempty" json:"applicant,omitempty"`
	Resume      *ResumeSummary `bson:"resume,omitempty" json:"resume,omitempty"`
}
