package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResumeTemplate string

const (
	TemplateModern  ResumeTemplate = "modern"
	TemplateClassic ResumeTemplate = "classic"
	TemplateMinimal ResumeTemplate = "minimal"
)

func (t ResumeTemplate) Valid() bool {
	return t == TemplateModern || t == TemplateClassic || t == TemplateMinimal
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

type PersonalInfo struct {
	FullName  string `bson:"full_name" json:"fullName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Location  string `bson:"location,omitempty" json:"location,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	Portfolio string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Summary   string `bson:"summary,omitempty" json:"summary,omitempty"`
}

type Education struct {
	Institution string     `bson:"institution" json:"institution"`
	Degree      string     `bson:"degree" json:"degree"`
	Field       string     `bson:"field,omitempty" json:"field,omitempty"`
	StartDate   *time.Time `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Grade       string     `bson:"grade,omitempty" json:"grade,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

type Experience struct {
	Company      string     `bson:"company" json:"company"`
	Position     string     `bson:"position" json:"position"`
	Location     string     `bson:"location,omitempty" json:"location,omitempty"`
	StartDate    *time.Time `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Current      bool       `bson:"current" json:"current"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	Achievements []string   `bson:"achievements,omitempty" json:"achievements,omitempty"`
}

type ResumeSkill struct {
	Name  string     `bson:"name" json:"name"`
	Level SkillLevel `bson:"level" json:"level"`
}

type Project struct {
	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Link         string   `bson:"link,omitempty" json:"link,omitempty"`
	GitHub       string   `bson:"github,omitempty" json:"github,omitempty"`
}

type Certification struct {
	Name   string     `bson:"name" json:"name"`
	Issuer string     `bson:"issuer,omitempty" json:"issuer,omitempty"`
	Date   *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Link   string     `bson:"link,omitempty" json:"link,omitempty"`
}

type Language struct {
	Name        string `bson:"name" json:"name"`
	Proficiency string `bson:"proficiency,omitempty" json:"proficiency,omitempty"`
}

type Resume struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"userId"` // at most one resume per user
	Template       ResumeTemplate     `bson:"template" json:"template"`
	PersonalInfo   PersonalInfo       `bson:"personal_info" json:"personalInfo"`
	Education      []Education        `bson:"education,omitempty" json:"education,omitempty"`
	Experience     []Experience       `bson:"experience,omitempty" json:"experience,omitempty"`
	Skills         []ResumeSkill      `bson:"skills,omitempty" json:"skills,omitempty"`
	Projects       []Project          `bson:"projects,omitempty" json:"projects,omitempty"`
	Certifications []Certification    `bson:"certifications,omitempty" json:"certifications,omitempty"`
	Languages      []Language         `bson:"languages,omitempty" json:"languages,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// ResumeSummary is the slimmed resume joined onto recruiter applicant listings.
type ResumeSummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	PersonalInfo PersonalInfo       `bson:"personal_info" json:"personalInfo"`
	Skills       []ResumeSkill      `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience   []Experience       `bson:"experience,omitempty" json:"experience,omitempty"`
	Education    []Education        `bson:"education,omitempty" json:"education,omitempty"`
}
