package services

import (
	"context"
	"testing"

	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResumeSave_RequiresNameAndEmail(t *testing.T) {
	svc := NewResumeService(newMockResumeRepo(), nil)

	_, err := svc.Save(context.Background(), primitive.NewObjectID().Hex(), SaveResumeParams{
		PersonalInfo: models.PersonalInfo{FullName: "Sam"},
	})
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestResumeSave_DefaultsTemplateAndSkillLevel(t *testing.T) {
	svc := NewResumeService(newMockResumeRepo(), nil)

	resume, err := svc.Save(context.Background(), primitive.NewObjectID().Hex(), SaveResumeParams{
		PersonalInfo: models.PersonalInfo{FullName: "Sam Roe", Email: "sam@mail.io"},
		Skills:       []models.ResumeSkill{{Name: "Go"}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if resume.Template != models.TemplateModern {
		t.Fatalf("expected default template modern, got %q", resume.Template)
	}
	if resume.Skills[0].Level != models.SkillIntermediate {
		t.Fatalf("expected default skill level, got %q", resume.Skills[0].Level)
	}
}

func TestResumeSave_RejectsUnknownTemplate(t *testing.T) {
	svc := NewResumeService(newMockResumeRepo(), nil)

	_, err := svc.Save(context.Background(), primitive.NewObjectID().Hex(), SaveResumeParams{
		Template:     "fancy",
		PersonalInfo: models.PersonalInfo{FullName: "Sam Roe", Email: "sam@mail.io"},
	})
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestResumeSave_ReplacesWholesale(t *testing.T) {
	repo := newMockResumeRepo()
	svc := NewResumeService(repo, nil)
	userID := primitive.NewObjectID()

	first, err := svc.Save(context.Background(), userID.Hex(), SaveResumeParams{
		PersonalInfo: models.PersonalInfo{FullName: "Sam Roe", Email: "sam@mail.io"},
		Projects:     []models.Project{{Name: "Old project"}},
	})
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second, err := svc.Save(context.Background(), userID.Hex(), SaveResumeParams{
		PersonalInfo: models.PersonalInfo{FullName: "Sam Roe", Email: "sam@mail.io"},
	})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected upsert to keep the same document")
	}
	if len(second.Projects) != 0 {
		t.Fatalf("expected projects replaced wholesale, got %d", len(second.Projects))
	}
}

func TestResumeMine_NotFound(t *testing.T) {
	svc := NewResumeService(newMockResumeRepo(), nil)

	_, err := svc.Mine(context.Background(), primitive.NewObjectID().Hex())
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResumeDelete_NotFound(t *testing.T) {
	svc := NewResumeService(newMockResumeRepo(), nil)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
