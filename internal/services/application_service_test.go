package services

import (
	"context"
	"testing"

	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func applicationFixture(t *testing.T) (*mockApplicationRepo, *mockJobRepo, *mockUserRepo, ApplicationService, primitive.ObjectID, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()

	users := newMockUserRepo()
	recruiter := users.add(models.User{Name: "Rita", Email: "rita@acme.io", Role: models.RoleRecruiter, Company: "Acme"})
	seeker := users.add(models.User{Name: "Sam", Email: "sam@mail.io", Role: models.RoleJobseeker})

	jobs := newMockJobRepo()
	jobID := jobs.add(models.Job{Title: "Engineer", PostedBy: recruiter, IsActive: true})

	apps := newMockApplicationRepo()
	svc := NewApplicationService(apps, jobs, users)
	return apps, jobs, users, svc, recruiter, seeker, jobID
}

func TestApply_CreatesPendingApplication(t *testing.T) {
	_, jobs, _, svc, _, seeker, jobID := applicationFixture(t)

	app, err := svc.Apply(context.Background(), seeker.Hex(), jobID.Hex(), ApplyParams{CoverLetter: "hi"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if app.Status != models.StatusPending {
		t.Fatalf("expected initial status pending, got %q", app.Status)
	}
	if len(jobs.pushed) != 1 || jobs.pushed[0] != app.ID {
		t.Fatalf("expected application appended to job applicants")
	}
}

func TestApply_SecondAttemptConflicts(t *testing.T) {
	_, _, _, svc, _, seeker, jobID := applicationFixture(t)

	if _, err := svc.Apply(context.Background(), seeker.Hex(), jobID.Hex(), ApplyParams{}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	_, err := svc.Apply(context.Background(), seeker.Hex(), jobID.Hex(), ApplyParams{})
	if !utils.IsCode(err, utils.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestApply_JobNotFound(t *testing.T) {
	_, _, _, svc, _, seeker, _ := applicationFixture(t)

	_, err := svc.Apply(context.Background(), seeker.Hex(), primitive.NewObjectID().Hex(), ApplyParams{})
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetStatus_OwnerMovesPendingToShortlisted(t *testing.T) {
	_, _, _, svc, recruiter, seeker, jobID := applicationFixture(t)

	app, err := svc.Apply(context.Background(), seeker.Hex(), jobID.Hex(), ApplyParams{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	updated, err := svc.SetStatus(context.Background(), recruiter.Hex(), app.ID.Hex(), models.StatusShortlisted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != models.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %q", updated.Status)
	}
}

func TestSetStatus_NonOwnerForbidden(t *testing.T) {
	_, _, users, svc, _, seeker, jobID := applicationFixture(t)
	stranger := users.add(models.User{Name: "Eve", Email: "eve@x.io", Role: models.RoleRecruiter})

	app, err := svc.Apply(context.Background(), seeker.Hex(), jobID.Hex(), ApplyParams{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	_, err = svc.SetStatus(context.Background(), stranger.Hex(), app.ID.Hex(), models.StatusReviewed)
	if !utils.IsCode(err, utils.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestSetStatus_TerminalStateRejectsTransitions(t *testing.T) {
	apps, _, _, svc, recruiter, seeker, jobID := applicationFixture(t)

	app, err := svc.Apply(context.Background(), seeker.Hex(), jobID.Hex(), ApplyParams{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	apps.apps[app.ID].Status = models.StatusHired

	_, err = svc.SetStatus(context.Background(), recruiter.Hex(), app.ID.Hex(), models.StatusShortlisted)
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	_, _, _, svc, recruiter, seeker, jobID := applicationFixture(t)

	app, err := svc.Apply(context.Background(), seeker.Hex(), jobID.Hex(), ApplyParams{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	_, err = svc.SetStatus(context.Background(), recruiter.Hex(), app.ID.Hex(), "archived")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestToggleSave_TwiceRestoresOriginalState(t *testing.T) {
	_, _, _, svc, _, seeker, jobID := applicationFixture(t)

	first, err := svc.ToggleSave(context.Background(), seeker.Hex(), jobID.Hex())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !first.Saved || len(first.SavedJobs) != 1 {
		t.Fatalf("expected job saved, got %+v", first)
	}

	second, err := svc.ToggleSave(context.Background(), seeker.Hex(), jobID.Hex())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second.Saved || len(second.SavedJobs) != 0 {
		t.Fatalf("expected bookmark removed, got %+v", second)
	}
}

func TestSavedJobs_PreservesSaveOrder(t *testing.T) {
	_, jobs, _, svc, recruiter, seeker, jobID := applicationFixture(t)
	secondID := jobs.add(models.Job{Title: "Second", PostedBy: recruiter, IsActive: true})

	for _, id := range []primitive.ObjectID{jobID, secondID} {
		if _, err := svc.ToggleSave(context.Background(), seeker.Hex(), id.Hex()); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}

	saved, err := svc.SavedJobs(context.Background(), seeker.Hex())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved jobs, got %d", len(saved))
	}
	if saved[0].ID != jobID || saved[1].ID != secondID {
		t.Fatalf("expected save order preserved")
	}
}
