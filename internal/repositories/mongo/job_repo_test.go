package mongo

import (
	"testing"

	"github.com/joblane/joblane-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchQuery_ActiveOnly(t *testing.T) {
	q := buildSearchQuery(JobSearchFilter{})
	if len(q) != 1 {
		t.Fatalf("expected only the is_active constraint, got %v", q)
	}
	if q["is_active"] != true {
		t.Fatalf("expected is_active=true, got %v", q["is_active"])
	}
}

func TestBuildSearchQuery_FreeText(t *testing.T) {
	q := buildSearchQuery(JobSearchFilter{Search: "golang"})

	or, ok := q["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause, got %v", q)
	}
	if len(or) != 3 {
		t.Fatalf("expected title/company/skills branches, got %d", len(or))
	}
	title := or[0].(bson.M)["title"].(primitive.Regex)
	if title.Pattern != "golang" || title.Options != "i" {
		t.Fatalf("unexpected title regex: %+v", title)
	}
}

func TestBuildSearchQuery_EscapesRegexMeta(t *testing.T) {
	q := buildSearchQuery(JobSearchFilter{Search: "c++"})

	or := q["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	if title.Pattern != `c\+\+` {
		t.Fatalf("expected quoted pattern, got %q", title.Pattern)
	}
}

func TestBuildSearchQuery_TypeAndLocation(t *testing.T) {
	q := buildSearchQuery(JobSearchFilter{
		Location: "Berlin",
		Type:     models.JobTypeFullTime,
	})

	if q["type"] != models.JobTypeFullTime {
		t.Fatalf("expected exact type match, got %v", q["type"])
	}
	loc, ok := q["location"].(primitive.Regex)
	if !ok || loc.Pattern != "Berlin" || loc.Options != "i" {
		t.Fatalf("unexpected location clause: %v", q["location"])
	}
}

func TestBuildSearchQuery_ExperienceFloor(t *testing.T) {
	exp := 5
	q := buildSearchQuery(JobSearchFilter{Experience: &exp})

	clause, ok := q["experience.min"].(bson.M)
	if !ok {
		t.Fatalf("expected experience.min clause, got %v", q)
	}
	if clause["$lte"] != 5 {
		t.Fatalf("expected $lte 5, got %v", clause["$lte"])
	}
}
