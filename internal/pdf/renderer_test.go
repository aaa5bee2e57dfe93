package pdf

import (
	"testing"

	"github.com/joblane/joblane-backend/internal/models"
)

func TestSections_OmitEmptyData(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	res := &models.Resume{
		PersonalInfo: models.PersonalInfo{FullName: "Sam Roe", Email: "sam@mail.io"},
		Skills:       []models.ResumeSkill{{Name: "Go"}},
	}

	drawn := map[string]bool{}
	for _, sec := range r.sections(res) {
		if !sec.empty {
			drawn[sec.title] = true
		}
	}

	if !drawn["SKILLS"] {
		t.Fatalf("expected SKILLS section to render")
	}
	for _, title := range []string{"PROFESSIONAL SUMMARY", "EXPERIENCE", "EDUCATION", "PROJECTS", "CERTIFICATIONS"} {
		if drawn[title] {
			t.Fatalf("expected %s section to be skipped", title)
		}
	}
}

func TestSections_Order(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	want := []string{
		"PROFESSIONAL SUMMARY",
		"EXPERIENCE",
		"EDUCATION",
		"SKILLS",
		"PROJECTS",
		"CERTIFICATIONS",
	}
	secs := r.sections(&models.Resume{})
	if len(secs) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(secs))
	}
	for i, sec := range secs {
		if sec.title != want[i] {
			t.Fatalf("section %d = %q, want %q", i, sec.title, want[i])
		}
	}
}
