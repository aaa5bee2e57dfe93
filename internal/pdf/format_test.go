package pdf

import (
	"testing"
	"time"

	"github.com/joblane/joblane-backend/internal/models"
)

func TestFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"John Doe", "John_Doe_Resume.pdf"},
		{"  Mary   Jane  Watson ", "Mary_Jane_Watson_Resume.pdf"},
		{"Cher", "Cher_Resume.pdf"},
		{"Anna\tLee", "Anna_Lee_Resume.pdf"},
	}
	for _, tc := range cases {
		if got := FileName(tc.in); got != tc.want {
			t.Fatalf("FileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExperienceDates_CurrentShowsPresent(t *testing.T) {
	start := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)

	exp := models.Experience{StartDate: &start, EndDate: &end, Current: true}
	if got := experienceDates(exp); got != "Mar 2020 - Present" {
		t.Fatalf("got %q", got)
	}

	exp.Current = false
	if got := experienceDates(exp); got != "Mar 2020 - Jul 2023" {
		t.Fatalf("got %q", got)
	}
}

func TestEducationYears(t *testing.T) {
	start := time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)

	if got := educationYears(models.Education{StartDate: &start, EndDate: &end}); got != "2018 - 2022" {
		t.Fatalf("got %q", got)
	}
	if got := educationYears(models.Education{}); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestContactLine_SkipsMissingFields(t *testing.T) {
	pi := models.PersonalInfo{Email: "sam@mail.io", Location: "Berlin"}
	if got := contactLine(pi); got != "sam@mail.io | Berlin" {
		t.Fatalf("got %q", got)
	}
}

func TestLinksLine(t *testing.T) {
	pi := models.PersonalInfo{GitHub: "github.com/sam", Portfolio: "sam.dev"}
	want := "GitHub: github.com/sam | Portfolio: sam.dev"
	if got := linksLine(pi); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := linksLine(models.PersonalInfo{}); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSkillNames(t *testing.T) {
	skills := []models.ResumeSkill{{Name: "Go"}, {Name: "MongoDB"}}
	if got := skillNames(skills); got != "Go • MongoDB" {
		t.Fatalf("got %q", got)
	}
}
