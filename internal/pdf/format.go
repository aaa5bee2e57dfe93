package pdf

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joblane/joblane-backend/internal/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName builds the download filename: whitespace runs in the person's
// name collapse to single underscores, suffixed "_Resume.pdf".
func FileName(fullName string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(fullName), "_")
	return name + "_Resume.pdf"
}

// monthYear renders a date as abbreviated month plus 4-digit year ("Jan 2006").
func monthYear(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// experienceDates renders the employment period; an ongoing position shows
// "Present" regardless of any stored end date.
func experienceDates(exp models.Experience) string {
	start := monthYear(exp.StartDate)
	end := monthYear(exp.EndDate)
	if exp.Current {
		end = "Present"
	}
	return start + " - " + end
}

// educationYears renders "2018 - 2022"; empty when neither date is set.
func educationYears(edu models.Education) string {
	start, end := "", ""
	if edu.StartDate != nil {
		start = strconv.Itoa(edu.StartDate.Year())
	}
	if edu.EndDate != nil {
		end = strconv.Itoa(edu.EndDate.Year())
	}
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}

// contactLine joins the present contact fields with " | ".
func contactLine(pi models.PersonalInfo) string {
	parts := []string{}
	for _, p := range []string{pi.Email, pi.Phone, pi.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// linksLine joins the present profile links with " | "; empty when none.
func linksLine(pi models.PersonalInfo) string {
	parts := []string{}
	if pi.LinkedIn != "" {
		parts = append(parts, "LinkedIn: "+pi.LinkedIn)
	}
	if pi.GitHub != "" {
		parts = append(parts, "GitHub: "+pi.GitHub)
	}
	if pi.Portfolio != "" {
		parts = append(parts, "Portfolio: "+pi.Portfolio)
	}
	return strings.Join(parts, " | ")
}

func skillNames(skills []models.ResumeSkill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, " • ")
}
