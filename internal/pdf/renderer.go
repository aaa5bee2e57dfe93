// Package pdf renders a structured resume into a single PDF document.
//
// Output is an ordered list of independently skippable sections: each section
// knows whether its data is present and how to draw itself, and Render is a
// single pass over that list. A section that has no data leaves no trace in
// the output.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joblane/joblane-backend/internal/models"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"
)

const (
	pageMargin = 50

	sizeName    = 24
	sizeSection = 12
	sizeEntry   = 11
	sizeBody    = 10
	sizeMeta    = 9
)

var metaGray = creator.ColorRGBFrom8bit(0x66, 0x66, 0x66)

type Renderer struct {
	regular *model.PdfFont
	bold    *model.PdfFont
}

var licenseOnce sync.Once

func NewRenderer() (*Renderer, error) {
	licenseOnce.Do(func() {
		if key := os.Getenv("UNIDOC_LICENSE_API_KEY"); key != "" {
			_ = license.SetMeteredKey(key)
		}
	})

	regular, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return nil, fmt.Errorf("load helvetica: %w", err)
	}
	bold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return nil, fmt.Errorf("load helvetica-bold: %w", err)
	}
	return &Renderer{regular: regular, bold: bold}, nil
}

// writer accumulates the first draw error so section code stays linear.
type writer struct {
	c   *creator.Creator
	err error
}

func (w *writer) draw(d creator.Drawable) {
	if w.err != nil {
		return
	}
	w.err = w.c.Draw(d)
}

type section struct {
	title string
	empty bool
	draw  func(w *writer)
}

// Render produces the complete PDF byte stream for a resume. The document is
// assembled fully in memory; on error no bytes are returned.
func (r *Renderer) Render(res *models.Resume) ([]byte, error) {
	c := creator.New()
	c.SetPageMargins(pageMargin, pageMargin, pageMargin, pageMargin)

	w := &writer{c: c}
	r.header(w, res.PersonalInfo)

	for _, sec := range r.sections(res) {
		if sec.empty {
			continue
		}
		r.sectionTitle(w, sec.title)
		sec.draw(w)
	}

	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sections returns the render units in document order.
func (r *Renderer) sections(res *models.Resume) []section {
	return []section{
		{
			title: "PROFESSIONAL SUMMARY",
			empty: res.PersonalInfo.Summary == "",
			draw:  func(w *writer) { r.summary(w, res.PersonalInfo.Summary) },
		},
		{
			title: "EXPERIENCE",
			empty: len(res.Experience) == 0,
			draw:  func(w *writer) { r.experience(w, res.Experience) },
		},
		{
			title: "EDUCATION",
			empty: len(res.Education) == 0,
			draw:  func(w *writer) { r.education(w, res.Education) },
		},
		{
			title: "SKILLS",
			empty: len(res.Skills) == 0,
			draw:  func(w *writer) { r.skills(w, res.Skills) },
		},
		{
			title: "PROJECTS",
			empty: len(res.Projects) == 0,
			draw:  func(w *writer) { r.projects(w, res.Projects) },
		},
		{
			title: "CERTIFICATIONS",
			empty: len(res.Certifications) == 0,
			draw:  func(w *writer) { r.certifications(w, res.Certifications) },
		},
	}
}

func (r *Renderer) text(w *writer, text string, font *model.PdfFont, size float64) *creator.Paragraph {
	p := w.c.NewParagraph(text)
	p.SetFont(font)
	p.SetFontSize(size)
	return p
}

func (r *Renderer) header(w *writer, pi models.PersonalInfo) {
	name := r.text(w, pi.FullName, r.bold, sizeName)
	name.SetTextAlignment(creator.TextAlignmentCenter)
	w.draw(name)

	contact := r.text(w, contactLine(pi), r.regular, sizeBody)
	contact.SetTextAlignment(creator.TextAlignmentCenter)
	contact.SetMargins(0, 0, 4, 0)
	w.draw(contact)

	if links := linksLine(pi); links != "" {
		p := r.text(w, links, r.regular, sizeMeta)
		p.SetTextAlignment(creator.TextAlignmentCenter)
		p.SetMargins(0, 0, 3, 0)
		w.draw(p)
	}
}

// sectionTitle draws the heading followed by a full-width horizontal rule.
func (r *Renderer) sectionTitle(w *writer, title string) {
	p := r.text(w, title, r.bold, sizeSection)
	p.SetMargins(0, 0, 14, 3)
	w.draw(p)
	if w.err != nil {
		return
	}

	ctx := w.c.Context()
	rule := w.c.NewLine(ctx.X, ctx.Y, ctx.X+ctx.Width, ctx.Y)
	rule.SetLineWidth(0.8)
	w.draw(rule)
}

func (r *Renderer) summary(w *writer, summary string) {
	p := r.text(w, summary, r.regular, sizeBody)
	p.SetMargins(0, 0, 6, 0)
	w.draw(p)
}

func (r *Renderer) experience(w *writer, entries []models.Experience) {
	for _, exp := range entries {
		pos := r.text(w, exp.Position, r.bold, sizeEntry)
		pos.SetMargins(0, 0, 8, 0)
		w.draw(pos)

		company := exp.Company
		if exp.Location != "" {
			company += " - " + exp.Location
		}
		w.draw(r.text(w, company, r.regular, sizeBody))

		dates := r.text(w, experienceDates(exp), r.regular, sizeMeta)
		dates.SetColor(metaGray)
		w.draw(dates)

		if exp.Description != "" {
			p := r.text(w, exp.Description, r.regular, sizeBody)
			p.SetMargins(0, 0, 3, 0)
			w.draw(p)
		}
		for _, achievement := range exp.Achievements {
			p := r.text(w, "• "+achievement, r.regular, sizeBody)
			p.SetMargins(10, 0, 1, 0)
			w.draw(p)
		}
	}
}

func (r *Renderer) education(w *writer, entries []models.Education) {
	for _, edu := range entries {
		inst := r.text(w, edu.Institution, r.bold, sizeEntry)
		inst.SetMargins(0, 0, 8, 0)
		w.draw(inst)

		degree := edu.Degree
		if edu.Field != "" {
			degree += " in " + edu.Field
		}
		w.draw(r.text(w, degree, r.regular, sizeBody))

		if years := educationYears(edu); years != "" {
			p := r.text(w, years, r.regular, sizeMeta)
			p.SetColor(metaGray)
			w.draw(p)
		}
		if edu.Grade != "" {
			w.draw(r.text(w, "Grade: "+edu.Grade, r.regular, sizeBody))
		}
	}
}

func (r *Renderer) skills(w *writer, skills []models.ResumeSkill) {
	p := r.text(w, skillNames(skills), r.regular, sizeBody)
	p.SetMargins(0, 0, 6, 0)
	w.draw(p)
}

func (r *Renderer) projects(w *writer, entries []models.Project) {
	for _, project := range entries {
		name := r.text(w, project.Name, r.bold, sizeEntry)
		name.SetMargins(0, 0, 8, 0)
		w.draw(name)

		if project.Description != "" {
			w.draw(r.text(w, project.Description, r.regular, sizeBody))
		}
		if len(project.Technologies) > 0 {
			p := r.text(w, "Technologies: "+strings.Join(project.Technologies, ", "), r.regular, sizeMeta)
			p.SetColor(metaGray)
			w.draw(p)
		}
	}
}

func (r *Renderer) certifications(w *writer, entries []models.Certification) {
	for _, cert := range entries {
		line := "• " + cert.Name
		if cert.Issuer != "" {
			line += " - " + cert.Issuer
		}
		p := r.text(w, line, r.regular, sizeBody)
		p.SetMargins(0, 0, 2, 0)
		w.draw(p)
	}
}
