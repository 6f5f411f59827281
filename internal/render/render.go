// Package render turns console views into HTML. Every user supplied string goes
// through html/template and is escaped for the context it lands in.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	tmplPage       = "page"
	tmplCandidates = "candidates"
	tmplOffers     = "offers"
	tmplSelectors  = "selectors"
	tmplMatch      = "match"
	tmplApplicants = "applicants"
	tmplStatus     = "status"
	tmplToast      = "toast"
)

var required = []string{
	tmplPage, tmplCandidates, tmplOffers, tmplSelectors,
	tmplMatch, tmplApplicants, tmplStatus, tmplToast,
}

type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates and fails when one of the views has no template.
func New() (*Renderer, error) {
	tmpl, err := template.New("views").Funcs(funcs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	for _, name := range required {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is not defined", name)
		}
	}

	return &Renderer{tmpl: tmpl}, nil
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"initial":  Initial,
		"truncate": TruncateDescription,
		"skills":   VisibleSkills,
		"salary":   FormatSalary,
		"score":    FormatScore,
		"confirmCandidate": func(name string) string {
			return fmt.Sprintf("Supprimer le candidat %q ?", name)
		},
		"confirmOffer": func(title string) string {
			return fmt.Sprintf("Supprimer l'offre %q ?", title)
		},
	}
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.execute(w, tmplPage, data)
}

func (r *Renderer) Candidates(w io.Writer, view CandidatesView) error {
	return r.execute(w, tmplCandidates, view)
}

func (r *Renderer) Offers(w io.Writer, view OffersView) error {
	return r.execute(w, tmplOffers, view)
}

func (r *Renderer) Selectors(w io.Writer, selectors Selectors) error {
	return r.execute(w, tmplSelectors, selectors)
}

func (r *Renderer) Match(w io.Writer, view MatchView) error {
	return r.execute(w, tmplMatch, view)
}

func (r *Renderer) Applicants(w io.Writer, view ApplicantsView) error {
	return r.execute(w, tmplApplicants, view)
}

func (r *Renderer) Status(w io.Writer, view StatusView) error {
	return r.execute(w, tmplStatus, view)
}

func (r *Renderer) Toast(w io.Writer, toast *Toast) error {
	return r.execute(w, tmplToast, toast)
}
