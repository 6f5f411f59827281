package render

import (
	"strconv"

	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/notify"
)

type ListState int

const (
	ListLoading ListState = iota
	ListError
	ListEmpty
	ListReady
)

// ListView is what a list panel shows: a spinner, an error, an empty state or items.
type ListView[T any] struct {
	State ListState
	Items []T
	Error string
	// Retry offers a reload button on the error state.
	Retry bool
}

func (v ListView[T]) Count() int {
	return len(v.Items)
}

func (v ListView[T]) Loading() bool { return v.State == ListLoading }
func (v ListView[T]) Failed() bool  { return v.State == ListError }
func (v ListView[T]) Empty() bool   { return v.State == ListEmpty }
func (v ListView[T]) Ready() bool   { return v.State == ListReady }

type (
	CandidatesView = ListView[api.Candidate]
	OffersView     = ListView[api.Offer]
)

// ReadyList returns the empty or ready view for items.
func ReadyList[T any](items []T, retry bool) ListView[T] {
	if len(items) == 0 {
		return ListView[T]{State: ListEmpty, Items: []T{}, Retry: retry}
	}
	return ListView[T]{State: ListReady, Items: items, Retry: retry}
}

type Option struct {
	Value string
	Label string
}

type Select struct {
	ID          string
	Name        string
	Placeholder string
	Options     []Option
	Selected    string
}

// Selection is the value picked in each analysis dropdown.
type Selection struct {
	AnalyzeOffer     string
	AnalyzeCandidate string
	ApplicantsOffer  string
	ApplyOffer       string
	ApplyCandidate   string
}

// Selectors are the five dropdowns of the analysis section. Offers feed three
// of them and candidates two.
type Selectors struct {
	AnalyzeOffer     Select
	AnalyzeCandidate Select
	ApplicantsOffer  Select
	ApplyOffer       Select
	ApplyCandidate   Select
}

const (
	offerPlaceholder     = "-- Choisir une offre --"
	candidatePlaceholder = "-- Choisir un candidat --"
)

func BuildSelectors(offers []api.Offer, candidates []api.Candidate, selected Selection) Selectors {
	offerOptions := make([]Option, 0, len(offers))
	for _, o := range offers {
		offerOptions = append(offerOptions, Option{Value: strconv.Itoa(o.ID), Label: o.Title})
	}

	candidateOptions := make([]Option, 0, len(candidates))
	for _, c := range candidates {
		candidateOptions = append(candidateOptions, Option{Value: strconv.Itoa(c.ID), Label: c.Name})
	}

	offerSelect := func(id, value string) Select {
		return Select{ID: id, Name: "offre", Placeholder: offerPlaceholder, Options: offerOptions, Selected: value}
	}
	candidateSelect := func(id, value string) Select {
		return Select{ID: id, Name: "candidat", Placeholder: candidatePlaceholder, Options: candidateOptions, Selected: value}
	}

	return Selectors{
		AnalyzeOffer:     offerSelect("analyse-offre", selected.AnalyzeOffer),
		AnalyzeCandidate: candidateSelect("analyse-candidat", selected.AnalyzeCandidate),
		ApplicantsOffer:  offerSelect("offre-candidatures", selected.ApplicantsOffer),
		ApplyOffer:       offerSelect("postuler-offre", selected.ApplyOffer),
		ApplyCandidate:   candidateSelect("postuler-candidat", selected.ApplyCandidate),
	}
}

func (s Selectors) All() []Select {
	return []Select{s.AnalyzeOffer, s.AnalyzeCandidate, s.ApplicantsOffer, s.ApplyOffer, s.ApplyCandidate}
}

type MatchState int

const (
	MatchIdle MatchState = iota
	MatchBusy
	MatchReady
	MatchError
)

// MatchView is the analysis result panel. Errors are shown inline in it.
type MatchView struct {
	State         MatchState
	Score         float64
	Justification string
	CandidateName string
	OfferTitle    string
	Error         string
}

func NewMatchView(analysis *api.MatchAnalysis) MatchView {
	return MatchView{
		State:         MatchReady,
		Score:         analysis.Score,
		Justification: analysis.Justification,
		CandidateName: analysis.CandidateName,
		OfferTitle:    analysis.OfferTitle,
	}
}

func (m MatchView) Tier() Tier   { return TierFor(m.Score) }
func (m MatchView) Hidden() bool { return m.State == MatchIdle }
func (m MatchView) Busy() bool   { return m.State == MatchBusy }
func (m MatchView) Ready() bool  { return m.State == MatchReady }
func (m MatchView) Failed() bool { return m.State == MatchError }

type ApplicantsState int

const (
	ApplicantsIdle ApplicantsState = iota
	ApplicantsNoSelection
	ApplicantsEmpty
	ApplicantsReady
	ApplicantsError
)

type ApplicantsView struct {
	State ApplicantsState
	Items []api.Candidate
	Error string
}

func (a ApplicantsView) NoSelection() bool { return a.State == ApplicantsNoSelection }
func (a ApplicantsView) Empty() bool       { return a.State == ApplicantsEmpty }
func (a ApplicantsView) Ready() bool       { return a.State == ApplicantsReady }
func (a ApplicantsView) Failed() bool      { return a.State == ApplicantsError }

// StatusView is the API reachability indicator.
type StatusView struct {
	Checked bool
	Online  bool
}

func (s StatusView) Label() string {
	switch {
	case !s.Checked:
		return "Vérification..."
	case s.Online:
		return "API connectée"
	default:
		return "API hors ligne"
	}
}

func (s StatusView) DotClass() string {
	switch {
	case !s.Checked:
		return "w-2 h-2 bg-gray-400 rounded-full"
	case s.Online:
		return "w-2 h-2 bg-green-500 rounded-full"
	default:
		return "w-2 h-2 bg-red-500 rounded-full"
	}
}

func (s StatusView) TextClass() string {
	switch {
	case !s.Checked:
		return "text-xs text-gray-500"
	case s.Online:
		return "text-xs text-green-600"
	default:
		return "text-xs text-red-600"
	}
}

type Toast struct {
	ID        string
	Text      string
	Color     string
	Icon      string
	TTLMillis int64
}

func NewToast(msg notify.Message) *Toast {
	style := msg.Severity.Style()
	return &Toast{
		ID:        msg.ID.String(),
		Text:      msg.Text,
		Color:     style.Color,
		Icon:      style.Icon,
		TTLMillis: msg.TTL.Milliseconds(),
	}
}

type NavButton struct {
	Section string
	Label   string
	Icon    string
	Count   int
	Active  bool
}

func (b NavButton) Class() string {
	if b.Active {
		return "bg-green-500 text-white"
	}
	return "bg-white text-gray-600"
}

type CandidateForm struct {
	Busy   bool
	Name   string
	Email  string
	Bio    string
	Degree string
}

type OfferForm struct {
	Busy        bool
	Title       string
	Description string
	Skills      string
	Salary      string
}

// PageData is a full snapshot of the console.
type PageData struct {
	Active        string
	Nav           []NavButton
	Status        StatusView
	Toast         *Toast
	Candidates    CandidatesView
	Offers        OffersView
	CandidateForm CandidateForm
	OfferForm     OfferForm
	Selectors     Selectors
	Match         MatchView
	Applicants    ApplicantsView
}
