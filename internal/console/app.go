// Package console holds the state of one operator session: the visible section,
// the list views, the form drafts, the analysis panels and the notification slot.
// Handlers call its operations and render the snapshot returned by Page.
package console

import (
	"context"
	"sync"
	"time"

	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/notify"
	"github.com/spigell/smart-recruit/internal/render"
	"github.com/spigell/smart-recruit/internal/state"

	"go.uber.org/zap"
)

// API is the part of the recruiting API the console drives.
type API interface {
	Ping(ctx context.Context) error
	ListCandidates(ctx context.Context) ([]api.Candidate, error)
	CreateCandidate(ctx context.Context, input api.CandidateInput) error
	DeleteCandidate(ctx context.Context, id int) error
	ListOffers(ctx context.Context) ([]api.Offer, error)
	CreateOffer(ctx context.Context, input api.OfferInput) error
	DeleteOffer(ctx context.Context, id int) error
	AnalyzeMatch(ctx context.Context, offerID, candidateID int) (*api.MatchAnalysis, error)
	Apply(ctx context.Context, candidateID, offerID int) error
	ListApplicants(ctx context.Context, offerID int) ([]api.Candidate, error)
}

type Config struct {
	// RefreshOptions refetches both lists every time the analysis dropdowns
	// are filled. When false they are only fetched while the cache is empty.
	RefreshOptions bool
	// HealthInterval is the period of the reachability re-check.
	HealthInterval time.Duration
}

type App struct {
	api    API
	store  *state.Store
	notes  *notify.Slot
	logger *zap.Logger
	config Config

	candidateControl Control
	offerControl     Control

	mu            sync.Mutex
	active        Section
	status        render.StatusView
	candidates    render.CandidatesView
	offers        render.OffersView
	candidateForm CandidateDraft
	offerForm     OfferDraft
	selection     render.Selection
	match         render.MatchView
	applicants    render.ApplicantsView
}

func New(client API, store *state.Store, notes *notify.Slot, logger *zap.Logger, config Config) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = state.New()
	}
	if notes == nil {
		notes = notify.NewSlot(notify.DefaultTTL, logger)
	}
	if config.HealthInterval <= 0 {
		config.HealthInterval = DefaultHealthInterval
	}

	return &App{
		api:    client,
		store:  store,
		notes:  notes,
		logger: logger,
		config: config,
		active: SectionCandidates,
	}
}

// Notifications exposes the notification slot, mostly for dismissal.
func (a *App) Notifications() *notify.Slot {
	return a.notes
}

func (a *App) update(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn()
}

// Page returns a snapshot of everything the console shows.
func (a *App) Page() render.PageData {
	a.mu.Lock()
	defer a.mu.Unlock()

	data := render.PageData{
		Active:     string(a.active),
		Nav:        a.navButtons(),
		Status:     a.status,
		Candidates: a.candidates,
		Offers:     a.offers,
		CandidateForm: render.CandidateForm{
			Busy:   a.candidateControl.Busy(),
			Name:   a.candidateForm.Name,
			Email:  a.candidateForm.Email,
			Bio:    a.candidateForm.Bio,
			Degree: a.candidateForm.Degree,
		},
		OfferForm: render.OfferForm{
			Busy:        a.offerControl.Busy(),
			Title:       a.offerForm.Title,
			Description: a.offerForm.Description,
			Skills:      a.offerForm.Skills,
			Salary:      a.offerForm.Salary,
		},
		Selectors:  render.BuildSelectors(a.store.Offers(), a.store.Candidates(), a.selection),
		Match:      a.match,
		Applicants: a.applicants,
	}

	if msg, ok := a.notes.Current(); ok {
		data.Toast = render.NewToast(msg)
	}

	return data
}

// Status returns the API reachability indicator.
func (a *App) Status() render.StatusView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *App) CandidatesView() render.CandidatesView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.candidates
}

func (a *App) OffersView() render.OffersView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offers
}
