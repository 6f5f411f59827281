package console

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/logger"
	"github.com/spigell/smart-recruit/internal/notify"
	"github.com/spigell/smart-recruit/internal/render"

	"go.uber.org/zap"
)

// ErrNoSelection is returned when an analysis action lacks a selected offer or candidate.
var ErrNoSelection = errors.New("offer or candidate not selected")

const (
	selectBoth      = "Sélectionnez une offre et un candidat"
	analysisFailed  = "Erreur lors de l'analyse"
	analysisDone    = "Analyse terminée !"
	applicationSent = "Candidature envoyée !"
)

// LoadAnalysisOptions fills the caches feeding the five analysis dropdowns.
// A list is only fetched when its cache is empty unless RefreshOptions is set.
// Failures leave the cache as it was.
func (a *App) LoadAnalysisOptions(ctx context.Context) {
	var wg sync.WaitGroup

	if a.config.RefreshOptions || !a.store.HasCandidates() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			candidates, err := a.api.ListCandidates(ctx)
			if err != nil {
				a.logger.Debug("skipping candidates options", zap.Error(err))
				return
			}
			a.store.SetCandidates(candidates)
		}()
	}

	if a.config.RefreshOptions || !a.store.HasOffers() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			offers, err := a.api.ListOffers(ctx)
			if err != nil {
				a.logger.Debug("skipping offers options", zap.Error(err))
				return
			}
			a.store.SetOffers(offers)
		}()
	}

	wg.Wait()
}

// Selectors returns the analysis dropdowns as they are currently filled.
func (a *App) Selectors() render.Selectors {
	a.mu.Lock()
	selection := a.selection
	a.mu.Unlock()

	return render.BuildSelectors(a.store.Offers(), a.store.Candidates(), selection)
}

// parseSelection turns a dropdown value into an id. The placeholder and
// anything that is not a positive integer count as no selection.
func parseSelection(value string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// AnalyzeMatch asks the API for the compatibility of the selected candidate
// with the selected offer. The result and its failures are shown in the
// analysis panel.
func (a *App) AnalyzeMatch(ctx context.Context, offer, candidate string) error {
	a.update(func() {
		a.selection.AnalyzeOffer = offer
		a.selection.AnalyzeCandidate = candidate
	})

	offerID, okOffer := parseSelection(offer)
	candidateID, okCandidate := parseSelection(candidate)
	if !okOffer || !okCandidate {
		a.notes.Show(selectBoth, notify.Error)
		return ErrNoSelection
	}

	a.update(func() {
		a.match = render.MatchView{State: render.MatchBusy}
	})

	analysis, err := a.api.AnalyzeMatch(ctx, offerID, candidateID)
	if err != nil {
		text := a.report(TargetInline, err, failureMessages(analysisFailed))
		a.update(func() {
			a.match = render.MatchView{State: render.MatchError, Error: text}
		})
		return err
	}

	a.update(func() {
		a.match = render.NewMatchView(analysis)
	})

	a.logger.Info("match analyzed",
		zap.Int("offer_id", offerID),
		zap.Int("candidate_id", candidateID),
		zap.Float64("score", analysis.Score),
		zap.String("tier", render.TierFor(analysis.Score).String()),
	)
	a.notes.Show(analysisDone, notify.Success)

	return nil
}

// Match returns the analysis panel.
func (a *App) Match() render.MatchView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.match
}

// Apply submits the selected candidate to the selected offer. The outcome is
// only notified; applications are not tracked by the console.
func (a *App) Apply(ctx context.Context, offer, candidate string) error {
	a.update(func() {
		a.selection.ApplyOffer = offer
		a.selection.ApplyCandidate = candidate
	})

	offerID, okOffer := parseSelection(offer)
	candidateID, okCandidate := parseSelection(candidate)
	if !okOffer || !okCandidate {
		a.notes.Show(selectBoth, notify.Error)
		return ErrNoSelection
	}

	if err := a.api.Apply(ctx, candidateID, offerID); err != nil {
		a.report(TargetToast, err, failureMessages(genericFailure))
		return err
	}

	a.logger.Info("application sent", append(
		logger.EntityFields("offer", offerID),
		zap.Int("candidate_id", candidateID),
	)...)
	a.notes.Show(applicationSent, notify.Success)

	return nil
}

// ListApplicants shows the candidates who applied to the selected offer.
func (a *App) ListApplicants(ctx context.Context, offer string) error {
	a.update(func() {
		a.selection.ApplicantsOffer = offer
	})

	offerID, ok := parseSelection(offer)
	if !ok {
		a.update(func() {
			a.applicants = render.ApplicantsView{State: render.ApplicantsNoSelection}
		})
		return ErrNoSelection
	}

	applicants, err := a.api.ListApplicants(ctx, offerID)
	if err != nil {
		text := a.report(TargetInline, err, failureMessages(genericFailure))
		a.update(func() {
			a.applicants = render.ApplicantsView{State: render.ApplicantsError, Error: text}
		})
		return err
	}

	a.update(func() {
		if len(applicants) == 0 {
			a.applicants = render.ApplicantsView{State: render.ApplicantsEmpty}
			return
		}
		a.applicants = render.ApplicantsView{State: render.ApplicantsReady, Items: applicants}
	})

	a.logger.Debug("applicants listed", append(
		logger.EntityFields("offer", offerID),
		zap.Int("count", len(applicants)),
	)...)

	return nil
}

// Applicants returns the applicants panel.
func (a *App) Applicants() render.ApplicantsView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applicants
}

// Options returns the cached offers and candidates the dropdowns are built from.
func (a *App) Options() ([]api.Offer, []api.Candidate) {
	return a.store.Offers(), a.store.Candidates()
}
