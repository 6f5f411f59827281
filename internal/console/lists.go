package console

import (
	"context"

	"github.com/spigell/smart-recruit/internal/logger"
	"github.com/spigell/smart-recruit/internal/render"

	"go.uber.org/zap"
)

const loadFailed = "Erreur de chargement"

// LoadCandidates fetches the candidates list and replaces the cache with it.
// A failed load keeps the previous cache and shows an error with a retry.
func (a *App) LoadCandidates(ctx context.Context) {
	a.update(func() {
		a.candidates = render.CandidatesView{State: render.ListLoading, Items: a.candidates.Items}
	})

	candidates, err := a.api.ListCandidates(ctx)
	if err != nil {
		a.report(TargetNone, err, Messages{Fallback: loadFailed, Connectivity: loadFailed})
		a.update(func() {
			a.candidates = render.CandidatesView{
				State: render.ListError,
				Items: a.store.Candidates(),
				Error: loadFailed,
				Retry: true,
			}
		})
		return
	}

	a.store.SetCandidates(candidates)
	a.update(func() {
		a.candidates = render.ReadyList(a.store.Candidates(), true)
	})

	a.logger.Info("candidates loaded", append(logger.EntityFields("candidate", 0), zap.Int("count", len(candidates)))...)
}

// LoadOffers fetches the offers list and replaces the cache with it. The error
// state of the offers list has no retry.
func (a *App) LoadOffers(ctx context.Context) {
	a.update(func() {
		a.offers = render.OffersView{State: render.ListLoading, Items: a.offers.Items}
	})

	offers, err := a.api.ListOffers(ctx)
	if err != nil {
		a.report(TargetNone, err, Messages{Fallback: loadFailed, Connectivity: loadFailed})
		a.update(func() {
			a.offers = render.OffersView{
				State: render.ListError,
				Items: a.store.Offers(),
				Error: loadFailed,
			}
		})
		return
	}

	a.store.SetOffers(offers)
	a.update(func() {
		a.offers = render.ReadyList(a.store.Offers(), false)
	})

	a.logger.Info("offers loaded", append(logger.EntityFields("offer", 0), zap.Int("count", len(offers)))...)
}
