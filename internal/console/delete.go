package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/spigell/smart-recruit/internal/logger"
	"github.com/spigell/smart-recruit/internal/notify"
)

// ErrNotConfirmed is returned when a deletion was not confirmed. No request is sent.
var ErrNotConfirmed = errors.New("deletion not confirmed")

// DeleteCandidate removes the candidate once the operator confirmed it, then
// reloads the candidates list.
func (a *App) DeleteCandidate(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := a.api.DeleteCandidate(ctx, id); err != nil {
		a.report(TargetToast, err, failureMessages(genericFailure))
		return fmt.Errorf("delete candidate %d: %w", id, err)
	}

	a.logger.Info("candidate deleted", logger.EntityFields("candidate", id)...)
	a.notes.Show("Candidat supprimé", notify.Success)

	a.LoadCandidates(ctx)
	return nil
}

// DeleteOffer removes the offer once the operator confirmed it, then reloads
// the offers list.
func (a *App) DeleteOffer(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := a.api.DeleteOffer(ctx, id); err != nil {
		a.report(TargetToast, err, failureMessages(genericFailure))
		return fmt.Errorf("delete offer %d: %w", id, err)
	}

	a.logger.Info("offer deleted", logger.EntityFields("offer", id)...)
	a.notes.Show("Offre supprimée", notify.Success)

	a.LoadOffers(ctx)
	return nil
}
