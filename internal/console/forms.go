package console

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/logger"
	"github.com/spigell/smart-recruit/internal/notify"
)

// ErrBusy is returned when a form is submitted while its previous submission
// is still in flight.
var ErrBusy = errors.New("submission already in progress")

const (
	candidateCreateFailed = "Erreur lors de la création"
	submissionInProgress  = "Envoi en cours, veuillez patienter"
)

// Control is the busy state of a submit button.
type Control struct {
	mu   sync.Mutex
	busy bool
}

// Acquire marks the control busy. It reports false when it already was.
func (c *Control) Acquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return false
	}
	c.busy = true
	return true
}

func (c *Control) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
}

func (c *Control) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// CandidateDraft is the candidate form as typed by the operator.
type CandidateDraft struct {
	Name   string
	Email  string
	Bio    string
	Degree string
}

func (d CandidateDraft) Input() api.CandidateInput {
	return api.CandidateInput{
		Name:   strings.TrimSpace(d.Name),
		Email:  strings.TrimSpace(d.Email),
		Bio:    strings.TrimSpace(d.Bio),
		Degree: strings.TrimSpace(d.Degree),
	}
}

// OfferDraft is the offer form as typed by the operator. Skills is the raw
// comma separated field and Salary the raw amount.
type OfferDraft struct {
	Title       string
	Description string
	Skills      string
	Salary      string
}

func (d OfferDraft) Input() api.OfferInput {
	return api.OfferInput{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Skills:      ParseSkills(d.Skills),
		Salary:      ParseSalary(d.Salary),
	}
}

// ParseSkills splits a comma separated list, trims every entry and drops the
// empty ones: "Go, , Rust,  Python " -> [Go Rust Python].
func ParseSkills(raw string) []string {
	skills := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

// ParseSalary reads an amount, ignoring group separating spaces. An empty or
// unreadable amount yields nil, which is sent as null.
func ParseSalary(raw string) *float64 {
	cleaned := strings.Join(strings.Fields(raw), "")
	if cleaned == "" {
		return nil
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// CreateCandidate submits the candidate form. On success the draft is cleared
// and the candidates list reloaded; on failure the draft is kept.
func (a *App) CreateCandidate(ctx context.Context, draft CandidateDraft) error {
	if !a.candidateControl.Acquire() {
		a.notes.Show(submissionInProgress, notify.Warning)
		return ErrBusy
	}
	defer a.candidateControl.Release()

	a.update(func() {
		a.candidateForm = draft
	})

	input := draft.Input()
	if err := a.api.CreateCandidate(ctx, input); err != nil {
		a.report(TargetToast, err, Messages{Fallback: candidateCreateFailed, Connectivity: apiConnectionFailed})
		return fmt.Errorf("create candidate: %w", err)
	}

	a.logger.Info("candidate created", logger.StringFields(
		logger.StringField{Key: logger.FieldEntity, Value: "candidate"},
		logger.StringField{Key: "name", Value: input.Name},
	)...)

	a.notes.Show(fmt.Sprintf("Candidat \"%s\" créé avec succès !", input.Name), notify.Success)
	a.update(func() {
		a.candidateForm = CandidateDraft{}
	})

	a.LoadCandidates(ctx)
	return nil
}

// CreateOffer submits the offer form. On success the draft is cleared and the
// offers list reloaded; on failure the draft is kept.
func (a *App) CreateOffer(ctx context.Context, draft OfferDraft) error {
	if !a.offerControl.Acquire() {
		a.notes.Show(submissionInProgress, notify.Warning)
		return ErrBusy
	}
	defer a.offerControl.Release()

	a.update(func() {
		a.offerForm = draft
	})

	input := draft.Input()
	if err := a.api.CreateOffer(ctx, input); err != nil {
		a.report(TargetToast, err, failureMessages(genericFailure))
		return fmt.Errorf("create offer: %w", err)
	}

	a.logger.Info("offer created", logger.StringFields(
		logger.StringField{Key: logger.FieldEntity, Value: "offer"},
		logger.StringField{Key: "title", Value: input.Title},
	)...)

	a.notes.Show(fmt.Sprintf("Offre \"%s\" publiée !", input.Title), notify.Success)
	a.update(func() {
		a.offerForm = OfferDraft{}
	})

	a.LoadOffers(ctx)
	return nil
}
