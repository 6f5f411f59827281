package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/spigell/smart-recruit/internal/render"

	"go.uber.org/zap"
)

type Section string

const (
	SectionCandidates Section = "candidates"
	SectionOffers     Section = "offers"
	SectionAnalysis   Section = "analysis"
)

var ErrUnknownSection = errors.New("unknown section")

var sections = []struct {
	section Section
	label   string
	icon    string
}{
	{SectionCandidates, "Candidats", "fa-users"},
	{SectionOffers, "Offres", "fa-briefcase"},
	{SectionAnalysis, "Analyse IA", "fa-brain"},
}

func ParseSection(name string) (Section, error) {
	for _, s := range sections {
		if string(s.section) == name {
			return s.section, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Show makes name the only visible section. Entering the analysis section
// refills its dropdowns.
func (a *App) Show(ctx context.Context, name string) error {
	section, err := ParseSection(name)
	if err != nil {
		return err
	}

	a.update(func() {
		a.active = section
	})

	a.logger.Debug("section shown", zap.String("section", string(section)))

	if section == SectionAnalysis {
		a.LoadAnalysisOptions(ctx)
	}

	return nil
}

// Active returns the visible section.
func (a *App) Active() Section {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// navButtons must be called with a.mu held.
func (a *App) navButtons() []render.NavButton {
	buttons := make([]render.NavButton, 0, len(sections))
	for _, s := range sections {
		button := render.NavButton{
			Section: string(s.section),
			Label:   s.label,
			Icon:    s.icon,
			Active:  s.section == a.active,
		}

		switch s.section {
		case SectionCandidates:
			button.Count = a.candidates.Count()
		case SectionOffers:
			button.Count = a.offers.Count()
		}

		buttons = append(buttons, button)
	}
	return buttons
}
