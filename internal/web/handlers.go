package web

import (
	"bytes"
	"errors"

	"github.com/spigell/smart-recruit/internal/console"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func sectionPath(section console.Section) string {
	return "/sections/" + string(section)
}

// back redirects to a section page after a mutation.
func back(c *fiber.Ctx, section console.Section) error {
	return c.Redirect(sectionPath(section), fiber.StatusSeeOther)
}

// outcome logs a console operation failure. The failure itself is already
// part of the console state.
func (s *Server) outcome(op string, err error) {
	if err != nil {
		s.logger.Debug("console operation failed", zap.String("op", op), zap.Error(err))
	}
}

func (s *Server) index(c *fiber.Ctx) error {
	return c.Redirect(sectionPath(s.console.Active()), fiber.StatusSeeOther)
}

func (s *Server) page(c *fiber.Ctx) error {
	return html(c, func(buf *bytes.Buffer) error {
		return s.renderer.Page(buf, s.console.Page())
	})
}

func (s *Server) section(c *fiber.Ctx) error {
	err := s.console.Show(c.UserContext(), c.Params("name"))
	if errors.Is(err, console.ErrUnknownSection) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.page(c)
}

func (s *Server) status(c *fiber.Ctx) error {
	return html(c, func(buf *bytes.Buffer) error {
		return s.renderer.Status(buf, s.console.Status())
	})
}

func (s *Server) health(c *fiber.Ctx) error {
	status := s.console.Status()
	return c.JSON(fiber.Map{
		"status":      "ok",
		"api_checked": status.Checked,
		"api_online":  status.Online,
	})
}

func (s *Server) createCandidate(c *fiber.Ctx) error {
	err := s.console.CreateCandidate(c.UserContext(), console.CandidateDraft{
		Name:   c.FormValue("nom"),
		Email:  c.FormValue("email"),
		Bio:    c.FormValue("bio"),
		Degree: c.FormValue("diplome"),
	})
	s.outcome("create candidate", err)

	return back(c, console.SectionCandidates)
}

func (s *Server) reloadCandidates(c *fiber.Ctx) error {
	s.console.LoadCandidates(c.UserContext())
	return back(c, console.SectionCandidates)
}

func (s *Server) deleteCandidate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrBadRequest
	}

	s.outcome("delete candidate", s.console.DeleteCandidate(c.UserContext(), id, confirmed(c)))
	return back(c, console.SectionCandidates)
}

func (s *Server) createOffer(c *fiber.Ctx) error {
	err := s.console.CreateOffer(c.UserContext(), console.OfferDraft{
		Title:       c.FormValue("titre"),
		Description: c.FormValue("description"),
		Skills:      c.FormValue("competences"),
		Salary:      c.FormValue("salaire"),
	})
	s.outcome("create offer", err)

	return back(c, console.SectionOffers)
}

func (s *Server) reloadOffers(c *fiber.Ctx) error {
	s.console.LoadOffers(c.UserContext())
	return back(c, console.SectionOffers)
}

func (s *Server) deleteOffer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrBadRequest
	}

	s.outcome("delete offer", s.console.DeleteOffer(c.UserContext(), id, confirmed(c)))
	return back(c, console.SectionOffers)
}

// confirmed reports whether the deletion form carried the operator's confirmation.
func confirmed(c *fiber.Ctx) bool {
	return c.FormValue("confirm") == "yes"
}

func (s *Server) analyzeMatch(c *fiber.Ctx) error {
	s.outcome("analyze match", s.console.AnalyzeMatch(c.UserContext(), c.FormValue("offre"), c.FormValue("candidat")))
	return back(c, console.SectionAnalysis)
}

func (s *Server) apply(c *fiber.Ctx) error {
	s.outcome("apply", s.console.Apply(c.UserContext(), c.FormValue("offre"), c.FormValue("candidat")))
	return back(c, console.SectionAnalysis)
}

func (s *Server) applicants(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := s.console.Show(ctx, string(console.SectionAnalysis)); err != nil {
		return err
	}
	s.outcome("list applicants", s.console.ListApplicants(ctx, c.Query("offre")))

	return s.page(c)
}

func (s *Server) dismiss(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	s.console.Notifications().Dismiss(id)
	return c.Redirect(sectionPath(s.console.Active()), fiber.StatusSeeOther)
}
