// Package web serves the console over HTTP. Every mutation redirects back to
// a section page, so what the browser shows is always a snapshot of the console.
package web

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/spigell/smart-recruit/internal/console"
	"github.com/spigell/smart-recruit/internal/render"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

type Server struct {
	app      *fiber.App
	console  *console.App
	renderer *render.Renderer
	logger   *zap.Logger
}

func New(c *console.App, renderer *render.Renderer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		console:  c,
		renderer: renderer,
		logger:   logger,
	}

	// Form values outlive the request in the console drafts and selections,
	// so they must not alias fasthttp buffers.
	s.app = fiber.New(fiber.Config{
		AppName:               "smart-recruit",
		DisableStartupMessage: true,
		Immutable:             true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(s.logRequests)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.index)
	s.app.Get("/health", s.health)
	s.app.Get("/status", s.status)
	s.app.Get("/sections/:name", s.section)

	s.app.Post("/candidates", s.createCandidate)
	s.app.Post("/candidates/reload", s.reloadCandidates)
	s.app.Post("/candidates/:id/delete", s.deleteCandidate)

	s.app.Post("/offers", s.createOffer)
	s.app.Post("/offers/reload", s.reloadOffers)
	s.app.Post("/offers/:id/delete", s.deleteOffer)

	s.app.Post("/analysis/match", s.analyzeMatch)
	s.app.Post("/analysis/apply", s.apply)
	s.app.Get("/analysis/applicants", s.applicants)

	s.app.Post("/notifications/:id/dismiss", s.dismiss)
}

// App exposes the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()

	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)

	err := c.Next()

	status := c.Response().StatusCode()
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	fields := []zap.Field{
		zap.String("request_id", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	s.logger.Debug("request served", fields...)
	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := fiber.ErrInternalServerError.Message

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}

// html renders a view into the response.
func html(c *fiber.Ctx, fn func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
