// Package notify implements the single-slot transient notification surface.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 4000 * time.Millisecond

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Style is the fixed presentation of a severity.
type Style struct {
	Color string
	Icon  string
}

func (s Severity) Style() Style {
	switch s {
	case Success:
		return Style{Color: "bg-green-500", Icon: "fa-check-circle"}
	case Error:
		return Style{Color: "bg-red-500", Icon: "fa-exclamation-circle"}
	default:
		return Style{Color: "bg-yellow-500", Icon: "fa-info-circle"}
	}
}

type Message struct {
	ID       uuid.UUID
	Text     string
	Severity Severity
	ShownAt  time.Time
	TTL      time.Duration
}

type stopper interface {
	Stop() bool
}

// Slot holds at most one message. A new message replaces the current one and
// cancels its hide timer, so only the newest message's timer can clear the slot.
type Slot struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Message
	timer   stopper
	logger  *zap.Logger

	now       func() time.Time
	afterFunc func(time.Duration, func()) stopper
}

func NewSlot(ttl time.Duration, logger *zap.Logger) *Slot {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Slot{
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Show displays text with the given severity and schedules its own hide.
func (s *Slot) Show(text string, severity Severity) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:       uuid.New(),
		Text:     text,
		Severity: severity,
		ShownAt:  s.now(),
		TTL:      s.ttl,
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	s.current = &msg
	id := msg.ID
	s.timer = s.afterFunc(s.ttl, func() {
		s.expire(id)
	})

	s.logger.Debug("notification shown",
		zap.String("id", id.String()),
		zap.String("severity", string(severity)),
		zap.String("text", text),
	)

	return msg
}

// Current returns the visible message, if any.
func (s *Slot) Current() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Message{}, false
	}
	return *s.current, true
}

// Dismiss hides the message with the given id. Superseded ids are ignored.
func (s *Slot) Dismiss(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != id {
		return false
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.current = nil
	s.timer = nil
	return true
}

func (s *Slot) expire(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != id {
		return
	}

	s.current = nil
	s.timer = nil
}
