package notify

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	wasActive := !f.stopped
	f.stopped = true
	return wasActive
}

func (f *fakeTimer) fire() {
	f.fn()
}

func newTestSlot() (*Slot, *[]*fakeTimer) {
	var timers []*fakeTimer
	slot := NewSlot(0, nil)
	slot.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	slot.afterFunc = func(_ time.Duration, f func()) stopper {
		timer := &fakeTimer{fn: f}
		timers = append(timers, timer)
		return timer
	}
	return slot, &timers
}

func TestShowAndExpire(t *testing.T) {
	slot, timers := newTestSlot()

	msg := slot.Show("Candidat supprimé", Success)
	if msg.TTL != DefaultTTL {
		t.Fatalf("expected default ttl, got %s", msg.TTL)
	}

	current, ok := slot.Current()
	if !ok || current.ID != msg.ID || current.Text != "Candidat supprimé" {
		t.Fatalf("unexpected current message: %+v", current)
	}

	(*timers)[0].fire()

	if _, ok := slot.Current(); ok {
		t.Fatalf("expected the message to be hidden after its timer fired")
	}
}

func TestNewMessageCancelsSupersededTimer(t *testing.T) {
	slot, timers := newTestSlot()

	first := slot.Show("first", Error)
	second := slot.Show("second", Warning)

	if !(*timers)[0].stopped {
		t.Fatalf("expected the first timer to be stopped")
	}

	// A timer that already started running must not hide the newer message.
	(*timers)[0].fire()

	current, ok := slot.Current()
	if !ok || current.ID != second.ID {
		t.Fatalf("expected the second message to stay visible, got %+v", current)
	}
	if current.ID == first.ID {
		t.Fatalf("first message must be replaced")
	}

	(*timers)[1].fire()
	if _, ok := slot.Current(); ok {
		t.Fatalf("expected the second message to be hidden by its own timer")
	}
}

func TestDismiss(t *testing.T) {
	slot, timers := newTestSlot()

	first := slot.Show("first", Success)
	second := slot.Show("second", Success)

	if slot.Dismiss(first.ID) {
		t.Fatalf("superseded message must not be dismissable")
	}
	if slot.Dismiss(uuid.New()) {
		t.Fatalf("unknown message must not be dismissable")
	}
	if !slot.Dismiss(second.ID) {
		t.Fatalf("expected the current message to be dismissed")
	}
	if !(*timers)[1].stopped {
		t.Fatalf("expected the dismissed message timer to be stopped")
	}
	if _, ok := slot.Current(); ok {
		t.Fatalf("expected an empty slot")
	}
}

func TestSeverityStyle(t *testing.T) {
	tests := []struct {
		severity Severity
		expect   Style
	}{
		{severity: Success, expect: Style{Color: "bg-green-500", Icon: "fa-check-circle"}},
		{severity: Error, expect: Style{Color: "bg-red-500", Icon: "fa-exclamation-circle"}},
		{severity: Warning, expect: Style{Color: "bg-yellow-500", Icon: "fa-info-circle"}},
		{severity: Severity("unknown"), expect: Style{Color: "bg-yellow-500", Icon: "fa-info-circle"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			if got := tt.severity.Style(); got != tt.expect {
				t.Fatalf("expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}

func TestRealTimerHides(t *testing.T) {
	slot := NewSlot(10*time.Millisecond, nil)
	slot.Show("bientôt caché", Success)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := slot.Current(); !ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected the message to be hidden by the real timer")
}
