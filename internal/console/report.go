package console

import (
	"errors"
	"strings"

	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/notify"

	"go.uber.org/zap"
)

// Target is where a failure is presented.
type Target int

const (
	// TargetToast shows the failure in the notification slot.
	TargetToast Target = iota
	// TargetInline leaves the presentation to the caller's panel.
	TargetInline
	// TargetNone only logs; the caller renders its own error state.
	TargetNone
)

const (
	connectionFailed    = "Erreur de connexion"
	apiConnectionFailed = "Erreur de connexion à l'API"
	genericFailure      = "Erreur"
)

// Messages are the texts used when the server gave none.
type Messages struct {
	Fallback     string
	Connectivity string
}

func failureMessages(fallback string) Messages {
	return Messages{Fallback: fallback, Connectivity: connectionFailed}
}

// FailureText builds the user facing text of err. Business errors use the
// server's error or message plus one line per field detail. Anything else is
// reported as a connection problem.
func FailureText(err error, msgs Messages) string {
	var business *api.BusinessError
	if errors.As(err, &business) {
		text := business.Text(msgs.Fallback)
		if lines := business.DetailLines(); len(lines) > 0 {
			text += "\n" + strings.Join(lines, "\n")
		}
		return text
	}

	if msgs.Connectivity == "" {
		return connectionFailed
	}
	return msgs.Connectivity
}

// report logs err and presents it on target. It returns the text shown.
func (a *App) report(target Target, err error, msgs Messages) string {
	text := FailureText(err, msgs)

	var connectivity *api.ConnectivityError
	a.logger.Warn("operation failed",
		zap.Error(err),
		zap.Bool("connectivity", errors.As(err, &connectivity)),
		zap.Int("target", int(target)),
	)

	if target == TargetToast {
		a.notes.Show(text, notify.Error)
	}

	return text
}
