package console

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spigell/smart-recruit/internal/render"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultHealthInterval is the period of the reachability re-check.
const DefaultHealthInterval = 30 * time.Second

// CheckStatus pings the API and updates the indicator.
func (a *App) CheckStatus(ctx context.Context) bool {
	err := a.api.Ping(ctx)
	online := err == nil

	a.update(func() {
		a.status = render.StatusView{Checked: true, Online: online}
	})

	if err != nil {
		a.logger.Warn("api is offline", zap.Error(err))
	} else {
		a.logger.Debug("api is online")
	}

	return online
}

// Bootstrap checks the API, shows the candidates section and loads both lists
// concurrently.
func (a *App) Bootstrap(ctx context.Context) {
	a.CheckStatus(ctx)

	a.update(func() {
		a.active = SectionCandidates
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.LoadCandidates(ctx)
	}()
	go func() {
		defer wg.Done()
		a.LoadOffers(ctx)
	}()
	wg.Wait()

	a.logger.Info("console ready",
		zap.Bool("api_online", a.Status().Online),
		zap.Int("candidates", a.CandidatesView().Count()),
		zap.Int("offers", a.OffersView().Count()),
	)
}

// Monitor re-checks the API reachability on a fixed schedule.
type Monitor struct {
	cron   *cron.Cron
	app    *App
	spec   string
	logger *zap.Logger
}

func (a *App) NewMonitor() *Monitor {
	return &Monitor{
		cron:   cron.New(),
		app:    a,
		spec:   fmt.Sprintf("@every %s", a.config.HealthInterval),
		logger: a.logger.With(zap.String("component", "monitor")),
	}
}

// Start registers the check and starts the schedule. Checks use ctx until Stop.
func (m *Monitor) Start(ctx context.Context) error {
	if _, err := m.cron.AddFunc(m.spec, func() {
		m.app.CheckStatus(ctx)
	}); err != nil {
		return fmt.Errorf("schedule health check: %w", err)
	}

	m.cron.Start()
	m.logger.Info("health monitor started", zap.String("spec", m.spec))

	return nil
}

// Stop halts the schedule and waits for a running check to finish.
func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
	m.logger.Info("health monitor stopped")
}
