package scheduler

import (
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// Manager owns the background job scheduler.
type Manager struct {
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

// NewManager creates the scheduler and registers every job.
func NewManager(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	m := &Manager{scheduler: s, logger: logger}

	sweep := NewStaleRequestSweepJob(&cfg.Rules, repo, logger)
	if _, err := s.NewJob(
		gocron.DurationJob(cfg.Scheduler.SweepInterval),
		gocron.NewTask(sweep.Execute),
		gocron.WithName(sweep.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Start launches the registered jobs.
func (m *Manager) Start() {
	m.scheduler.Start()
	m.logger.Info("scheduler started")
}

// Stop shuts the scheduler down, waiting for running jobs.
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Error("scheduler shutdown failed", zap.Error(err))
		return
	}
	m.logger.Info("scheduler stopped")
}
