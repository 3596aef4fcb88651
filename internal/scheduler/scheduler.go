package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"excise-portal-backend/internal/config"
	"excise-portal-backend/internal/jobs"
	"excise-portal-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs(cfg)
	return s
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) {
	_, err := s.cron.AddFunc(cfg.LedgerHealthCheck, s.jobs.LedgerHealthCheck)
	if err != nil {
		logger.Error("Failed to register LedgerHealthCheck job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.PendingWorkSummary, s.jobs.PendingWorkSummary)
	if err != nil {
		logger.Error("Failed to register PendingWorkSummary job", "error", err)
	}

	logger.Info("Cron jobs registered")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
