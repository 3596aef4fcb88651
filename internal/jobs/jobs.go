package jobs

import (
	"context"
	"time"

	"excise-portal-backend/internal/ledger"
	"excise-portal-backend/internal/logger"
	"excise-portal-backend/internal/repository"
)

// JobRunner holds the dependencies for scheduled background jobs. Jobs are
// read-only: they observe the ledger and the mirror store, never mutate.
type JobRunner struct {
	ledger       ledger.Ledger
	vehicleRepo  repository.VehicleRepository
	transferRepo repository.TransferRepository
}

func NewJobRunner(l ledger.Ledger, vehicleRepo repository.VehicleRepository, transferRepo repository.TransferRepository) *JobRunner {
	return &JobRunner{
		ledger:       l,
		vehicleRepo:  vehicleRepo,
		transferRepo: transferRepo,
	}
}

// LedgerHealthCheck pings the ledger node and logs reachability. The portal
// keeps serving store-backed reads either way; ledger-backed actions will
// fail per request until the node recovers.
func (j *JobRunner) LedgerHealthCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := j.ledger.Ping(ctx); err != nil {
		logger.Warn("Ledger health check failed", "error", err)
		return
	}
	logger.Debug("Ledger health check ok")
}

// PendingWorkSummary logs the officer work queue sizes.
func (j *JobRunner) PendingWorkSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	plates, err := j.vehicleRepo.ListPendingPlateApplications(ctx)
	if err != nil {
		logger.Error("Pending work summary: plate applications query failed", "error", err)
		return
	}

	transfers, err := j.transferRepo.ListPending(ctx)
	if err != nil {
		logger.Error("Pending work summary: transfers query failed", "error", err)
		return
	}

	logger.Info("Pending officer work",
		"plate_applications", len(plates),
		"ownership_transfers", len(transfers))
}
