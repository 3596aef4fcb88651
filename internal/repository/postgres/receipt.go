package postgres

import (
	"context"
	"database/sql"
	"errors"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/repository"
)

type receiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Track resolves a receipt id. Lookup order matters: ownership transfers are
// checked before vehicle plate applications, and a receipt can only ever
// exist in one of the two tables.
func (r *receiptRepository) Track(ctx context.Context, receiptID string) (*domain.TrackingResult, error) {
	transferQuery := `SELECT vehicle_id, status, dispatch_status
	                  FROM ownership_transfers WHERE receipt_id = $1`
	result := &domain.TrackingResult{Type: domain.ReceiptOwnershipTransfer}
	err := r.db.QueryRowContext(ctx, transferQuery, receiptID).Scan(
		&result.VehicleID, &result.Status, &result.DispatchStatus,
	)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	plateQuery := `SELECT vehicle_id, plate_approved, plate_dispatch_status
	               FROM vehicles WHERE plate_receipt_id = $1`
	var approved bool
	result = &domain.TrackingResult{Type: domain.ReceiptPlateApplication}
	err = r.db.QueryRowContext(ctx, plateQuery, receiptID).Scan(
		&result.VehicleID, &approved, &result.DispatchStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	result.Approved = &approved
	return result, nil
}

// UpdateDispatchStatus updates ownership transfers first; only when no
// transfer row matched does it try vehicle plate applications, so at most
// one table is mutated per call.
func (r *receiptRepository) UpdateDispatchStatus(ctx context.Context, receiptID string, status domain.DispatchStatus) error {
	transferQuery := `UPDATE ownership_transfers SET dispatch_status = $1 WHERE receipt_id = $2`
	res, err := r.db.ExecContext(ctx, transferQuery, status, receiptID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	plateQuery := `UPDATE vehicles SET plate_dispatch_status = $1 WHERE plate_receipt_id = $2`
	res, err = r.db.ExecContext(ctx, plateQuery, status, receiptID)
	if err != nil {
		return err
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
