package postgres

import (
	"context"
	"database/sql"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/logger"
	"excise-portal-backend/internal/repository"
)

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(ctx context.Context, t *domain.OwnershipTransfer) error {
	query := `INSERT INTO ownership_transfers (vehicle_id, old_owner_cnic, new_owner_cnic, status, receipt_id, dispatch_status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING transfer_id`
	return r.db.QueryRowContext(ctx, query,
		t.VehicleID, t.OldOwnerCNIC, t.NewOwnerCNIC, t.Status, t.ReceiptID, t.DispatchStatus,
	).Scan(&t.TransferID)
}

func (r *transferRepository) ApproveByVehicle(ctx context.Context, vehicleID string) (int64, error) {
	query := `UPDATE ownership_transfers
	          SET status = 'approved'
	          WHERE vehicle_id = $1 AND status = 'requested'`
	res, err := r.db.ExecContext(ctx, query, vehicleID)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", affected, err, "vehicleID", vehicleID)
	return affected, err
}

func (r *transferRepository) ListPending(ctx context.Context) ([]domain.OwnershipTransfer, error) {
	query := `SELECT transfer_id, vehicle_id, old_owner_cnic, new_owner_cnic, status, receipt_id, dispatch_status
	          FROM ownership_transfers WHERE status = 'requested'`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []domain.OwnershipTransfer
	for rows.Next() {
		var t domain.OwnershipTransfer
		if err := rows.Scan(&t.TransferID, &t.VehicleID, &t.OldOwnerCNIC, &t.NewOwnerCNIC, &t.Status, &t.ReceiptID, &t.DispatchStatus); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}
