package postgres

import (
	"context"
	"database/sql"
	"errors"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/logger"
	"excise-portal-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) CreateIfAbsent(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (vehicle_id, owner_cnic) VALUES ($1, $2)
	          ON CONFLICT (vehicle_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, v.VehicleID, v.OwnerCNIC)
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	return r.scanOne(ctx, `WHERE vehicle_id = $1`, vehicleID)
}

func (r *vehicleRepository) FindByIDOrOwner(ctx context.Context, identifier string) (*domain.Vehicle, error) {
	return r.scanOne(ctx, `WHERE vehicle_id = $1 OR owner_cnic = $1 LIMIT 1`, identifier)
}

func (r *vehicleRepository) scanOne(ctx context.Context, where string, args ...interface{}) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT vehicle_id, owner_cnic, number_plate, plate_applied, plate_approved,
	                 plate_receipt_id, plate_dispatch_status
	          FROM vehicles ` + where
	var plate, receiptID sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&v.VehicleID, &v.OwnerCNIC, &plate, &v.PlateApplied, &v.PlateApproved,
		&receiptID, &v.PlateDispatchStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if plate.Valid {
		v.NumberPlate = &plate.String
	}
	if receiptID.Valid {
		v.PlateReceiptID = &receiptID.String
	}
	return v, nil
}

func (r *vehicleRepository) MarkPlateApplied(ctx context.Context, vehicleID, receiptID string) error {
	query := `UPDATE vehicles
	          SET plate_applied = TRUE,
	              plate_approved = FALSE,
	              plate_receipt_id = $1,
	              plate_dispatch_status = 'pending'
	          WHERE vehicle_id = $2`
	_, err := r.db.ExecContext(ctx, query, receiptID, vehicleID)
	return err
}

func (r *vehicleRepository) ApprovePlate(ctx context.Context, vehicleID string) (int64, error) {
	query := `UPDATE vehicles
	          SET plate_approved = TRUE
	          WHERE vehicle_id = $1 AND plate_applied = TRUE AND plate_approved = FALSE`
	res, err := r.db.ExecContext(ctx, query, vehicleID)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", affected, err, "vehicleID", vehicleID)
	return affected, err
}

func (r *vehicleRepository) ListPendingPlateApplications(ctx context.Context) ([]domain.PlateApplication, error) {
	query := `SELECT vehicle_id, owner_cnic FROM vehicles
	          WHERE plate_applied = TRUE AND plate_approved = FALSE`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.PlateApplication
	for rows.Next() {
		var a domain.PlateApplication
		if err := rows.Scan(&a.VehicleID, &a.OwnerCNIC); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
