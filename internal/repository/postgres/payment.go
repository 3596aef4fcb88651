package postgres

import (
	"context"
	"database/sql"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (receipt_id, citizen_name, cnic, asset_id, amount, payment_timestamp)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, p.ReceiptID, p.CitizenName, p.CNIC, p.AssetID, p.Amount, p.PaymentTimestamp)
	return err
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT receipt_id, citizen_name, cnic, asset_id, amount, payment_timestamp FROM payments`
	return r.scanRows(ctx, query)
}

func (r *paymentRepository) ListByCNICOrAsset(ctx context.Context, identifier string) ([]domain.Payment, error) {
	query := `SELECT receipt_id, citizen_name, cnic, asset_id, amount, payment_timestamp
	          FROM payments WHERE cnic = $1 OR asset_id = $1`
	return r.scanRows(ctx, query, identifier)
}

func (r *paymentRepository) scanRows(ctx context.Context, query string, args ...interface{}) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ReceiptID, &p.CitizenName, &p.CNIC, &p.AssetID, &p.Amount, &p.PaymentTimestamp); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
