package postgres

import (
	"database/sql"
	"excise-portal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.PaymentRepository
	repository.TransferRepository
	repository.ReceiptRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		VehicleRepository:  NewVehicleRepository(db),
		PaymentRepository:  NewPaymentRepository(db),
		TransferRepository: NewTransferRepository(db),
		ReceiptRepository:  NewReceiptRepository(db),
	}
}
