package service

import (
	"context"
	"time"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/ledger"
	"excise-portal-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	ledger      ledger.Ledger
	now         func() time.Time
}

func NewPaymentService(paymentRepo repository.PaymentRepository, l ledger.Ledger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		ledger:      l,
		now:         time.Now,
	}
}

func (s *paymentService) PayTax(ctx context.Context, citizenName, cnic, assetID string, amount int64) (string, error) {
	return performLedgerAction(ctx,
		func(ctx context.Context) (string, error) {
			return s.ledger.PayTax(ctx, citizenName, cnic, assetID, amount)
		},
		func(ctx context.Context, txHash string) error {
			return s.paymentRepo.Create(ctx, &domain.Payment{
				ReceiptID:        txHash,
				CitizenName:      citizenName,
				CNIC:             cnic,
				AssetID:          assetID,
				Amount:           amount,
				PaymentTimestamp: s.now(),
			})
		},
	)
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}
