package service

import (
	"context"

	"github.com/google/uuid"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/ledger"
	"excise-portal-backend/internal/repository"
)

type transferService struct {
	transferRepo repository.TransferRepository
	ledger       ledger.Ledger
	newReceipt   func() string
}

func NewTransferService(transferRepo repository.TransferRepository, l ledger.Ledger) TransferService {
	return &transferService{
		transferRepo: transferRepo,
		ledger:       l,
		newReceipt:   uuid.NewString,
	}
}

func (s *transferService) Request(ctx context.Context, vehicleID, newOwnerCNIC, requestedBy string) (string, string, error) {
	receiptID := s.newReceipt()
	txHash, err := performLedgerAction(ctx,
		func(ctx context.Context) (string, error) {
			return s.ledger.RequestOwnershipTransfer(ctx, vehicleID, newOwnerCNIC)
		},
		func(ctx context.Context, txHash string) error {
			return s.transferRepo.Create(ctx, &domain.OwnershipTransfer{
				VehicleID:      vehicleID,
				OldOwnerCNIC:   requestedBy,
				NewOwnerCNIC:   newOwnerCNIC,
				Status:         domain.TransferRequested,
				ReceiptID:      receiptID,
				DispatchStatus: domain.DispatchPending,
			})
		},
	)
	if err != nil {
		return "", "", err
	}
	return txHash, receiptID, nil
}

func (s *transferService) Approve(ctx context.Context, vehicleID string) error {
	// Only transfers still in 'requested' move; re-approval matches zero
	// rows and is reported as success.
	_, err := s.transferRepo.ApproveByVehicle(ctx, vehicleID)
	return err
}

func (s *transferService) ListPending(ctx context.Context) ([]domain.OwnershipTransfer, error) {
	return s.transferRepo.ListPending(ctx)
}
