package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/ledger"
	"excise-portal-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	paymentRepo repository.PaymentRepository
	ledger      ledger.Ledger
	newReceipt  func() string
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, paymentRepo repository.PaymentRepository, l ledger.Ledger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		paymentRepo: paymentRepo,
		ledger:      l,
		newReceipt:  uuid.NewString,
	}
}

func (s *vehicleService) Register(ctx context.Context, ownerCNIC, vehicleID string) (string, error) {
	return performLedgerAction(ctx,
		func(ctx context.Context) (string, error) {
			return s.ledger.RegisterVehicle(ctx, ownerCNIC, vehicleID)
		},
		func(ctx context.Context, txHash string) error {
			return s.vehicleRepo.CreateIfAbsent(ctx, &domain.Vehicle{
				VehicleID: vehicleID,
				OwnerCNIC: ownerCNIC,
			})
		},
	)
}

func (s *vehicleService) ApplyPlate(ctx context.Context, vehicleID string) (string, string, error) {
	// The plate receipt is a generated token, not the transaction hash.
	receiptID := s.newReceipt()
	txHash, err := performLedgerAction(ctx,
		func(ctx context.Context) (string, error) {
			return s.ledger.ApplyNumberPlate(ctx, vehicleID)
		},
		func(ctx context.Context, txHash string) error {
			return s.vehicleRepo.MarkPlateApplied(ctx, vehicleID, receiptID)
		},
	)
	if err != nil {
		return "", "", err
	}
	return txHash, receiptID, nil
}

func (s *vehicleService) ApprovePlate(ctx context.Context, vehicleID string) error {
	// Guarded conditional update: zero matched rows means nothing was
	// pending, which is still reported as success.
	_, err := s.vehicleRepo.ApprovePlate(ctx, vehicleID)
	return err
}

func (s *vehicleService) ListPendingPlates(ctx context.Context) ([]domain.PlateApplication, error) {
	return s.vehicleRepo.ListPendingPlateApplications(ctx)
}

func (s *vehicleService) Verify(ctx context.Context, identifier string) (*domain.VehicleVerification, error) {
	payments, err := s.paymentRepo.ListByCNICOrAsset(ctx, identifier)
	if err != nil {
		return nil, err
	}

	result := &domain.VehicleVerification{
		Payments: make([]domain.PaymentRecord, 0, len(payments)),
	}
	for _, p := range payments {
		result.Payments = append(result.Payments, domain.PaymentRecord{
			ReceiptID:   p.ReceiptID,
			Amount:      p.Amount,
			PaymentDate: p.PaymentTimestamp.Local().Format("2006-01-02 15:04:05"),
		})
	}

	vehicle, err := s.vehicleRepo.FindByIDOrOwner(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Vehicle fields stay null; payments alone still verify.
			return result, nil
		}
		return nil, err
	}

	result.Vehicle = domain.VehicleSummary{
		VehicleID:   &vehicle.VehicleID,
		NumberPlate: vehicle.NumberPlate,
		OwnerCNIC:   &vehicle.OwnerCNIC,
	}
	return result, nil
}
