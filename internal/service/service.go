package service

import (
	"context"
	"excise-portal-backend/internal/domain"
)

type AuthService interface {
	// Login verifies credentials and returns the user plus a signed
	// session token carrying {username, role}.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

type PaymentService interface {
	// PayTax submits the tax payment to the ledger and, once confirmed,
	// mirrors it as a payment row keyed by the transaction hash. The hash
	// is the receipt id returned to the citizen.
	PayTax(ctx context.Context, citizenName, cnic, assetID string, amount int64) (string, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

type VehicleService interface {
	// Register submits the registration to the ledger and mirrors the
	// vehicle row; a pre-existing vehicle id is a silent store no-op.
	Register(ctx context.Context, ownerCNIC, vehicleID string) (string, error)
	// ApplyPlate submits the application to the ledger, then marks the
	// vehicle applied under a freshly generated receipt id. Returns
	// (txHash, receiptID).
	ApplyPlate(ctx context.Context, vehicleID string) (string, string, error)
	// ApprovePlate approves a pending application. Approving a vehicle
	// with nothing pending is a no-op reported as success.
	ApprovePlate(ctx context.Context, vehicleID string) error
	ListPendingPlates(ctx context.Context) ([]domain.PlateApplication, error)
	// Verify returns all payments matching the identifier (as CNIC or
	// asset id) plus the first matching vehicle, with null vehicle fields
	// when none matches.
	Verify(ctx context.Context, identifier string) (*domain.VehicleVerification, error)
}

type TransferService interface {
	// Request submits the transfer request to the ledger and mirrors a
	// requested transfer row under a freshly generated receipt id, with
	// the requesting citizen recorded as the old owner. Returns
	// (txHash, receiptID).
	Request(ctx context.Context, vehicleID, newOwnerCNIC, requestedBy string) (string, string, error)
	// Approve moves requested transfers for the vehicle to approved; a
	// second approval is a no-op reported as success.
	Approve(ctx context.Context, vehicleID string) error
	ListPending(ctx context.Context) ([]domain.OwnershipTransfer, error)
}

type ReceiptService interface {
	Track(ctx context.Context, receiptID string) (*domain.TrackingResult, error)
	UpdateDispatch(ctx context.Context, receiptID string, status domain.DispatchStatus) error
}
