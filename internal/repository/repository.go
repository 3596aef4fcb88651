package repository

import (
	"context"
	"excise-portal-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type VehicleRepository interface {
	// CreateIfAbsent inserts the vehicle unless the vehicle id already
	// exists, in which case it is a silent no-op.
	CreateIfAbsent(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	// MarkPlateApplied records a fresh plate application on the vehicle:
	// applied, not yet approved, dispatch pending, keyed by receiptID.
	MarkPlateApplied(ctx context.Context, vehicleID, receiptID string) error
	// ApprovePlate flips the approved flag only where an application is
	// pending (applied and not yet approved). Returns rows affected.
	ApprovePlate(ctx context.Context, vehicleID string) (int64, error)
	ListPendingPlateApplications(ctx context.Context) ([]domain.PlateApplication, error)
	// FindByIDOrOwner returns the first vehicle whose id or owner CNIC
	// equals identifier.
	FindByIDOrOwner(ctx context.Context, identifier string) (*domain.Vehicle, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context) ([]domain.Payment, error)
	// ListByCNICOrAsset returns payments whose cnic or asset id equals
	// identifier.
	ListByCNICOrAsset(ctx context.Context, identifier string) ([]domain.Payment, error)
}

type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.OwnershipTransfer) error
	// ApproveByVehicle moves requested transfers for the vehicle to
	// approved. Returns rows affected; zero means nothing was pending.
	ApproveByVehicle(ctx context.Context, vehicleID string) (int64, error)
	ListPending(ctx context.Context) ([]domain.OwnershipTransfer, error)
}

// ReceiptRepository resolves receipt identifiers across the two tables that
// can own one. A receipt belongs to at most one of them.
type ReceiptRepository interface {
	// Track looks up the receipt in ownership transfers first, then in
	// vehicle plate applications. domain.ErrNotFound when neither matches.
	Track(ctx context.Context, receiptID string) (*domain.TrackingResult, error)
	// UpdateDispatchStatus updates the dispatch state of whichever record
	// owns the receipt; exactly one table is touched per call.
	UpdateDispatchStatus(ctx context.Context, receiptID string, status domain.DispatchStatus) error
}
