package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"excise-portal-backend/internal/domain"
)

// Testify mocks for the repositories and the ledger.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) CreateIfAbsent(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByIDOrOwner(ctx context.Context, identifier string) (*domain.Vehicle, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) MarkPlateApplied(ctx context.Context, vehicleID, receiptID string) error {
	args := m.Called(ctx, vehicleID, receiptID)
	return args.Error(0)
}

func (m *MockVehicleRepository) ApprovePlate(ctx context.Context, vehicleID string) (int64, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) ListPendingPlateApplications(ctx context.Context) ([]domain.PlateApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlateApplication), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByCNICOrAsset(ctx context.Context, identifier string) ([]domain.Payment, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, t *domain.OwnershipTransfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferRepository) ApproveByVehicle(ctx context.Context, vehicleID string) (int64, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransferRepository) ListPending(ctx context.Context) ([]domain.OwnershipTransfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnershipTransfer), args.Error(1)
}

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) Track(ctx context.Context, receiptID string) (*domain.TrackingResult, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackingResult), args.Error(1)
}

func (m *MockReceiptRepository) UpdateDispatchStatus(ctx context.Context, receiptID string, status domain.DispatchStatus) error {
	args := m.Called(ctx, receiptID, status)
	return args.Error(0)
}

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedger) PayTax(ctx context.Context, citizenName, cnic, assetID string, amount int64) (string, error) {
	args := m.Called(ctx, citizenName, cnic, assetID, amount)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) RegisterVehicle(ctx context.Context, ownerCNIC, vehicleID string) (string, error) {
	args := m.Called(ctx, ownerCNIC, vehicleID)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) ApplyNumberPlate(ctx context.Context, vehicleID string) (string, error) {
	args := m.Called(ctx, vehicleID)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) RequestOwnershipTransfer(ctx context.Context, vehicleID, newOwnerCNIC string) (string, error) {
	args := m.Called(ctx, vehicleID, newOwnerCNIC)
	return args.String(0), args.Error(1)
}
