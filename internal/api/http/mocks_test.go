package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"excise-portal-backend/internal/domain"
)

// Testify mocks for the service layer.

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) PayTax(ctx context.Context, citizenName, cnic, assetID string, amount int64) (string, error) {
	args := m.Called(ctx, citizenName, cnic, assetID, amount)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) Register(ctx context.Context, ownerCNIC, vehicleID string) (string, error) {
	args := m.Called(ctx, ownerCNIC, vehicleID)
	return args.String(0), args.Error(1)
}

func (m *MockVehicleService) ApplyPlate(ctx context.Context, vehicleID string) (string, string, error) {
	args := m.Called(ctx, vehicleID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockVehicleService) ApprovePlate(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockVehicleService) ListPendingPlates(ctx context.Context) ([]domain.PlateApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlateApplication), args.Error(1)
}

func (m *MockVehicleService) Verify(ctx context.Context, identifier string) (*domain.VehicleVerification, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleVerification), args.Error(1)
}

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Request(ctx context.Context, vehicleID, newOwnerCNIC, requestedBy string) (string, string, error) {
	args := m.Called(ctx, vehicleID, newOwnerCNIC, requestedBy)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTransferService) Approve(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockTransferService) ListPending(ctx context.Context) ([]domain.OwnershipTransfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnershipTransfer), args.Error(1)
}

type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) Track(ctx context.Context, receiptID string) (*domain.TrackingResult, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackingResult), args.Error(1)
}

func (m *MockReceiptService) UpdateDispatch(ctx context.Context, receiptID string, status domain.DispatchStatus) error {
	args := m.Called(ctx, receiptID, status)
	return args.Error(0)
}
