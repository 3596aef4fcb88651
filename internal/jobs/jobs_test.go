package jobs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/jobs"
)

type fakeLedger struct {
	mock.Mock
}

func (f *fakeLedger) Ping(ctx context.Context) error {
	return f.Called(ctx).Error(0)
}

func (f *fakeLedger) PayTax(ctx context.Context, citizenName, cnic, assetID string, amount int64) (string, error) {
	args := f.Called(ctx, citizenName, cnic, assetID, amount)
	return args.String(0), args.Error(1)
}

func (f *fakeLedger) RegisterVehicle(ctx context.Context, ownerCNIC, vehicleID string) (string, error) {
	args := f.Called(ctx, ownerCNIC, vehicleID)
	return args.String(0), args.Error(1)
}

func (f *fakeLedger) ApplyNumberPlate(ctx context.Context, vehicleID string) (string, error) {
	args := f.Called(ctx, vehicleID)
	return args.String(0), args.Error(1)
}

func (f *fakeLedger) RequestOwnershipTransfer(ctx context.Context, vehicleID, newOwnerCNIC string) (string, error) {
	args := f.Called(ctx, vehicleID, newOwnerCNIC)
	return args.String(0), args.Error(1)
}

type fakeVehicleRepo struct {
	mock.Mock
}

func (f *fakeVehicleRepo) CreateIfAbsent(ctx context.Context, v *domain.Vehicle) error {
	return f.Called(ctx, v).Error(0)
}

func (f *fakeVehicleRepo) GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := f.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (f *fakeVehicleRepo) FindByIDOrOwner(ctx context.Context, identifier string) (*domain.Vehicle, error) {
	args := f.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (f *fakeVehicleRepo) MarkPlateApplied(ctx context.Context, vehicleID, receiptID string) error {
	return f.Called(ctx, vehicleID, receiptID).Error(0)
}

func (f *fakeVehicleRepo) ApprovePlate(ctx context.Context, vehicleID string) (int64, error) {
	args := f.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (f *fakeVehicleRepo) ListPendingPlateApplications(ctx context.Context) ([]domain.PlateApplication, error) {
	args := f.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlateApplication), args.Error(1)
}

type fakeTransferRepo struct {
	mock.Mock
}

func (f *fakeTransferRepo) Create(ctx context.Context, t *domain.OwnershipTransfer) error {
	return f.Called(ctx, t).Error(0)
}

func (f *fakeTransferRepo) ApproveByVehicle(ctx context.Context, vehicleID string) (int64, error) {
	args := f.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (f *fakeTransferRepo) ListPending(ctx context.Context) ([]domain.OwnershipTransfer, error) {
	args := f.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnershipTransfer), args.Error(1)
}

func TestLedgerHealthCheck(t *testing.T) {
	l := new(fakeLedger)
	runner := jobs.NewJobRunner(l, new(fakeVehicleRepo), new(fakeTransferRepo))

	l.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	runner.LedgerHealthCheck()

	l.On("Ping", mock.Anything).Return(nil).Once()
	runner.LedgerHealthCheck()

	l.AssertExpectations(t)
}

func TestPendingWorkSummary(t *testing.T) {
	l := new(fakeLedger)
	vehicleRepo := new(fakeVehicleRepo)
	transferRepo := new(fakeTransferRepo)
	runner := jobs.NewJobRunner(l, vehicleRepo, transferRepo)

	t.Run("CountsBothQueues", func(t *testing.T) {
		vehicleRepo.On("ListPendingPlateApplications", mock.Anything).
			Return([]domain.PlateApplication{{VehicleID: "veh010"}}, nil).Once()
		transferRepo.On("ListPending", mock.Anything).
			Return([]domain.OwnershipTransfer{}, nil).Once()

		runner.PendingWorkSummary()
		vehicleRepo.AssertExpectations(t)
		transferRepo.AssertExpectations(t)
	})

	t.Run("PlateQueryFailureShortCircuits", func(t *testing.T) {
		vehicleRepo := new(fakeVehicleRepo)
		transferRepo := new(fakeTransferRepo)
		runner := jobs.NewJobRunner(l, vehicleRepo, transferRepo)

		vehicleRepo.On("ListPendingPlateApplications", mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		runner.PendingWorkSummary()
		transferRepo.AssertNotCalled(t, "ListPending", mock.Anything)
		assert.True(t, vehicleRepo.AssertExpectations(t))
	})
}
