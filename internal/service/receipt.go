package service

import (
	"context"
	"fmt"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/repository"
)

type receiptService struct {
	receiptRepo repository.ReceiptRepository
}

func NewReceiptService(receiptRepo repository.ReceiptRepository) ReceiptService {
	return &receiptService{receiptRepo: receiptRepo}
}

func (s *receiptService) Track(ctx context.Context, receiptID string) (*domain.TrackingResult, error) {
	return s.receiptRepo.Track(ctx, receiptID)
}

func (s *receiptService) UpdateDispatch(ctx context.Context, receiptID string, status domain.DispatchStatus) error {
	if !domain.ValidDispatchStatus(status) {
		return fmt.Errorf("invalid dispatch status %q", status)
	}
	return s.receiptRepo.UpdateDispatchStatus(ctx, receiptID, status)
}
