package service

import (
	"context"

	"excise-portal-backend/internal/logger"
)

// performLedgerAction runs a ledger operation and, only after it confirms,
// the store mutation that mirrors it. A ledger failure means the store is
// never touched. A store failure after confirmation cannot be rolled back
// off-chain; it is logged with the transaction hash and surfaced to the
// caller as an error.
func performLedgerAction(ctx context.Context, op func(ctx context.Context) (string, error), mutate func(ctx context.Context, txHash string) error) (string, error) {
	txHash, err := op(ctx)
	if err != nil {
		return "", err
	}

	if mutate != nil {
		if err := mutate(ctx, txHash); err != nil {
			logger.Error("Store mirror write failed after ledger confirmation",
				"tx_hash", txHash, "error", err)
			return "", err
		}
	}

	return txHash, nil
}
