package ledger

import (
	"context"
	"fmt"
	"time"

	"excise-portal-backend/internal/logger"
)

// Ledger exposes the excise-tax contract operations. Each call submits a
// transaction and blocks until the node confirms it, returning the
// transaction hash.
type Ledger interface {
	Ping(ctx context.Context) error
	PayTax(ctx context.Context, citizenName, cnic, assetID string, amount int64) (string, error)
	RegisterVehicle(ctx context.Context, ownerCNIC, vehicleID string) (string, error)
	ApplyNumberPlate(ctx context.Context, vehicleID string) (string, error)
	RequestOwnershipTransfer(ctx context.Context, vehicleID, newOwnerCNIC string) (string, error)
}

type contractLedger struct {
	client       *Client
	contractHash string
	pollInterval time.Duration
	waitTimeout  time.Duration
}

// New creates a Ledger bound to the contract at contractHash on the node at
// rpcURL. Zero durations fall back to the package defaults.
func New(rpcURL, contractHash string, pollInterval, waitTimeout time.Duration) Ledger {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	return &contractLedger{
		client:       NewClient(rpcURL),
		contractHash: contractHash,
		pollInterval: pollInterval,
		waitTimeout:  waitTimeout,
	}
}

// Ping checks node reachability. Used at startup, where failure is fatal.
func (l *contractLedger) Ping(ctx context.Context) error {
	height, err := l.client.GetBlockCount(ctx)
	if err != nil {
		return fmt.Errorf("ledger node unreachable: %w", err)
	}
	logger.Debug("Ledger node reachable", "block_height", height)
	return nil
}

func (l *contractLedger) PayTax(ctx context.Context, citizenName, cnic, assetID string, amount int64) (string, error) {
	return l.invokeAndWait(ctx, "payTax", []ContractParam{
		stringParam(citizenName),
		stringParam(cnic),
		stringParam(assetID),
		integerParam(amount),
	})
}

func (l *contractLedger) RegisterVehicle(ctx context.Context, ownerCNIC, vehicleID string) (string, error) {
	return l.invokeAndWait(ctx, "registerVehicle", []ContractParam{
		stringParam(ownerCNIC),
		stringParam(vehicleID),
	})
}

func (l *contractLedger) ApplyNumberPlate(ctx context.Context, vehicleID string) (string, error) {
	return l.invokeAndWait(ctx, "applyNumberPlate", []ContractParam{
		stringParam(vehicleID),
	})
}

func (l *contractLedger) RequestOwnershipTransfer(ctx context.Context, vehicleID, newOwnerCNIC string) (string, error) {
	return l.invokeAndWait(ctx, "requestOwnershipTransfer", []ContractParam{
		stringParam(vehicleID),
		stringParam(newOwnerCNIC),
	})
}

// invokeAndWait submits a contract call and blocks until its application log
// is available, returning the transaction hash. A FAULT in either the trial
// or confirmed execution propagates as an error.
func (l *contractLedger) invokeAndWait(ctx context.Context, operation string, params []ContractParam) (string, error) {
	logger.LedgerCall(operation, "contract", l.contractHash)

	invokeResult, err := l.client.InvokeFunction(ctx, l.contractHash, operation, params)
	if err != nil {
		logger.LedgerResult(operation, err)
		return "", fmt.Errorf("invoke %s: %w", operation, err)
	}

	if invokeResult.State != "HALT" {
		err := fmt.Errorf("%s reverted: %s", operation, invokeResult.Exception)
		logger.LedgerResult(operation, err)
		return "", err
	}

	wctx, cancel := context.WithTimeout(ctx, l.waitTimeout)
	defer cancel()

	appLog, err := l.client.WaitForApplicationLog(wctx, invokeResult.Tx, l.pollInterval)
	if err != nil {
		logger.LedgerResult(operation, err)
		return "", fmt.Errorf("wait for %s confirmation: %w", operation, err)
	}

	for _, exec := range appLog.Executions {
		if exec.VMState == "FAULT" {
			err := fmt.Errorf("%s reverted: %s", operation, exec.Exception)
			logger.LedgerResult(operation, err)
			return "", err
		}
	}

	logger.LedgerResult(operation, nil, "tx_hash", invokeResult.Tx)
	return invokeResult.Tx, nil
}
