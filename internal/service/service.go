package service

import (
	"context"
	"time"

	"github.com/carson-networks/cashier-shifts/internal/operator/actions"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/validation"
)

// actionProcessor runs a write action in its own storage transaction.
// *operator.OperatorDelegator satisfies it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ShiftManager holds the shift manager's services.
type ShiftManager struct {
	Shift      *ShiftService
	Validation *ValidationService
}

// NewShiftManager wires the shift manager over its own store. ledger is the
// transaction recorder's history, read when a shift closes.
func NewShiftManager(store *storage.Storage, op actionProcessor, ledger actions.TransactionSource) *ShiftManager {
	return &ShiftManager{
		Shift:      NewShiftService(store, op, ledger, time.Now),
		Validation: NewValidationService(store),
	}
}

// TransactionRecorder holds the transaction recorder's services.
type TransactionRecorder struct {
	Transaction *TransactionService
}

// NewTransactionRecorder wires the recorder over its own store. authority is
// asked before any transaction is admitted.
func NewTransactionRecorder(store *storage.Storage, op actionProcessor, authority validation.ShiftAuthority) *TransactionRecorder {
	return &TransactionRecorder{
		Transaction: NewTransactionService(store, op, validation.AdmissionPipeline(authority), time.Now),
	}
}
