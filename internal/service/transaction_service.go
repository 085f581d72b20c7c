package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/operator/actions"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
	"github.com/carson-networks/cashier-shifts/internal/validation"
)

// TransactionService handles the append-only transaction ledger.
type TransactionService struct {
	storage   *storage.Storage
	operator  actionProcessor
	local     *validation.Pipeline
	admission *validation.Pipeline
	now       func() time.Time
	newCode   func() (string, error)
}

// NewTransactionService creates a TransactionService. admission runs after
// every local check has passed.
func NewTransactionService(store *storage.Storage, op actionProcessor, admission *validation.Pipeline, now func() time.Time) *TransactionService {
	return &TransactionService{
		storage:   store,
		operator:  op,
		local:     validation.LocalPipeline(),
		admission: admission,
		now:       now,
		newCode:   cash.NewTransactionCode,
	}
}

// Record validates, admits and stores a transaction. Local checks run first
// so malformed input never reaches the shift manager.
func (s *TransactionService) Record(ctx context.Context, req RecordTransactionRequest) (*Transaction, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("shiftCode", req.ShiftCode)
	logData.AddData("kind", req.Kind)

	check := validation.Request{
		RegisterCode: req.RegisterCode,
		CashierCode:  req.CashierCode,
		ShiftCode:    req.ShiftCode,
		Kind:         req.Kind,
		Amount:       req.Amount,
		Lines:        req.Lines,
	}
	if err := s.local.Run(ctx, check); err != nil {
		return nil, err
	}
	if err := s.admission.Run(ctx, check); err != nil {
		logData.Log().WithError(err).Warn("TransactionService.Record.not admitted")
		return nil, err
	}

	kind, err := cash.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	code, err := s.newCode()
	if err != nil {
		return nil, apperr.Classify(err, apperr.ErrCreation)
	}
	logData.AddData("transactionCode", code)

	action := &actions.RecordTransaction{
		Create: &sqlconfig.TransactionCreate{
			Code:          code,
			RegisterCode:  req.RegisterCode,
			CashierCode:   req.CashierCode,
			ShiftCode:     req.ShiftCode,
			Kind:          kind.String(),
			Amount:        req.Amount,
			Denominations: sqlconfig.FromLines(req.Lines),
			CreatedAt:     s.now(),
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		err = apperr.Classify(err, apperr.ErrCreation)
		logData.Log().WithError(err).Error("TransactionService.Record.persist failed")
		return nil, err
	}

	return transactionFromStorage(action.Result), nil
}

func (s *TransactionService) Get(ctx context.Context, transactionCode string) (*Transaction, error) {
	if err := cash.CheckTransactionCode(transactionCode); err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.FindByCode(ctx, transactionCode)
	if err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", transactionCode, err)
	}
	if row == nil {
		return nil, apperr.NotFound("transaction %s does not exist", transactionCode)
	}
	return transactionFromStorage(row), nil
}

// ListByShift returns every transaction of the shift. Callers must not rely on the order.
func (s *TransactionService) ListByShift(ctx context.Context, shiftCode string) ([]Transaction, error) {
	if err := cash.CheckShiftCode(shiftCode); err != nil {
		return nil, err
	}
	return s.list(ctx, &sqlconfig.TransactionFilter{ShiftCode: shiftCode})
}

func (s *TransactionService) ListByShiftAndKind(ctx context.Context, shiftCode, kind string) ([]Transaction, error) {
	if err := cash.CheckShiftCode(shiftCode); err != nil {
		return nil, err
	}
	parsed, err := cash.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, &sqlconfig.TransactionFilter{
		ShiftCode: shiftCode,
		Kind:      omit.From(parsed.String()),
	})
}

func (s *TransactionService) list(ctx context.Context, filter *sqlconfig.TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = *transactionFromStorage(row)
	}
	return transactions, nil
}
