package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/operator/actions"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

// ShiftService owns the shift state machine: OPEN on creation, CLOSED once
// the closing cash reconciles against the recorded transactions.
type ShiftService struct {
	storage  *storage.Storage
	operator actionProcessor
	ledger   actions.TransactionSource
	now      func() time.Time
}

func NewShiftService(store *storage.Storage, op actionProcessor, ledger actions.TransactionSource, now func() time.Time) *ShiftService {
	return &ShiftService{
		storage:  store,
		operator: op,
		ledger:   ledger,
		now:      now,
	}
}

// Open creates today's shift for the register and cashier.
func (s *ShiftService) Open(ctx context.Context, req OpenShiftRequest) (*Shift, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("registerCode", req.RegisterCode)
	logData.AddData("cashierCode", req.CashierCode)

	if err := cash.CheckRegisterCode(req.RegisterCode); err != nil {
		return nil, err
	}
	if err := cash.CheckCashierCode(req.CashierCode); err != nil {
		return nil, err
	}
	if !req.OpeningAmount.IsPositive() {
		return nil, apperr.Validation("opening amount must be greater than 0")
	}
	if err := cash.Reconcile(req.Lines, req.OpeningAmount); err != nil {
		return nil, err
	}

	now := s.now()
	dayStart, dayEnd := cash.DayBounds(now)
	code := cash.ShiftCode(req.RegisterCode, req.CashierCode, now)
	logData.AddData("shiftCode", code)

	action := &actions.OpenShift{
		Create: &sqlconfig.ShiftCreate{
			Code:                 code,
			RegisterCode:         req.RegisterCode,
			CashierCode:          req.CashierCode,
			BusinessDay:          dayStart,
			OpenedAt:             now,
			OpeningAmount:        req.OpeningAmount,
			OpeningDenominations: sqlconfig.FromLines(req.Lines),
		},
		DayStart: dayStart,
		DayEnd:   dayEnd,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		err = apperr.Classify(err, apperr.ErrCreation)
		logData.Log().WithError(err).Warn("ShiftService.Open.rejected")
		return nil, err
	}

	return shiftFromStorage(action.Result), nil
}

// Close reconciles the submitted closing cash and closes the shift. A shift
// that is not OPEN is rejected before anything else is looked at.
func (s *ShiftService) Close(ctx context.Context, req CloseShiftRequest) (*Shift, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("shiftCode", req.ShiftCode)

	if err := cash.CheckShiftCode(req.ShiftCode); err != nil {
		return nil, err
	}

	action := &actions.CloseShift{
		ShiftCode:     req.ShiftCode,
		ClosingAmount: req.ClosingAmount,
		ClosingLines:  req.Lines,
		ClosedAt:      s.now(),
		Source:        s.ledger,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		err = apperr.Classify(err, apperr.ErrUpdate)
		logData.Log().WithError(err).Warn("ShiftService.Close.rejected")
		return nil, err
	}

	return shiftFromStorage(action.Result), nil
}

func (s *ShiftService) Get(ctx context.Context, shiftCode string) (*Shift, error) {
	if err := cash.CheckShiftCode(shiftCode); err != nil {
		return nil, err
	}

	row, err := s.storage.Shifts.FindByCode(ctx, shiftCode, false)
	if err != nil {
		return nil, fmt.Errorf("find shift %s: %w", shiftCode, err)
	}
	if row == nil {
		return nil, apperr.NotFound("shift %s does not exist", shiftCode)
	}
	return shiftFromStorage(row), nil
}

// ListByCashier returns every shift of the pair, whatever its status.
func (s *ShiftService) ListByCashier(ctx context.Context, registerCode, cashierCode string) ([]Shift, error) {
	if err := cash.CheckRegisterCode(registerCode); err != nil {
		return nil, err
	}
	if err := cash.CheckCashierCode(cashierCode); err != nil {
		return nil, err
	}

	rows, err := s.storage.Shifts.ListByCashier(ctx, registerCode, cashierCode)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}

	shifts := make([]Shift, len(rows))
	for i, row := range rows {
		shifts[i] = *shiftFromStorage(row)
	}
	return shifts, nil
}
