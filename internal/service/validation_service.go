package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
	"github.com/carson-networks/cashier-shifts/internal/storage"
)

// ValidationService answers the questions the transaction recorder asks
// before admitting a transaction. Registers and cashiers have no registry
// here, so their checks are format only.
type ValidationService struct {
	storage *storage.Storage
}

func NewValidationService(store *storage.Storage) *ValidationService {
	return &ValidationService{storage: store}
}

// IsShiftOpen fails with apperr.ErrNotFound for an unknown code and otherwise
// reports whether the shift is OPEN, returning the shift either way.
func (s *ValidationService) IsShiftOpen(ctx context.Context, shiftCode string) (*Shift, bool, error) {
	if err := cash.CheckShiftCode(shiftCode); err != nil {
		return nil, false, err
	}

	row, err := s.storage.Shifts.FindByCode(ctx, shiftCode, false)
	if err != nil {
		return nil, false, fmt.Errorf("find shift %s: %w", shiftCode, err)
	}
	if row == nil {
		return nil, false, apperr.NotFound("shift %s does not exist", shiftCode)
	}

	shift := shiftFromStorage(row)
	return shift, shift.Status == ShiftStatusOpen, nil
}

func (s *ValidationService) IsRegisterValid(registerCode string) bool {
	return cash.ValidRegisterCode(registerCode)
}

func (s *ValidationService) IsCashierValid(cashierCode string) bool {
	return cash.ValidCashierCode(cashierCode)
}

// IsCashierAuthorizedOnRegister has no authorization store to consult, so any
// well-formed pair is authorized.
func (s *ValidationService) IsCashierAuthorizedOnRegister(registerCode, cashierCode string) bool {
	return cash.ValidRegisterCode(registerCode) && cash.ValidCashierCode(cashierCode)
}
