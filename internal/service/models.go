package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashier-shifts/internal/cash"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "OPEN"
	ShiftStatusClosed ShiftStatus = "CLOSED"
)

// Shift represents a shift in the service layer.
type Shift struct {
	Code          string
	RegisterCode  string
	CashierCode   string
	Status        ShiftStatus
	OpenedAt      time.Time
	OpeningAmount decimal.Decimal
	OpeningLines  []cash.DenominationLine
	// ClosedAt, ClosingAmount and ClosingLines are unset until the shift is closed.
	ClosedAt      *time.Time
	ClosingAmount *decimal.Decimal
	ClosingLines  []cash.DenominationLine
	Version       int
}

// Transaction represents a recorded transaction in the service layer.
type Transaction struct {
	Code         string
	RegisterCode string
	CashierCode  string
	ShiftCode    string
	Kind         cash.Kind
	Amount       decimal.Decimal
	Lines        []cash.DenominationLine
	CreatedAt    time.Time
	Version      int
}

type OpenShiftRequest struct {
	RegisterCode  string
	CashierCode   string
	OpeningAmount decimal.Decimal
	Lines         []cash.DenominationLine
}

type CloseShiftRequest struct {
	ShiftCode     string
	ClosingAmount decimal.Decimal
	Lines         []cash.DenominationLine
}

type RecordTransactionRequest struct {
	RegisterCode string
	CashierCode  string
	ShiftCode    string
	Kind         string
	Amount       decimal.Decimal
	Lines        []cash.DenominationLine
}

func shiftFromStorage(row *sqlconfig.Shift) *Shift {
	shift := &Shift{
		Code:          row.Code,
		RegisterCode:  row.RegisterCode,
		CashierCode:   row.CashierCode,
		Status:        ShiftStatus(row.Status),
		OpenedAt:      row.OpenedAt,
		OpeningAmount: row.OpeningAmount,
		OpeningLines:  row.OpeningDenominations.Lines(),
		ClosedAt:      row.ClosedAt,
		Version:       row.Version,
	}
	if row.ClosingAmount.Valid {
		amount := row.ClosingAmount.Decimal
		shift.ClosingAmount = &amount
	}
	if row.ClosingDenominations != nil {
		shift.ClosingLines = row.ClosingDenominations.Lines()
	}
	return shift
}

func transactionFromStorage(row *sqlconfig.Transaction) *Transaction {
	return &Transaction{
		Code:         row.Code,
		RegisterCode: row.RegisterCode,
		CashierCode:  row.CashierCode,
		ShiftCode:    row.ShiftCode,
		Kind:         cash.Kind(row.Kind),
		Amount:       row.Amount,
		Lines:        row.Denominations.Lines(),
		CreatedAt:    row.CreatedAt,
		Version:      row.Version,
	}
}
