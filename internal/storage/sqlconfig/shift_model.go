package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrConflict is returned by conditional inserts when a unique key already exists.
var ErrConflict = errors.New("sqlconfig: unique key conflict")

type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "OPEN"
	ShiftStatusClosed ShiftStatus = "CLOSED"
)

// Shift represents a shift record.
type Shift struct {
	Code                 string              `db:"code"`
	RegisterCode         string              `db:"register_code"`
	CashierCode          string              `db:"cashier_code"`
	BusinessDay          time.Time           `db:"business_day"`
	Status               ShiftStatus         `db:"status"`
	OpenedAt             time.Time           `db:"opened_at"`
	OpeningAmount        decimal.Decimal     `db:"opening_amount"`
	OpeningDenominations Denominations       `db:"opening_denominations"`
	ClosedAt             *time.Time          `db:"closed_at"`
	ClosingAmount        decimal.NullDecimal `db:"closing_amount"`
	ClosingDenominations Denominations       `db:"closing_denominations"`
	Version              int                 `db:"version"`
}

// ShiftCreate is the input for creating a new OPEN shift.
type ShiftCreate struct {
	Code                 string
	RegisterCode         string
	CashierCode          string
	BusinessDay          time.Time
	OpenedAt             time.Time
	OpeningAmount        decimal.Decimal
	OpeningDenominations Denominations
}

// ShiftClose is the input for moving an OPEN shift to CLOSED.
type ShiftClose struct {
	ClosedAt             time.Time
	ClosingAmount        decimal.Decimal
	ClosingDenominations Denominations
}

// IShiftTable defines the interface for shift storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IShiftTable --output mock_IShiftTable.go
type IShiftTable interface {
	// FindByCode returns nil, nil when no shift has the code.
	FindByCode(ctx context.Context, code string, forUpdate bool) (*Shift, error)
	FindOpenForDay(ctx context.Context, registerCode, cashierCode string, from, to time.Time) (*Shift, error)
	Insert(ctx context.Context, create *ShiftCreate) (*Shift, error)
	Close(ctx context.Context, code string, update *ShiftClose) (*Shift, error)
	ListByCashier(ctx context.Context, registerCode, cashierCode string) ([]*Shift, error)
}
