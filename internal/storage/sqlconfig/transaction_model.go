package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Rows are never updated.
type Transaction struct {
	Code          string          `db:"code"`
	RegisterCode  string          `db:"register_code"`
	CashierCode   string          `db:"cashier_code"`
	ShiftCode     string          `db:"shift_code"`
	Kind          string          `db:"kind"`
	Amount        decimal.Decimal `db:"amount"`
	Denominations Denominations   `db:"denominations"`
	CreatedAt     time.Time       `db:"created_at"`
	Version       int             `db:"version"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Code          string
	RegisterCode  string
	CashierCode   string
	ShiftCode     string
	Kind          string
	Amount        decimal.Decimal
	Denominations Denominations
	CreatedAt     time.Time
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	ShiftCode string
	Kind      omit.Val[string]
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	// FindByCode returns nil, nil when no transaction has the code.
	FindByCode(ctx context.Context, code string) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
