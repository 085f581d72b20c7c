package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

// memoryShifts is an in-memory IShiftTable with the same conditional-write
// behaviour as the SQL table.
type memoryShifts struct {
	mu   sync.Mutex
	rows map[string]sqlconfig.Shift
}

func newMemoryShifts() *memoryShifts {
	return &memoryShifts{rows: make(map[string]sqlconfig.Shift)}
}

func (m *memoryShifts) FindByCode(_ context.Context, code string, _ bool) (*sqlconfig.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[code]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memoryShifts) FindOpenForDay(_ context.Context, registerCode, cashierCode string, from, to time.Time) (*sqlconfig.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.RegisterCode == registerCode && row.CashierCode == cashierCode &&
			row.Status == sqlconfig.ShiftStatusOpen &&
			!row.OpenedAt.Before(from) && row.OpenedAt.Before(to) {
			return &row, nil
		}
	}
	return nil, nil
}

func (m *memoryShifts) Insert(_ context.Context, create *sqlconfig.ShiftCreate) (*sqlconfig.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[create.Code]; ok {
		return nil, sqlconfig.ErrConflict
	}
	row := sqlconfig.Shift{
		Code:                 create.Code,
		RegisterCode:         create.RegisterCode,
		CashierCode:          create.CashierCode,
		BusinessDay:          create.BusinessDay,
		Status:               sqlconfig.ShiftStatusOpen,
		OpenedAt:             create.OpenedAt,
		OpeningAmount:        create.OpeningAmount,
		OpeningDenominations: create.OpeningDenominations,
		Version:              1,
	}
	m.rows[create.Code] = row
	return &row, nil
}

func (m *memoryShifts) Close(_ context.Context, code string, update *sqlconfig.ShiftClose) (*sqlconfig.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[code]
	if !ok || row.Status != sqlconfig.ShiftStatusOpen {
		return nil, sqlconfig.ErrConflict
	}
	closedAt := update.ClosedAt
	row.Status = sqlconfig.ShiftStatusClosed
	row.ClosedAt = &closedAt
	row.ClosingAmount.Decimal = update.ClosingAmount
	row.ClosingAmount.Valid = true
	row.ClosingDenominations = update.ClosingDenominations
	row.Version++
	m.rows[code] = row
	return &row, nil
}

func (m *memoryShifts) ListByCashier(_ context.Context, registerCode, cashierCode string) ([]*sqlconfig.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*sqlconfig.Shift
	for _, row := range m.rows {
		if row.RegisterCode == registerCode && row.CashierCode == cashierCode {
			row := row
			result = append(result, &row)
		}
	}
	return result, nil
}

type memoryTransactions struct {
	mu   sync.Mutex
	rows []sqlconfig.Transaction
}

func (m *memoryTransactions) FindByCode(_ context.Context, code string) (*sqlconfig.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Code == code {
			return &row, nil
		}
	}
	return nil, nil
}

func (m *memoryTransactions) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Code == create.Code {
			return nil, sqlconfig.ErrConflict
		}
	}
	row := sqlconfig.Transaction{
		Code:          create.Code,
		RegisterCode:  create.RegisterCode,
		CashierCode:   create.CashierCode,
		ShiftCode:     create.ShiftCode,
		Kind:          create.Kind,
		Amount:        create.Amount,
		Denominations: create.Denominations,
		CreatedAt:     create.CreatedAt,
		Version:       1,
	}
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memoryTransactions) List(_ context.Context, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*sqlconfig.Transaction
	for _, row := range m.rows {
		if filter.ShiftCode != "" && row.ShiftCode != filter.ShiftCode {
			continue
		}
		if kind, ok := filter.Kind.Get(); ok && row.Kind != kind {
			continue
		}
		row := row
		result = append(result, &row)
	}
	return result, nil
}

func (m *memoryTransactions) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type noopTx struct{}

func (noopTx) Commit(context.Context) error   { return nil }
func (noopTx) Rollback(context.Context) error { return nil }

// memoryStore hands out writers over the in-memory tables.
type memoryStore struct {
	*storage.Storage
}

func newMemoryStore(shifts sqlconfig.IShiftTable, transactions sqlconfig.ITransactionTable) *memoryStore {
	return &memoryStore{Storage: &storage.Storage{Shifts: shifts, Transactions: transactions}}
}

func (m *memoryStore) Write(context.Context) (*storage.Writer, error) {
	return storage.NewWriter(noopTx{}, m.Shifts, m.Transactions), nil
}

// localAuthority answers the recorder's questions from an in-process
// ValidationService, the way the HTTP endpoints do.
type localAuthority struct {
	validation *ValidationService
}

func (a localAuthority) IsRegisterValid(_ context.Context, code string) (bool, error) {
	return a.validation.IsRegisterValid(code), nil
}

func (a localAuthority) IsCashierValid(_ context.Context, code string) (bool, error) {
	return a.validation.IsCashierValid(code), nil
}

func (a localAuthority) IsCashierAuthorizedOnRegister(_ context.Context, registerCode, cashierCode string) (bool, error) {
	return a.validation.IsCashierAuthorizedOnRegister(registerCode, cashierCode), nil
}

func (a localAuthority) IsShiftOpen(ctx context.Context, code string) (bool, error) {
	_, open, err := a.validation.IsShiftOpen(ctx, code)
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	return open, err
}

// localLedger reads shift history from an in-process TransactionService.
type localLedger struct {
	transactions *TransactionService
}

func (l localLedger) FindByShift(ctx context.Context, shiftCode string) ([]cash.Movement, error) {
	txns, err := l.transactions.ListByShift(ctx, shiftCode)
	if err != nil {
		return nil, err
	}
	movements := make([]cash.Movement, len(txns))
	for i, txn := range txns {
		movements[i] = cash.Movement{Kind: txn.Kind, Amount: txn.Amount}
	}
	return movements, nil
}
