package storage

import (
	"context"

	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

type committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx           committer
	Shifts       sqlconfig.IShiftTable
	Transactions sqlconfig.ITransactionTable
}

func NewWriter(tx committer, shifts sqlconfig.IShiftTable, transactions sqlconfig.ITransactionTable) *Writer {
	return &Writer{
		tx:           tx,
		Shifts:       shifts,
		Transactions: transactions,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
