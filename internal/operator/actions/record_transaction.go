package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

type RecordTransaction struct {
	Create *sqlconfig.TransactionCreate

	Result *sqlconfig.Transaction
}

func (r *RecordTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, r.Create)
	if errors.Is(err, sqlconfig.ErrConflict) {
		return apperr.Creation("transaction code %s is already taken, retry the request", r.Create.Code)
	}
	if err != nil {
		return err
	}

	r.Result = row
	return nil
}
