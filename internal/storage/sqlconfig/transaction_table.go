package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"code",
	"register_code",
	"cashier_code",
	"shift_code",
	"kind",
	"amount",
	"denominations",
	"created_at",
	"version",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByCode retrieves a transaction by primary key.
func (t *TransactionsTable) FindByCode(ctx context.Context, code string) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("code").EQ(psql.Arg(code))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert writes the transaction with version 1. A taken code yields ErrConflict.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(transactionsTableName,
			"code",
			"register_code",
			"cashier_code",
			"shift_code",
			"kind",
			"amount",
			"denominations",
			"created_at",
			"version",
		),
		im.Values(
			psql.Arg(create.Code),
			psql.Arg(create.RegisterCode),
			psql.Arg(create.CashierCode),
			psql.Arg(create.ShiftCode),
			psql.Arg(create.Kind),
			psql.Arg(create.Amount),
			psql.Arg(create.Denominations),
			psql.Arg(create.CreatedAt),
			psql.Arg(1),
		),
		im.OnConflict("code").DoNothing(),
		im.Returning(transactionColumns...),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the transactions of a shift, optionally narrowed to one kind.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	if filter != nil {
		if filter.ShiftCode != "" {
			queryMods = append(queryMods, sm.Where(psql.Quote("shift_code").EQ(psql.Arg(filter.ShiftCode))))
		}
		if kind, ok := filter.Kind.Get(); ok {
			queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(kind))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("code")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
