package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const shiftsTableName = "shifts"

var shiftColumns = []any{
	"code",
	"register_code",
	"cashier_code",
	"business_day",
	"status",
	"opened_at",
	"opening_amount",
	"opening_denominations",
	"closed_at",
	"closing_amount",
	"closing_denominations",
	"version",
}

// ShiftsTable provides access to the shifts table.
type ShiftsTable struct {
	exec bob.Executor
}

// Ensure ShiftsTable implements IShiftTable at compile time.
var _ IShiftTable = (*ShiftsTable)(nil)

// NewShiftsTable creates a ShiftsTable bound to exec, either the pool or an open transaction.
func NewShiftsTable(exec bob.Executor) *ShiftsTable {
	return &ShiftsTable{exec: exec}
}

// FindByCode retrieves a shift by primary key, optionally locking the row.
func (t *ShiftsTable) FindByCode(ctx context.Context, code string, forUpdate bool) (*Shift, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(shiftColumns...),
		sm.From(shiftsTableName),
		sm.Where(psql.Quote("code").EQ(psql.Arg(code))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	return t.one(ctx, psql.Select(queryMods...))
}

// FindOpenForDay returns the OPEN shift of the pair opened within [from, to), if any.
func (t *ShiftsTable) FindOpenForDay(ctx context.Context, registerCode, cashierCode string, from, to time.Time) (*Shift, error) {
	q := psql.Select(
		sm.Columns(shiftColumns...),
		sm.From(shiftsTableName),
		sm.Where(psql.Quote("register_code").EQ(psql.Arg(registerCode))),
		sm.Where(psql.Quote("cashier_code").EQ(psql.Arg(cashierCode))),
		sm.Where(psql.Quote("status").EQ(psql.Arg(string(ShiftStatusOpen)))),
		sm.Where(psql.Quote("opened_at").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("opened_at").LT(psql.Arg(to))),
		sm.Limit(1),
	)

	return t.one(ctx, q)
}

// Insert creates the shift in status OPEN with version 1. It is a conditional
// write: when the code or the open-shift-per-day index already holds a row,
// nothing is written and ErrConflict is returned.
func (t *ShiftsTable) Insert(ctx context.Context, create *ShiftCreate) (*Shift, error) {
	q := psql.Insert(
		im.Into(shiftsTableName,
			"code",
			"register_code",
			"cashier_code",
			"business_day",
			"status",
			"opened_at",
			"opening_amount",
			"opening_denominations",
			"version",
		),
		im.Values(
			psql.Arg(create.Code),
			psql.Arg(create.RegisterCode),
			psql.Arg(create.CashierCode),
			psql.Arg(create.BusinessDay),
			psql.Arg(string(ShiftStatusOpen)),
			psql.Arg(create.OpenedAt),
			psql.Arg(create.OpeningAmount),
			psql.Arg(create.OpeningDenominations),
			psql.Arg(1),
		),
		im.OnConflict().DoNothing(),
		im.Returning(shiftColumns...),
	)

	row, err := t.one(ctx, q)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrConflict
	}
	return row, nil
}

// Close moves an OPEN shift to CLOSED and bumps its version by one. ErrConflict
// is returned when the shift is no longer OPEN.
func (t *ShiftsTable) Close(ctx context.Context, code string, update *ShiftClose) (*Shift, error) {
	q := psql.Update(
		um.Table(shiftsTableName),
		um.SetCol("status").ToArg(string(ShiftStatusClosed)),
		um.SetCol("closed_at").ToArg(update.ClosedAt),
		um.SetCol("closing_amount").ToArg(update.ClosingAmount),
		um.SetCol("closing_denominations").ToArg(update.ClosingDenominations),
		um.SetCol("version").To(psql.Raw("version + 1")),
		um.Where(psql.Quote("code").EQ(psql.Arg(code))),
		um.Where(psql.Quote("status").EQ(psql.Arg(string(ShiftStatusOpen)))),
		um.Returning(shiftColumns...),
	)

	row, err := t.one(ctx, q)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrConflict
	}
	return row, nil
}

// ListByCashier returns every shift of the pair, newest first.
func (t *ShiftsTable) ListByCashier(ctx context.Context, registerCode, cashierCode string) ([]*Shift, error) {
	q := psql.Select(
		sm.Columns(shiftColumns...),
		sm.From(shiftsTableName),
		sm.Where(psql.Quote("register_code").EQ(psql.Arg(registerCode))),
		sm.Where(psql.Quote("cashier_code").EQ(psql.Arg(cashierCode))),
		sm.OrderBy(psql.Quote("opened_at")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Shift]())
	if err != nil {
		return nil, err
	}
	result := make([]*Shift, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *ShiftsTable) one(ctx context.Context, q bob.Query) (*Shift, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Shift]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
