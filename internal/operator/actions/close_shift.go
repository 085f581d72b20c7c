package actions

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

// TransactionSource returns the balance-relevant history of a shift. The
// shift manager reads it from the transaction recorder.
type TransactionSource interface {
	FindByShift(ctx context.Context, shiftCode string) ([]cash.Movement, error)
}

// CloseShift verifies the submitted closing cash against the shift's history
// and moves the shift to CLOSED. The shift row stays locked for the duration.
type CloseShift struct {
	ShiftCode     string
	ClosingAmount decimal.Decimal
	ClosingLines  []cash.DenominationLine
	ClosedAt      time.Time
	Source        TransactionSource

	Result *sqlconfig.Shift
}

func (c *CloseShift) Perform(ctx context.Context, writer *storage.Writer) error {
	shift, err := writer.Shifts.FindByCode(ctx, c.ShiftCode, true)
	if err != nil {
		return err
	}
	if shift == nil {
		return apperr.NotFound("shift %s does not exist", c.ShiftCode)
	}
	if shift.Status != sqlconfig.ShiftStatusOpen {
		return apperr.ShiftNotOpen("shift %s is %s", c.ShiftCode, shift.Status)
	}

	if !c.ClosingAmount.IsPositive() {
		return apperr.Validation("closing amount must be greater than 0")
	}
	if err := cash.Reconcile(c.ClosingLines, c.ClosingAmount); err != nil {
		return err
	}

	movements, err := c.Source.FindByShift(ctx, c.ShiftCode)
	if err != nil {
		return err
	}

	expected := cash.ExpectedBalance(shift.OpeningAmount, movements)
	if !expected.Equal(c.ClosingAmount) {
		return apperr.BalanceMismatch("shift %s expected closing balance %s, submitted %s",
			c.ShiftCode, expected.StringFixed(2), c.ClosingAmount.StringFixed(2))
	}

	row, err := writer.Shifts.Close(ctx, c.ShiftCode, &sqlconfig.ShiftClose{
		ClosedAt:             c.ClosedAt,
		ClosingAmount:        c.ClosingAmount,
		ClosingDenominations: sqlconfig.FromLines(c.ClosingLines),
	})
	if errors.Is(err, sqlconfig.ErrConflict) {
		return apperr.ShiftNotOpen("shift %s is no longer open", c.ShiftCode)
	}
	if err != nil {
		return err
	}

	c.Result = row
	return nil
}
