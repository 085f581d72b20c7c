package actions

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

// OpenShift creates an OPEN shift unless the pair already has one for the day.
type OpenShift struct {
	Create *sqlconfig.ShiftCreate
	// DayStart and DayEnd bound the calendar day the shift belongs to.
	DayStart time.Time
	DayEnd   time.Time

	Result *sqlconfig.Shift
}

func (o *OpenShift) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Shifts.FindOpenForDay(ctx, o.Create.RegisterCode, o.Create.CashierCode, o.DayStart, o.DayEnd)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.ShiftAlreadyOpen("cashier %s already has shift %s open on register %s",
			o.Create.CashierCode, existing.Code, o.Create.RegisterCode)
	}

	row, err := writer.Shifts.Insert(ctx, o.Create)
	if errors.Is(err, sqlconfig.ErrConflict) {
		// lost the race to a concurrent open, or the day's shift is already closed
		current, findErr := writer.Shifts.FindByCode(ctx, o.Create.Code, false)
		if findErr != nil {
			return findErr
		}
		if current != nil && current.Status == sqlconfig.ShiftStatusOpen {
			return apperr.ShiftAlreadyOpen("shift %s is already open", o.Create.Code)
		}
		return apperr.Creation("shift %s already exists for this day", o.Create.Code)
	}
	if err != nil {
		return err
	}

	o.Result = row
	return nil
}
