package validation

import (
	"context"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
)

// ShiftAuthority answers the shift manager's validation questions.
type ShiftAuthority interface {
	IsRegisterValid(ctx context.Context, registerCode string) (bool, error)
	IsCashierValid(ctx context.Context, cashierCode string) (bool, error)
	IsCashierAuthorizedOnRegister(ctx context.Context, registerCode, cashierCode string) (bool, error)
	IsShiftOpen(ctx context.Context, shiftCode string) (bool, error)
}

// LocalPipeline holds the checks that need no remote call, ordered from the
// cheapest and most specific to the broadest.
func LocalPipeline() *Pipeline {
	return NewPipeline(
		NewFormatCheck("registerFormat", func(req Request) error {
			return cash.CheckRegisterCode(req.RegisterCode)
		}),
		NewFormatCheck("cashierFormat", func(req Request) error {
			return cash.CheckCashierCode(req.CashierCode)
		}),
		NewFormatCheck("shiftFormat", func(req Request) error {
			return cash.CheckShiftCode(req.ShiftCode)
		}),
		NewFormatCheck("kind", func(req Request) error {
			_, err := cash.ParseKind(req.Kind)
			return err
		}),
		NewFormatCheck("amount", func(req Request) error {
			if !req.Amount.IsPositive() {
				return apperr.Validation("amount must be greater than 0")
			}
			return nil
		}),
		NewFormatCheck("denominations", func(req Request) error {
			return cash.Reconcile(req.Lines, req.Amount)
		}),
	)
}

// AdmissionPipeline asks the shift manager, in order: register, cashier,
// cashier-on-register authorization, then whether the shift is open.
func AdmissionPipeline(authority ShiftAuthority) *Pipeline {
	return NewPipeline(
		NewRemoteCheck("registerValid",
			func(ctx context.Context, req Request) (bool, error) {
				return authority.IsRegisterValid(ctx, req.RegisterCode)
			},
			func(req Request) error {
				return apperr.Validation("register %s was not confirmed by the shift manager", req.RegisterCode)
			}),
		NewRemoteCheck("cashierValid",
			func(ctx context.Context, req Request) (bool, error) {
				return authority.IsCashierValid(ctx, req.CashierCode)
			},
			func(req Request) error {
				return apperr.Validation("cashier %s was not confirmed by the shift manager", req.CashierCode)
			}),
		NewRemoteCheck("cashierAuthorized",
			func(ctx context.Context, req Request) (bool, error) {
				return authority.IsCashierAuthorizedOnRegister(ctx, req.RegisterCode, req.CashierCode)
			},
			func(req Request) error {
				return apperr.Validation("cashier %s is not authorized on register %s", req.CashierCode, req.RegisterCode)
			}),
		NewRemoteCheck("shiftOpen",
			func(ctx context.Context, req Request) (bool, error) {
				return authority.IsShiftOpen(ctx, req.ShiftCode)
			},
			func(req Request) error {
				return apperr.ShiftNotOpen("shift %s is not open", req.ShiftCode)
			}),
	)
}
