package validation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashier-shifts/internal/cash"
)

// Request is what a transaction asks to be admitted with.
type Request struct {
	RegisterCode string
	CashierCode  string
	ShiftCode    string
	Kind         string
	Amount       decimal.Decimal
	Lines        []cash.DenominationLine
}

// Check is one admission step. A non-nil error rejects the request.
type Check interface {
	Name() string
	Run(ctx context.Context, req Request) error
}

// FormatCheck is a local, side-effect free check.
type FormatCheck struct {
	name  string
	check func(req Request) error
}

func NewFormatCheck(name string, check func(req Request) error) *FormatCheck {
	return &FormatCheck{name: name, check: check}
}

func (c *FormatCheck) Name() string { return c.name }

func (c *FormatCheck) Run(_ context.Context, req Request) error {
	return c.check(req)
}

// RemoteCheck asks a peer service. It fails closed: a negative answer and a
// failed call are both turned into the same rejection.
type RemoteCheck struct {
	name   string
	call   func(ctx context.Context, req Request) (bool, error)
	reject func(req Request) error
}

func NewRemoteCheck(
	name string,
	call func(ctx context.Context, req Request) (bool, error),
	reject func(req Request) error,
) *RemoteCheck {
	return &RemoteCheck{name: name, call: call, reject: reject}
}

func (c *RemoteCheck) Name() string { return c.name }

func (c *RemoteCheck) Run(ctx context.Context, req Request) error {
	ok, err := c.call(ctx, req)
	if err != nil {
		return fmt.Errorf("%w (%v)", c.reject(req), err)
	}
	if !ok {
		return c.reject(req)
	}
	return nil
}
