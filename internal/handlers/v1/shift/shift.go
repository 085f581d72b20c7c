package shift

import (
	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

// Shift is the API response model for a shift.
type Shift struct {
	ShiftCode            string                  `json:"shiftCode" doc:"Shift code, CAJ01-USU01-20250109"`
	RegisterCode         string                  `json:"registerCode" doc:"Register code"`
	CashierCode          string                  `json:"cashierCode" doc:"Cashier code"`
	Status               string                  `json:"status" enum:"OPEN,CLOSED" doc:"Shift status"`
	OpenedAt             string                  `json:"openedAt" doc:"RFC3339 opening time"`
	OpeningAmount        string                  `json:"openingAmount" doc:"Decimal opening amount"`
	OpeningDenominations []wire.DenominationLine `json:"openingDenominations" doc:"Opening cash breakdown"`
	ClosedAt             *string                 `json:"closedAt,omitempty" doc:"RFC3339 closing time, absent while open"`
	ClosingAmount        *string                 `json:"closingAmount,omitempty" doc:"Decimal closing amount, absent while open"`
	ClosingDenominations []wire.DenominationLine `json:"closingDenominations,omitempty" doc:"Closing cash breakdown"`
	Version              int                     `json:"version" doc:"Incremented on every change"`
}

// FromService converts a service shift into its response model.
func FromService(s *service.Shift) Shift {
	out := Shift{
		ShiftCode:            s.Code,
		RegisterCode:         s.RegisterCode,
		CashierCode:          s.CashierCode,
		Status:               string(s.Status),
		OpenedAt:             wire.FormatTime(s.OpenedAt),
		OpeningAmount:        wire.FormatAmount(s.OpeningAmount),
		OpeningDenominations: wire.FormatLines(s.OpeningLines),
		Version:              s.Version,
	}
	if s.ClosedAt != nil {
		closedAt := wire.FormatTime(*s.ClosedAt)
		out.ClosedAt = &closedAt
	}
	if s.ClosingAmount != nil {
		amount := wire.FormatAmount(*s.ClosingAmount)
		out.ClosingAmount = &amount
	}
	if len(s.ClosingLines) > 0 {
		out.ClosingDenominations = wire.FormatLines(s.ClosingLines)
	}
	return out
}
