package cash

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
)

// AllowedBillValues is the closed set of bill values a breakdown may use.
var AllowedBillValues = []int{1, 5, 10, 20, 50, 100}

// DenominationLine describes part of a cash total: Count bills of BillValue,
// worth Amount. Amount is derived and must equal BillValue * Count.
type DenominationLine struct {
	BillValue int
	Count     int
	Amount    decimal.Decimal
}

// Expected returns BillValue * Count.
func (l DenominationLine) Expected() decimal.Decimal {
	return decimal.NewFromInt(int64(l.BillValue)).Mul(decimal.NewFromInt(int64(l.Count)))
}

func isAllowedBill(value int) bool {
	for _, allowed := range AllowedBillValues {
		if value == allowed {
			return true
		}
	}
	return false
}

// Reconcile checks that lines is a bill-accountable breakdown of total.
// It has no side effects and the order of lines does not matter.
func Reconcile(lines []DenominationLine, total decimal.Decimal) error {
	if len(lines) == 0 {
		return apperr.InvalidDenomination("denomination breakdown is required")
	}

	sum := decimal.Zero
	for _, line := range lines {
		if !isAllowedBill(line.BillValue) {
			return apperr.InvalidDenomination("bill value %d is not allowed, use 1, 5, 10, 20, 50 or 100", line.BillValue)
		}
		if line.Count <= 0 {
			return apperr.InvalidDenomination("count must be greater than 0 for bill value %d", line.BillValue)
		}
		if !line.Amount.IsPositive() {
			return apperr.InvalidDenomination("amount must be greater than 0 for bill value %d", line.BillValue)
		}
		if expected := line.Expected(); !expected.Equal(line.Amount) {
			return apperr.InvalidDenomination("amount for bill value %d does not match bill value * count: expected %s, got %s",
				line.BillValue, expected.StringFixed(2), line.Amount.StringFixed(2))
		}
		sum = sum.Add(line.Amount)
	}

	if !sum.Equal(total) {
		return apperr.AmountMismatch("denomination sum %s does not match total %s", sum.StringFixed(2), total.StringFixed(2))
	}
	return nil
}

// Sum adds up the declared line amounts.
func Sum(lines []DenominationLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount)
	}
	return sum
}
