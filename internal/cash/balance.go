package cash

import (
	"github.com/shopspring/decimal"
)

// Movement is the part of a transaction that affects a shift balance.
type Movement struct {
	Kind   Kind
	Amount decimal.Decimal
}

// ExpectedBalance starts from opening and applies every movement by the
// effect of its kind. The result does not depend on the order of movements.
func ExpectedBalance(opening decimal.Decimal, movements []Movement) decimal.Decimal {
	balance := opening
	for _, m := range movements {
		switch m.Kind.Effect() {
		case 1:
			balance = balance.Add(m.Amount)
		case -1:
			balance = balance.Sub(m.Amount)
		}
	}
	return balance
}
