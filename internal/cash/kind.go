package cash

import (
	"strings"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
)

// Kind is the type of a cash transaction.
type Kind string

const (
	KindInicio   Kind = "INICIO"
	KindAhorro   Kind = "AHORRO"
	KindDeposito Kind = "DEPOSITO"
	KindCierre   Kind = "CIERRE"
	KindRetiro   Kind = "RETIRO"
)

// Kinds lists every kind accepted on input.
var Kinds = []Kind{KindInicio, KindAhorro, KindDeposito, KindCierre, KindRetiro}

// ParseKind canonicalizes s to upper case and checks it is a known kind.
func ParseKind(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", apperr.Validation("transaction kind is required")
	}

	kind := Kind(strings.ToUpper(trimmed))
	for _, known := range Kinds {
		if kind == known {
			return kind, nil
		}
	}
	return "", apperr.Validation("transaction kind %q is invalid, use INICIO, AHORRO, DEPOSITO, CIERRE or RETIRO", s)
}

// Effect is the sign a kind applies to the shift balance: +1 for deposits and
// savings, -1 for withdrawals, 0 for the informational kinds.
func (k Kind) Effect() int {
	switch k {
	case KindDeposito, KindAhorro:
		return 1
	case KindRetiro:
		return -1
	default:
		return 0
	}
}

func (k Kind) String() string {
	return string(k)
}
