package cash

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
)

var (
	registerCodePattern    = regexp.MustCompile(`^CAJ\d{2}$`)
	cashierCodePattern     = regexp.MustCompile(`^USU\d{2}$`)
	shiftCodePattern       = regexp.MustCompile(`^CAJ\d{2}-USU\d{2}-\d{8}$`)
	transactionCodePattern = regexp.MustCompile(`^TXN[A-Z0-9]{8}$`)
)

const (
	shiftCodeDateLayout   = "20060102"
	transactionCodePrefix = "TXN"
	transactionCodeLength = 8
	transactionAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func ValidRegisterCode(code string) bool    { return registerCodePattern.MatchString(code) }
func ValidCashierCode(code string) bool     { return cashierCodePattern.MatchString(code) }
func ValidShiftCode(code string) bool       { return shiftCodePattern.MatchString(code) }
func ValidTransactionCode(code string) bool { return transactionCodePattern.MatchString(code) }

// CheckRegisterCode returns a validation error naming the expected format.
func CheckRegisterCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return apperr.Validation("register code is required")
	}
	if !ValidRegisterCode(code) {
		return apperr.Validation("register code %q has an invalid format, use CAJ01, CAJ02, ...", code)
	}
	return nil
}

func CheckCashierCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return apperr.Validation("cashier code is required")
	}
	if !ValidCashierCode(code) {
		return apperr.Validation("cashier code %q has an invalid format, use USU01, USU02, ...", code)
	}
	return nil
}

func CheckShiftCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return apperr.Validation("shift code is required")
	}
	if !ValidShiftCode(code) {
		return apperr.Validation("shift code %q has an invalid format, use CAJ01-USU01-20250109", code)
	}
	return nil
}

func CheckTransactionCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return apperr.Validation("transaction code is required")
	}
	if !ValidTransactionCode(code) {
		return apperr.Validation("transaction code %q has an invalid format, use TXN12345678", code)
	}
	return nil
}

// ShiftCode builds the deterministic shift identifier for a register, a
// cashier and the calendar day of day.
func ShiftCode(registerCode, cashierCode string, day time.Time) string {
	return registerCode + "-" + cashierCode + "-" + day.Format(shiftCodeDateLayout)
}

// DayBounds returns the start of t's calendar day and the start of the next
// one, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// NewTransactionCode returns TXN followed by 8 characters of [A-Z0-9] taken
// from a random v4 UUID.
func NewTransactionCode() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(transactionCodePrefix) + transactionCodeLength)
	b.WriteString(transactionCodePrefix)
	for i := 0; i < transactionCodeLength; i++ {
		// two random bytes per character keeps the modulo bias negligible
		n := int(id[2*i])<<8 | int(id[2*i+1])
		b.WriteByte(transactionAlphabet[n%len(transactionAlphabet)])
	}
	return b.String(), nil
}
