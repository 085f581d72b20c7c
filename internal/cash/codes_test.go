package cash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
)

func TestCodeFormats(t *testing.T) {
	assert.True(t, ValidRegisterCode("CAJ01"))
	assert.False(t, ValidRegisterCode("CAJ1"))
	assert.False(t, ValidRegisterCode("caj01"))
	assert.False(t, ValidRegisterCode("CAJ001"))

	assert.True(t, ValidCashierCode("USU99"))
	assert.False(t, ValidCashierCode("USR01"))

	assert.True(t, ValidShiftCode("CAJ01-USU01-20250109"))
	assert.False(t, ValidShiftCode("CAJ01-USU01-2025019"))
	assert.False(t, ValidShiftCode("CAJ01_USU01_20250109"))

	assert.True(t, ValidTransactionCode("TXNAB12CD34"))
	assert.False(t, ValidTransactionCode("TXNab12cd34"))
	assert.False(t, ValidTransactionCode("TXN1234567"))
}

func TestCheckCodes(t *testing.T) {
	assert.NoError(t, CheckRegisterCode("CAJ02"))
	assert.ErrorIs(t, CheckRegisterCode(""), apperr.ErrValidation)
	assert.ErrorIs(t, CheckCashierCode("USU1"), apperr.ErrValidation)
	assert.ErrorIs(t, CheckShiftCode(" "), apperr.ErrValidation)
	assert.ErrorIs(t, CheckTransactionCode("TXN"), apperr.ErrValidation)
}

func TestShiftCode(t *testing.T) {
	day := time.Date(2025, 1, 9, 23, 59, 0, 0, time.UTC)

	code := ShiftCode("CAJ01", "USU01", day)

	assert.Equal(t, "CAJ01-USU01-20250109", code)
	assert.True(t, ValidShiftCode(code))
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("ECT", -5*60*60)
	now := time.Date(2025, 3, 31, 18, 30, 0, 0, loc)

	start, end := DayBounds(now)

	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, loc), end)
}

func TestNewTransactionCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code, err := NewTransactionCode()
		require.NoError(t, err)
		assert.True(t, ValidTransactionCode(code), code)
		seen[code] = struct{}{}
	}

	assert.Len(t, seen, 1000)
}
