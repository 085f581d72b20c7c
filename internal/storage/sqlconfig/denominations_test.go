package sqlconfig

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenominations_Value(t *testing.T) {
	d := Denominations{{BillValue: 20, Count: 3, Amount: decimal.RequireFromString("60.00")}}

	v, err := d.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"billValue":20,"count":3,"amount":"60"}]`, string(v.([]byte)))

	v, err = Denominations(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestDenominations_Scan(t *testing.T) {
	var d Denominations

	require.NoError(t, d.Scan([]byte(`[{"billValue":100,"count":2,"amount":"200.00"}]`)))
	require.Len(t, d, 1)
	assert.Equal(t, 100, d[0].BillValue)
	assert.Equal(t, 2, d[0].Count)
	assert.True(t, d[0].Amount.Equal(decimal.RequireFromString("200")))

	require.NoError(t, d.Scan(`[]`))
	assert.Empty(t, d)

	require.NoError(t, d.Scan(nil))
	assert.Nil(t, d)

	assert.Error(t, d.Scan(42))
}
