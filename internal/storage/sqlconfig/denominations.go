package sqlconfig

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashier-shifts/internal/cash"
)

// Denomination is one stored line of a cash breakdown.
type Denomination struct {
	BillValue int             `json:"billValue"`
	Count     int             `json:"count"`
	Amount    decimal.Decimal `json:"amount"`
}

// Denominations is stored as a JSONB array.
type Denominations []Denomination

func (d Denominations) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

func (d *Denominations) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("denominations: unsupported source type %T", src)
	}
	return json.Unmarshal(raw, d)
}

func FromLines(lines []cash.DenominationLine) Denominations {
	d := make(Denominations, len(lines))
	for i, line := range lines {
		d[i] = Denomination{BillValue: line.BillValue, Count: line.Count, Amount: line.Amount}
	}
	return d
}

func (d Denominations) Lines() []cash.DenominationLine {
	lines := make([]cash.DenominationLine, len(d))
	for i, item := range d {
		lines[i] = cash.DenominationLine{BillValue: item.BillValue, Count: item.Count, Amount: item.Amount}
	}
	return lines
}
