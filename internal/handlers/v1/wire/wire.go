// Package wire holds the JSON shapes and error mapping shared by the v1 handlers.
package wire

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
)

// DenominationLine is one line of a cash breakdown on the wire.
type DenominationLine struct {
	BillValue int    `json:"billValue" doc:"Bill value: 1, 5, 10, 20, 50 or 100"`
	Count     int    `json:"count" doc:"Number of bills"`
	Amount    string `json:"amount" doc:"Decimal amount, billValue * count"`
}

// ParseAmount parses a decimal string, answering 400 when it is not one.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return amount, nil
}

func ParseLines(lines []DenominationLine) ([]cash.DenominationLine, error) {
	result := make([]cash.DenominationLine, len(lines))
	for i, line := range lines {
		amount, err := ParseAmount("denomination amount", line.Amount)
		if err != nil {
			return nil, err
		}
		result[i] = cash.DenominationLine{BillValue: line.BillValue, Count: line.Count, Amount: amount}
	}
	return result, nil
}

func FormatLines(lines []cash.DenominationLine) []DenominationLine {
	result := make([]DenominationLine, len(lines))
	for i, line := range lines {
		result[i] = DenominationLine{
			BillValue: line.BillValue,
			Count:     line.Count,
			Amount:    line.Amount.StringFixed(2),
		}
	}
	return result
}

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Error maps a service error to a huma error. Domain errors keep their own
// message; anything else answers with message and the cause as detail.
func Error(err error, message string) error {
	status := apperr.HTTPStatus(err)
	if apperr.IsDomain(err) && status < http.StatusInternalServerError {
		return huma.NewError(status, err.Error())
	}
	return huma.NewError(status, message, err)
}
