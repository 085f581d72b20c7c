package transaction

import (
	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	TransactionCode string                  `json:"transactionCode" doc:"Transaction code, TXN followed by 8 characters"`
	RegisterCode    string                  `json:"registerCode" doc:"Register code"`
	CashierCode     string                  `json:"cashierCode" doc:"Cashier code"`
	ShiftCode       string                  `json:"shiftCode" doc:"Shift code"`
	Kind            string                  `json:"kind" enum:"INICIO,AHORRO,DEPOSITO,CIERRE,RETIRO" doc:"Transaction kind"`
	Amount          string                  `json:"amount" doc:"Decimal amount"`
	Denominations   []wire.DenominationLine `json:"denominations" doc:"Cash breakdown"`
	CreatedAt       string                  `json:"createdAt" doc:"RFC3339 creation time"`
	Version         int                     `json:"version" doc:"Always 1, transactions are never modified"`
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		TransactionCode: tx.Code,
		RegisterCode:    tx.RegisterCode,
		CashierCode:     tx.CashierCode,
		ShiftCode:       tx.ShiftCode,
		Kind:            tx.Kind.String(),
		Amount:          wire.FormatAmount(tx.Amount),
		Denominations:   wire.FormatLines(tx.Lines),
		CreatedAt:       wire.FormatTime(tx.CreatedAt),
		Version:         tx.Version,
	}
}
