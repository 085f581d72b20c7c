package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

// RecordTransactionBody is the request body for recording a transaction.
type RecordTransactionBody struct {
	RegisterCode  string                  `json:"registerCode" doc:"Register code, CAJ01"`
	CashierCode   string                  `json:"cashierCode" doc:"Cashier code, USU01"`
	ShiftCode     string                  `json:"shiftCode" doc:"Code of the open shift"`
	Kind          string                  `json:"kind" doc:"INICIO, AHORRO, DEPOSITO, CIERRE or RETIRO, any case"`
	Amount        string                  `json:"amount" doc:"Decimal total amount"`
	Denominations []wire.DenominationLine `json:"denominations" doc:"Cash breakdown of amount"`
}

type RecordTransactionInput struct {
	Body RecordTransactionBody
}

type RecordTransactionOutput struct {
	Body Transaction
}

type transactionRecorder interface {
	Record(ctx context.Context, req service.RecordTransactionRequest) (*service.Transaction, error)
}

// RecordTransactionHandler handles POST /v1/transactions.
type RecordTransactionHandler struct {
	TransactionService transactionRecorder
}

func NewRecordTransactionHandler(svc transactionRecorder) *RecordTransactionHandler {
	return &RecordTransactionHandler{TransactionService: svc}
}

func (h *RecordTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Record transaction",
		Description:   "Records a cash movement against an open shift after the shift manager admits it.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseRecordTransactionInput only converts the decimal strings; every
// domain check belongs to the service.
func parseRecordTransactionInput(input *RecordTransactionInput) (service.RecordTransactionRequest, error) {
	amount, err := wire.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return service.RecordTransactionRequest{}, err
	}
	lines, err := wire.ParseLines(input.Body.Denominations)
	if err != nil {
		return service.RecordTransactionRequest{}, err
	}
	return service.RecordTransactionRequest{
		RegisterCode: input.Body.RegisterCode,
		CashierCode:  input.Body.CashierCode,
		ShiftCode:    input.Body.ShiftCode,
		Kind:         input.Body.Kind,
		Amount:       amount,
		Lines:        lines,
	}, nil
}

func (h *RecordTransactionHandler) handle(ctx context.Context, input *RecordTransactionInput) (*RecordTransactionOutput, error) {
	req, err := parseRecordTransactionInput(input)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.Record(ctx, req)
	if err != nil {
		return nil, wire.Error(err, "failed to record transaction")
	}

	return &RecordTransactionOutput{Body: fromService(tx)}, nil
}
