package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

type ListByShiftInput struct {
	ShiftCode string `path:"shiftCode" doc:"Shift code"`
}

type ListByShiftAndKindInput struct {
	ShiftCode string `path:"shiftCode" doc:"Shift code"`
	Kind      string `path:"kind" doc:"Transaction kind, any case"`
}

// ListTransactionsResponseBody is the response body for both list endpoints.
// The shift manager reads it when closing a shift.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions of the shift, in no particular order"`
}

type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListByShift(ctx context.Context, shiftCode string) ([]service.Transaction, error)
	ListByShiftAndKind(ctx context.Context, shiftCode, kind string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions/shift/{shiftCode} and
// GET /v1/transactions/shift/{shiftCode}/kind/{kind}.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions-by-shift",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/shift/{shiftCode}",
		Summary:     "List transactions of a shift",
		Tags:        []string{"Transactions"},
	}, h.byShift)

	huma.Register(api, huma.Operation{
		OperationID: "list-transactions-by-shift-and-kind",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/shift/{shiftCode}/kind/{kind}",
		Summary:     "List transactions of a shift by kind",
		Tags:        []string{"Transactions"},
	}, h.byShiftAndKind)
}

func (h *ListTransactionsHandler) byShift(ctx context.Context, input *ListByShiftInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listTransactionsMs")
	transactions, err := h.TransactionService.ListByShift(ctx, input.ShiftCode)
	stopTimer()
	if err != nil {
		return nil, wire.Error(err, "failed to list transactions")
	}
	logData.AddData("transactionCount", len(transactions))

	return toOutput(transactions), nil
}

func (h *ListTransactionsHandler) byShiftAndKind(ctx context.Context, input *ListByShiftAndKindInput) (*ListTransactionsOutput, error) {
	transactions, err := h.TransactionService.ListByShiftAndKind(ctx, input.ShiftCode, input.Kind)
	if err != nil {
		return nil, wire.Error(err, "failed to list transactions")
	}
	return toOutput(transactions), nil
}

func toOutput(transactions []service.Transaction) *ListTransactionsOutput {
	resp := ListTransactionsResponseBody{Transactions: make([]Transaction, len(transactions))}
	for i := range transactions {
		resp.Transactions[i] = fromService(&transactions[i])
	}
	return &ListTransactionsOutput{Body: resp}
}
