package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

type GetTransactionInput struct {
	TransactionCode string `path:"transactionCode" doc:"Transaction code"`
}

type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	Get(ctx context.Context, transactionCode string) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{transactionCode}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{transactionCode}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	tx, err := h.TransactionService.Get(ctx, input.TransactionCode)
	if err != nil {
		return nil, wire.Error(err, "failed to get transaction")
	}
	return &GetTransactionOutput{Body: fromService(tx)}, nil
}
