package shift

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

// CloseShiftBody is the request body for closing a shift.
type CloseShiftBody struct {
	ShiftCode     string                  `json:"shiftCode" doc:"Shift code, CAJ01-USU01-20250109"`
	ClosingAmount string                  `json:"closingAmount" doc:"Decimal counted closing amount"`
	Denominations []wire.DenominationLine `json:"denominations" doc:"Closing cash breakdown"`
}

type CloseShiftInput struct {
	Body CloseShiftBody
}

type CloseShiftOutput struct {
	Body Shift
}

type shiftCloser interface {
	Close(ctx context.Context, req service.CloseShiftRequest) (*service.Shift, error)
}

// CloseShiftHandler handles PUT /v1/shifts/close.
type CloseShiftHandler struct {
	ShiftService shiftCloser
}

func NewCloseShiftHandler(svc shiftCloser) *CloseShiftHandler {
	return &CloseShiftHandler{ShiftService: svc}
}

func (h *CloseShiftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "close-shift",
		Method:      http.MethodPut,
		Path:        "/v1/shifts/close",
		Summary:     "Close shift",
		Description: "Closes an open shift once the counted cash matches the opening amount plus recorded movements.",
		Tags:        []string{"Shifts"},
	}, h.handle)
}

func (h *CloseShiftHandler) handle(ctx context.Context, input *CloseShiftInput) (*CloseShiftOutput, error) {
	amount, err := wire.ParseAmount("closingAmount", input.Body.ClosingAmount)
	if err != nil {
		return nil, err
	}
	lines, err := wire.ParseLines(input.Body.Denominations)
	if err != nil {
		return nil, err
	}

	shift, err := h.ShiftService.Close(ctx, service.CloseShiftRequest{
		ShiftCode:     input.Body.ShiftCode,
		ClosingAmount: amount,
		Lines:         lines,
	})
	if err != nil {
		return nil, wire.Error(err, "failed to close shift")
	}

	return &CloseShiftOutput{Body: FromService(shift)}, nil
}
