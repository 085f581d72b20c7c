package shift

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

type ListShiftsInput struct {
	RegisterCode string `path:"registerCode" doc:"Register code"`
	CashierCode  string `path:"cashierCode" doc:"Cashier code"`
}

type ListShiftsResponseBody struct {
	Shifts []Shift `json:"shifts" doc:"Every shift of the register and cashier"`
}

type ListShiftsOutput struct {
	Body ListShiftsResponseBody
}

type shiftLister interface {
	ListByCashier(ctx context.Context, registerCode, cashierCode string) ([]service.Shift, error)
}

// ListShiftsHandler handles GET /v1/shifts/register/{registerCode}/cashier/{cashierCode}.
type ListShiftsHandler struct {
	ShiftService shiftLister
}

func NewListShiftsHandler(svc shiftLister) *ListShiftsHandler {
	return &ListShiftsHandler{ShiftService: svc}
}

func (h *ListShiftsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-shifts",
		Method:      http.MethodGet,
		Path:        "/v1/shifts/register/{registerCode}/cashier/{cashierCode}",
		Summary:     "List shifts",
		Description: "Returns every shift of a register and cashier, open or closed.",
		Tags:        []string{"Shifts"},
	}, h.handle)
}

func (h *ListShiftsHandler) handle(ctx context.Context, input *ListShiftsInput) (*ListShiftsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listShiftsMs")
	shifts, err := h.ShiftService.ListByCashier(ctx, input.RegisterCode, input.CashierCode)
	stopTimer()
	if err != nil {
		return nil, wire.Error(err, "failed to list shifts")
	}
	logData.AddData("shiftCount", len(shifts))

	resp := ListShiftsResponseBody{Shifts: make([]Shift, len(shifts))}
	for i := range shifts {
		resp.Shifts[i] = FromService(&shifts[i])
	}
	return &ListShiftsOutput{Body: resp}, nil
}
