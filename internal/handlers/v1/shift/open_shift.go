package shift

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

// OpenShiftBody is the request body for opening a shift.
type OpenShiftBody struct {
	RegisterCode  string                  `json:"registerCode" doc:"Register code, CAJ01"`
	CashierCode   string                  `json:"cashierCode" doc:"Cashier code, USU01"`
	OpeningAmount string                  `json:"openingAmount" doc:"Decimal opening amount"`
	Denominations []wire.DenominationLine `json:"denominations" doc:"Opening cash breakdown"`
}

type OpenShiftInput struct {
	Body OpenShiftBody
}

type OpenShiftOutput struct {
	Body Shift
}

type shiftOpener interface {
	Open(ctx context.Context, req service.OpenShiftRequest) (*service.Shift, error)
}

// OpenShiftHandler handles POST /v1/shifts/open.
type OpenShiftHandler struct {
	ShiftService shiftOpener
}

func NewOpenShiftHandler(svc shiftOpener) *OpenShiftHandler {
	return &OpenShiftHandler{ShiftService: svc}
}

func (h *OpenShiftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "open-shift",
		Method:        http.MethodPost,
		Path:          "/v1/shifts/open",
		Summary:       "Open shift",
		Description:   "Opens today's shift for a register and cashier with a counted opening cash drawer.",
		Tags:          []string{"Shifts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseOpenShiftInput(input *OpenShiftInput) (service.OpenShiftRequest, error) {
	amount, err := wire.ParseAmount("openingAmount", input.Body.OpeningAmount)
	if err != nil {
		return service.OpenShiftRequest{}, err
	}
	lines, err := wire.ParseLines(input.Body.Denominations)
	if err != nil {
		return service.OpenShiftRequest{}, err
	}
	return service.OpenShiftRequest{
		RegisterCode:  input.Body.RegisterCode,
		CashierCode:   input.Body.CashierCode,
		OpeningAmount: amount,
		Lines:         lines,
	}, nil
}

func (h *OpenShiftHandler) handle(ctx context.Context, input *OpenShiftInput) (*OpenShiftOutput, error) {
	req, err := parseOpenShiftInput(input)
	if err != nil {
		return nil, err
	}

	shift, err := h.ShiftService.Open(ctx, req)
	if err != nil {
		return nil, wire.Error(err, "failed to open shift")
	}

	return &OpenShiftOutput{Body: FromService(shift)}, nil
}
