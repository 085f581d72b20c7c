package shift

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

type GetShiftInput struct {
	ShiftCode string `path:"shiftCode" doc:"Shift code"`
}

type GetShiftOutput struct {
	Body Shift
}

type shiftGetter interface {
	Get(ctx context.Context, shiftCode string) (*service.Shift, error)
}

// GetShiftHandler handles GET /v1/shifts/{shiftCode}.
type GetShiftHandler struct {
	ShiftService shiftGetter
}

func NewGetShiftHandler(svc shiftGetter) *GetShiftHandler {
	return &GetShiftHandler{ShiftService: svc}
}

func (h *GetShiftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-shift",
		Method:      http.MethodGet,
		Path:        "/v1/shifts/{shiftCode}",
		Summary:     "Get shift",
		Tags:        []string{"Shifts"},
	}, h.handle)
}

func (h *GetShiftHandler) handle(ctx context.Context, input *GetShiftInput) (*GetShiftOutput, error) {
	shift, err := h.ShiftService.Get(ctx, input.ShiftCode)
	if err != nil {
		return nil, wire.Error(err, "failed to get shift")
	}
	return &GetShiftOutput{Body: FromService(shift)}, nil
}
