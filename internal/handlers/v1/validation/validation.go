package validation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/shift"
	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/wire"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

// validator is the shift manager side of transaction admission.
type validator interface {
	IsShiftOpen(ctx context.Context, shiftCode string) (*service.Shift, bool, error)
	IsRegisterValid(registerCode string) bool
	IsCashierValid(cashierCode string) bool
	IsCashierAuthorizedOnRegister(registerCode, cashierCode string) bool
}

type ValidBody struct {
	Valid bool `json:"valid" doc:"Always true; a rejection is answered with an error status"`
}

type ValidOutput struct {
	Body ValidBody
}

type ShiftValidBody struct {
	Valid bool        `json:"valid" doc:"Always true; a shift that is not open is answered with 409"`
	Shift shift.Shift `json:"shift" doc:"The open shift"`
}

type ShiftValidOutput struct {
	Body ShiftValidBody
}

type ShiftInput struct {
	ShiftCode string `path:"shiftCode" doc:"Shift code"`
}

type RegisterInput struct {
	RegisterCode string `path:"registerCode" doc:"Register code"`
}

type CashierInput struct {
	CashierCode string `path:"cashierCode" doc:"Cashier code"`
}

type AuthorizationInput struct {
	RegisterCode string `path:"registerCode" doc:"Register code"`
	CashierCode  string `path:"cashierCode" doc:"Cashier code"`
}

// Handler serves the validation endpoints the transaction recorder calls
// before admitting a transaction.
type Handler struct {
	ValidationService validator
}

func NewHandler(svc validator) *Handler {
	return &Handler{ValidationService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-shift",
		Method:      http.MethodGet,
		Path:        "/v1/validations/shift/{shiftCode}",
		Summary:     "Validate shift",
		Description: "Answers 200 with the shift when it is open, 409 when it exists but is not open and 404 when it does not exist.",
		Tags:        []string{"Validations"},
	}, h.shift)

	huma.Register(api, huma.Operation{
		OperationID: "validate-register",
		Method:      http.MethodGet,
		Path:        "/v1/validations/register/{registerCode}",
		Summary:     "Validate register",
		Tags:        []string{"Validations"},
	}, h.register)

	huma.Register(api, huma.Operation{
		OperationID: "validate-cashier",
		Method:      http.MethodGet,
		Path:        "/v1/validations/cashier/{cashierCode}",
		Summary:     "Validate cashier",
		Tags:        []string{"Validations"},
	}, h.cashier)

	huma.Register(api, huma.Operation{
		OperationID: "validate-cashier-on-register",
		Method:      http.MethodGet,
		Path:        "/v1/validations/register/{registerCode}/cashier/{cashierCode}",
		Summary:     "Validate cashier authorization on register",
		Tags:        []string{"Validations"},
	}, h.authorization)
}

func (h *Handler) shift(ctx context.Context, input *ShiftInput) (*ShiftValidOutput, error) {
	found, open, err := h.ValidationService.IsShiftOpen(ctx, input.ShiftCode)
	if err != nil {
		return nil, wire.Error(err, "failed to validate shift")
	}
	if !open {
		logging.GetLogData(ctx).AddData("shiftStatus", string(found.Status))
		return nil, huma.NewError(http.StatusConflict, "shift "+input.ShiftCode+" is not open")
	}
	return &ShiftValidOutput{Body: ShiftValidBody{Valid: true, Shift: shift.FromService(found)}}, nil
}

func (h *Handler) register(_ context.Context, input *RegisterInput) (*ValidOutput, error) {
	if !h.ValidationService.IsRegisterValid(input.RegisterCode) {
		return nil, huma.NewError(http.StatusBadRequest, "register "+input.RegisterCode+" is not valid")
	}
	return &ValidOutput{Body: ValidBody{Valid: true}}, nil
}

func (h *Handler) cashier(_ context.Context, input *CashierInput) (*ValidOutput, error) {
	if !h.ValidationService.IsCashierValid(input.CashierCode) {
		return nil, huma.NewError(http.StatusBadRequest, "cashier "+input.CashierCode+" is not valid")
	}
	return &ValidOutput{Body: ValidBody{Valid: true}}, nil
}

func (h *Handler) authorization(_ context.Context, input *AuthorizationInput) (*ValidOutput, error) {
	if !h.ValidationService.IsCashierAuthorizedOnRegister(input.RegisterCode, input.CashierCode) {
		return nil, huma.NewError(http.StatusBadRequest,
			"cashier "+input.CashierCode+" is not authorized on register "+input.RegisterCode)
	}
	return &ValidOutput{Body: ValidBody{Valid: true}}, nil
}
