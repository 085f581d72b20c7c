package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

type validResponse struct {
	Valid bool `json:"valid"`
}

// ShiftClient asks the shift manager whether a transaction may be admitted.
// A false answer with a nil error is an explicit rejection; a non-nil error
// means the shift manager could not be asked.
type ShiftClient struct {
	peer *peer
}

func NewShiftClient(opts Options, logger *logrus.Logger) *ShiftClient {
	return &ShiftClient{peer: newPeer("shifts", opts, logger)}
}

func (c *ShiftClient) IsRegisterValid(ctx context.Context, registerCode string) (bool, error) {
	return c.valid(ctx, "/v1/validations/register/"+url.PathEscape(registerCode))
}

func (c *ShiftClient) IsCashierValid(ctx context.Context, cashierCode string) (bool, error) {
	return c.valid(ctx, "/v1/validations/cashier/"+url.PathEscape(cashierCode))
}

func (c *ShiftClient) IsCashierAuthorizedOnRegister(ctx context.Context, registerCode, cashierCode string) (bool, error) {
	return c.valid(ctx, "/v1/validations/register/"+url.PathEscape(registerCode)+
		"/cashier/"+url.PathEscape(cashierCode))
}

// IsShiftOpen is true only on a 200 answer; 404 and 409 mean unknown and not open.
func (c *ShiftClient) IsShiftOpen(ctx context.Context, shiftCode string) (bool, error) {
	resp, err := c.peer.get(ctx, "/v1/validations/shift/"+url.PathEscape(shiftCode))
	if err != nil {
		return false, err
	}
	return resp.status == http.StatusOK, nil
}

func (c *ShiftClient) valid(ctx context.Context, path string) (bool, error) {
	resp, err := c.peer.get(ctx, path)
	if err != nil {
		return false, err
	}
	if resp.status != http.StatusOK {
		return false, nil
	}

	var body validResponse
	if err := decode(resp, &body); err != nil {
		return false, err
	}
	return body.Valid, nil
}
