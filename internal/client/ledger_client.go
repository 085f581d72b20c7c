package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
)

type ledgerTransaction struct {
	Code   string          `json:"transactionCode"`
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

type ledgerListResponse struct {
	Transactions []ledgerTransaction `json:"transactions"`
}

// LedgerClient reads a shift's transaction history from the transaction recorder.
type LedgerClient struct {
	peer *peer
}

func NewLedgerClient(opts Options, logger *logrus.Logger) *LedgerClient {
	return &LedgerClient{peer: newPeer("transactions", opts, logger)}
}

// FindByShift returns every movement recorded for the shift. Any failure is
// reported as apperr.ErrUpstreamUnavailable: a close must never run on a
// partial history.
func (c *LedgerClient) FindByShift(ctx context.Context, shiftCode string) ([]cash.Movement, error) {
	resp, err := c.peer.get(ctx, "/v1/transactions/shift/"+url.PathEscape(shiftCode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrUpstreamUnavailable, err)
	}
	if resp.status != http.StatusOK {
		return nil, apperr.UpstreamUnavailable("transaction history for %s answered %d", shiftCode, resp.status)
	}

	var body ledgerListResponse
	if err := decode(resp, &body); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrUpstreamUnavailable, err)
	}

	movements := make([]cash.Movement, 0, len(body.Transactions))
	for _, txn := range body.Transactions {
		kind, err := cash.ParseKind(txn.Kind)
		if err != nil {
			return nil, apperr.UpstreamUnavailable("transaction %s has unknown kind %q", txn.Code, txn.Kind)
		}
		movements = append(movements, cash.Movement{Kind: kind, Amount: txn.Amount})
	}
	return movements, nil
}
