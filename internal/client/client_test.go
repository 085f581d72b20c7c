package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func newShiftManager(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/validations/register/{code}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("code") == "CAJ01" {
			_, _ = io.WriteString(w, `{"valid":true}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	})
	mux.HandleFunc("GET /v1/validations/cashier/{code}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"valid":true}`)
	})
	mux.HandleFunc("GET /v1/validations/register/{register}/cashier/{cashier}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"valid":false}`)
	})
	mux.HandleFunc("GET /v1/validations/shift/{code}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("code") {
		case "CAJ01-USU01-20250109":
			_, _ = io.WriteString(w, `{"valid":true}`)
		case "CAJ01-USU01-20250108":
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestShiftClient_Answers(t *testing.T) {
	srv := newShiftManager(t)
	c := NewShiftClient(Options{BaseURL: srv.URL}, quietLogger())
	ctx := context.Background()

	ok, err := c.IsRegisterValid(ctx, "CAJ01")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsRegisterValid(ctx, "CAJ1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.IsCashierValid(ctx, "USU01")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsCashierAuthorizedOnRegister(ctx, "CAJ01", "USU01")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.IsShiftOpen(ctx, "CAJ01-USU01-20250109")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsShiftOpen(ctx, "CAJ01-USU01-20250108")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.IsShiftOpen(ctx, "CAJ09-USU09-20250109")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShiftClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewShiftClient(Options{BaseURL: srv.URL}, quietLogger())

	ok, err := c.IsShiftOpen(context.Background(), "CAJ01-USU01-20250109")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestShiftClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	c := NewShiftClient(Options{BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, quietLogger())

	ok, err := c.IsRegisterValid(context.Background(), "CAJ01")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestShiftClient_BreakerOpensOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NewShiftClient(Options{BaseURL: srv.URL, MaxFailures: 2, OpenTimeout: time.Minute}, quietLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.IsShiftOpen(ctx, "CAJ01-USU01-20250109")
		assert.ErrorIs(t, err, errServer)
	}

	ok, err := c.IsShiftOpen(ctx, "CAJ01-USU01-20250109")
	assert.False(t, ok)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestShiftClient_RejectionsDoNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	t.Cleanup(srv.Close)
	c := NewShiftClient(Options{BaseURL: srv.URL, MaxFailures: 1}, quietLogger())

	for i := 0; i < 5; i++ {
		ok, err := c.IsShiftOpen(context.Background(), "CAJ01-USU01-20250109")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestLedgerClient_FindByShift(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transactions/shift/CAJ01-USU01-20250109", r.URL.Path)
		_, _ = io.WriteString(w, `{"transactions":[
			{"transactionCode":"TXNAAAA0001","kind":"DEPOSITO","amount":"200.00"},
			{"transactionCode":"TXNAAAA0002","kind":"RETIRO","amount":"50.00"}
		]}`)
	}))
	t.Cleanup(srv.Close)
	c := NewLedgerClient(Options{BaseURL: srv.URL}, quietLogger())

	movements, err := c.FindByShift(context.Background(), "CAJ01-USU01-20250109")

	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, cash.KindDeposito, movements[0].Kind)
	assert.Equal(t, "200", movements[0].Amount.String())
	assert.Equal(t, cash.KindRetiro, movements[1].Kind)
}

func TestLedgerClient_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"bad status": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		},
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		"bad body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `not json`)
		},
		"unknown kind": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"transactions":[{"transactionCode":"TXNAAAA0001","kind":"TRANSFER","amount":"1"}]}`)
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			t.Cleanup(srv.Close)
			c := NewLedgerClient(Options{BaseURL: srv.URL}, quietLogger())

			_, err := c.FindByShift(context.Background(), "CAJ01-USU01-20250109")

			assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
		})
	}
}
