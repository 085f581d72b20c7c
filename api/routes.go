package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/shift"
	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/status"
	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/transaction"
	"github.com/carson-networks/cashier-shifts/internal/handlers/v1/validation"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Registrar adds its operations to a huma API.
type Registrar interface {
	Register(api huma.API)
}

// Rest is the HTTP server of one service.
type Rest struct {
	Logger   *logrus.Logger
	Service  string
	Port     string
	Handlers []Registrar
}

// ShiftManagerHandlers lists the operations the shift manager serves.
func ShiftManagerHandlers(manager *service.ShiftManager) []Registrar {
	return []Registrar{
		shift.NewOpenShiftHandler(manager.Shift),
		shift.NewCloseShiftHandler(manager.Shift),
		shift.NewGetShiftHandler(manager.Shift),
		shift.NewListShiftsHandler(manager.Shift),
		validation.NewHandler(manager.Validation),
	}
}

// TransactionRecorderHandlers lists the operations the transaction recorder serves.
func TransactionRecorderHandlers(recorder *service.TransactionRecorder) []Registrar {
	return []Registrar{
		transaction.NewRecordTransactionHandler(recorder.Transaction),
		transaction.NewGetTransactionHandler(recorder.Transaction),
		transaction.NewListTransactionsHandler(recorder.Transaction),
	}
}

// Handler builds the mux: /status as a plain handler and every registered
// operation behind the logging middleware.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Service)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("cashier "+r.Service, "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))
	for _, h := range r.Handlers {
		h.Register(api)
	}

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
	logger := r.Logger.WithField("service", r.Service)

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
