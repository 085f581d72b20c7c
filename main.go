package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/cashier-shifts/api"
	"github.com/carson-networks/cashier-shifts/internal/client"
	"github.com/carson-networks/cashier-shifts/internal/config"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/operator"
	"github.com/carson-networks/cashier-shifts/internal/service"
	"github.com/carson-networks/cashier-shifts/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("cashier-shifts starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logging.SetLevel(logger, envConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var servers []*api.Rest
	var cleanups []func()
	defer func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	if envConfig.Runs(config.ServiceShifts) {
		rest, cleanup, err := buildShiftManager(envConfig, logger)
		if err != nil {
			logger.WithError(err).Error("main.buildShiftManager")
			return
		}
		servers = append(servers, rest)
		cleanups = append(cleanups, cleanup)
	}
	if envConfig.Runs(config.ServiceTransactions) {
		rest, cleanup, err := buildTransactionRecorder(envConfig, logger)
		if err != nil {
			logger.WithError(err).Error("main.buildTransactionRecorder")
			return
		}
		servers = append(servers, rest)
		cleanups = append(cleanups, cleanup)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, rest := range servers {
		g.Go(func() error {
			return rest.Serve(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("main.serve")
		return
	}
	logger.Info("cashier-shifts stopped")
}

func buildShiftManager(cfg *config.Config, logger *logrus.Logger) (*api.Rest, func(), error) {
	db, err := storage.Open(cfg.ShiftsPostgres)
	if err != nil {
		return nil, nil, err
	}
	store := storage.NewStorage(db)

	op := operator.NewOperatorDelegator(store, cfg.OperatorWorkers)
	op.Start()

	ledger := client.NewLedgerClient(client.Options{
		BaseURL: cfg.TransactionServiceURL,
		Timeout: cfg.RemoteTimeout,
	}, logger)
	manager := service.NewShiftManager(store, op, ledger)

	rest := &api.Rest{
		Logger:   logger,
		Service:  config.ServiceShifts,
		Port:     cfg.ShiftsPort,
		Handlers: api.ShiftManagerHandlers(manager),
	}
	return rest, closeAll(logger, op, store), nil
}

func buildTransactionRecorder(cfg *config.Config, logger *logrus.Logger) (*api.Rest, func(), error) {
	db, err := storage.Open(cfg.TransactionsPostgres)
	if err != nil {
		return nil, nil, err
	}
	store := storage.NewStorage(db)

	op := operator.NewOperatorDelegator(store, cfg.OperatorWorkers)
	op.Start()

	authority := client.NewShiftClient(client.Options{
		BaseURL: cfg.ShiftServiceURL,
		Timeout: cfg.RemoteTimeout,
	}, logger)
	recorder := service.NewTransactionRecorder(store, op, authority)

	rest := &api.Rest{
		Logger:   logger,
		Service:  config.ServiceTransactions,
		Port:     cfg.TransactionsPort,
		Handlers: api.TransactionRecorderHandlers(recorder),
	}
	return rest, closeAll(logger, op, store), nil
}

// closeAll drains the operator before the pool it writes through goes away.
func closeAll(logger *logrus.Logger, op *operator.OperatorDelegator, store *storage.Storage) func() {
	return func() {
		op.Stop()
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("main.closeAll.storage close failed")
		}
	}
}
