package main

import (
	server_config "github.com/carson-networks/cashier-shifts/internal/config"
	"github.com/carson-networks/cashier-shifts/internal/logging"
	"github.com/carson-networks/cashier-shifts/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	stores := []struct {
		service string
		pg      server_config.PostgresConfig
	}{
		{service: server_config.ServiceShifts, pg: env.ShiftsPostgres},
		{service: server_config.ServiceTransactions, pg: env.TransactionsPostgres},
	}

	for _, s := range stores {
		if !env.Runs(s.service) {
			continue
		}

		db, err := storage.Open(s.pg)
		if err != nil {
			logger.WithError(err).WithField("store", s.service).Fatal("storage.Open")
			return
		}

		err = storage.Migrate(db, s.service, "file://migrations/"+s.service, logger)
		_ = db.Close()
		if err != nil {
			logger.WithError(err).WithField("store", s.service).Fatal("storage.Migrate")
			return
		}
	}

	logger.Info("migrations complete")
}
