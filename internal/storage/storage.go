package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashier-shifts/internal/config"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
)

// Storage is one service's store. Reads go straight to the pool; writes go
// through Write so they share a single database transaction.
type Storage struct {
	DB           *sql.DB
	Shifts       sqlconfig.IShiftTable
	Transactions sqlconfig.ITransactionTable

	bobDB bob.DB
}

// Open connects to the database described by pg.
func Open(pg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", pg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return db, nil
}

func NewStorage(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           db,
		Shifts:       sqlconfig.NewShiftsTable(bobDB),
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		bobDB:        bobDB,
	}
}

// Write begins a transaction and returns a Writer whose tables are bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}

	return NewWriter(tx, sqlconfig.NewShiftsTable(tx), sqlconfig.NewTransactionsTable(tx)), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
