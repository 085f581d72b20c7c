package actions

import (
	"context"

	"github.com/carson-networks/cashier-shifts/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single storage
// transaction: returning an error rolls everything back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
