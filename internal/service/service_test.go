package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashier-shifts/internal/apperr"
	"github.com/carson-networks/cashier-shifts/internal/cash"
	"github.com/carson-networks/cashier-shifts/internal/operator/actions"
	"github.com/carson-networks/cashier-shifts/internal/storage"
	"github.com/carson-networks/cashier-shifts/internal/storage/sqlconfig"
	"github.com/carson-networks/cashier-shifts/internal/validation"
)

type recordingProcessor struct {
	calls int
	err   error
}

func (p *recordingProcessor) Process(context.Context, actions.IAction) error {
	p.calls++
	return p.err
}

type allowAll struct{}

func (allowAll) IsRegisterValid(context.Context, string) (bool, error) { return true, nil }
func (allowAll) IsCashierValid(context.Context, string) (bool, error)  { return true, nil }
func (allowAll) IsCashierAuthorizedOnRegister(context.Context, string, string) (bool, error) {
	return true, nil
}
func (allowAll) IsShiftOpen(context.Context, string) (bool, error) { return true, nil }

var fixedNow = func() time.Time { return time.Date(2025, 1, 9, 10, 0, 0, 0, time.UTC) }

func TestShiftService_Open_RejectsBeforeProcessing(t *testing.T) {
	tests := []struct {
		name string
		req  OpenShiftRequest
		want error
	}{
		{
			name: "bad register",
			req:  OpenShiftRequest{RegisterCode: "REG1", CashierCode: "USU01", OpeningAmount: decimal.NewFromInt(100), Lines: lines(100, 1)},
			want: apperr.ErrValidation,
		},
		{
			name: "bad cashier",
			req:  OpenShiftRequest{RegisterCode: "CAJ01", CashierCode: "", OpeningAmount: decimal.NewFromInt(100), Lines: lines(100, 1)},
			want: apperr.ErrValidation,
		},
		{
			name: "zero amount",
			req:  OpenShiftRequest{RegisterCode: "CAJ01", CashierCode: "USU01", OpeningAmount: decimal.Zero},
			want: apperr.ErrValidation,
		},
		{
			name: "lines do not add up",
			req:  OpenShiftRequest{RegisterCode: "CAJ01", CashierCode: "USU01", OpeningAmount: decimal.NewFromInt(150), Lines: lines(100, 1)},
			want: apperr.ErrAmountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &recordingProcessor{}
			svc := NewShiftService(&storage.Storage{}, proc, nil, fixedNow)

			_, err := svc.Open(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, proc.calls)
		})
	}
}

func TestShiftService_Open_UnclassifiedFailureIsCreationError(t *testing.T) {
	proc := &recordingProcessor{err: errors.New("connection reset")}
	svc := NewShiftService(&storage.Storage{}, proc, nil, fixedNow)

	_, err := svc.Open(context.Background(), OpenShiftRequest{
		RegisterCode:  "CAJ01",
		CashierCode:   "USU01",
		OpeningAmount: decimal.NewFromInt(100),
		Lines:         lines(100, 1),
	})

	assert.ErrorIs(t, err, apperr.ErrCreation)
	assert.Equal(t, 1, proc.calls)
}

func TestShiftService_Close_RejectsMalformedCode(t *testing.T) {
	proc := &recordingProcessor{}
	svc := NewShiftService(&storage.Storage{}, proc, nil, fixedNow)

	_, err := svc.Close(context.Background(), CloseShiftRequest{ShiftCode: "shift-1"})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, 0, proc.calls)
}

func TestShiftService_Get(t *testing.T) {
	closedAt := time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC)
	row := &sqlconfig.Shift{
		Code:                 "CAJ01-USU01-20250109",
		RegisterCode:         "CAJ01",
		CashierCode:          "USU01",
		Status:               sqlconfig.ShiftStatusClosed,
		OpeningAmount:        decimal.NewFromInt(500),
		OpeningDenominations: sqlconfig.Denominations{{BillValue: 100, Count: 5, Amount: decimal.NewFromInt(500)}},
		ClosedAt:             &closedAt,
		ClosingAmount:        decimal.NewNullDecimal(decimal.NewFromInt(500)),
		ClosingDenominations: sqlconfig.Denominations{{BillValue: 100, Count: 5, Amount: decimal.NewFromInt(500)}},
		Version:              2,
	}

	t.Run("found", func(t *testing.T) {
		shifts := sqlconfig.NewMockIShiftTable(t)
		shifts.EXPECT().FindByCode(mock.Anything, row.Code, false).Return(row, nil)
		svc := NewShiftService(&storage.Storage{Shifts: shifts}, nil, nil, fixedNow)

		got, err := svc.Get(context.Background(), row.Code)

		require.NoError(t, err)
		assert.Equal(t, ShiftStatusClosed, got.Status)
		require.NotNil(t, got.ClosingAmount)
		assert.True(t, got.ClosingAmount.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, []cash.DenominationLine{{BillValue: 100, Count: 5, Amount: decimal.NewFromInt(500)}}, got.ClosingLines)
		assert.Equal(t, 2, got.Version)
	})

	t.Run("missing", func(t *testing.T) {
		shifts := sqlconfig.NewMockIShiftTable(t)
		shifts.EXPECT().FindByCode(mock.Anything, row.Code, false).Return(nil, nil)
		svc := NewShiftService(&storage.Storage{Shifts: shifts}, nil, nil, fixedNow)

		_, err := svc.Get(context.Background(), row.Code)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		shifts := sqlconfig.NewMockIShiftTable(t)
		shifts.EXPECT().FindByCode(mock.Anything, row.Code, false).Return(nil, errors.New("boom"))
		svc := NewShiftService(&storage.Storage{Shifts: shifts}, nil, nil, fixedNow)

		_, err := svc.Get(context.Background(), row.Code)

		require.Error(t, err)
		assert.False(t, apperr.IsDomain(err))
	})
}

func TestShiftService_ListByCashier(t *testing.T) {
	shifts := sqlconfig.NewMockIShiftTable(t)
	shifts.EXPECT().ListByCashier(mock.Anything, "CAJ01", "USU01").Return([]*sqlconfig.Shift{
		{Code: "CAJ01-USU01-20250108", Status: sqlconfig.ShiftStatusClosed, Version: 2},
		{Code: "CAJ01-USU01-20250109", Status: sqlconfig.ShiftStatusOpen, Version: 1},
	}, nil)
	svc := NewShiftService(&storage.Storage{Shifts: shifts}, nil, nil, fixedNow)

	got, err := svc.ListByCashier(context.Background(), "CAJ01", "USU01")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ShiftStatusOpen, got[1].Status)
	assert.Nil(t, got[1].ClosingAmount)

	_, err = svc.ListByCashier(context.Background(), "CAJ1", "USU01")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestValidationService_IsShiftOpen(t *testing.T) {
	shifts := sqlconfig.NewMockIShiftTable(t)
	shifts.EXPECT().FindByCode(mock.Anything, "CAJ01-USU01-20250109", false).
		Return(&sqlconfig.Shift{Code: "CAJ01-USU01-20250109", Status: sqlconfig.ShiftStatusOpen}, nil)
	shifts.EXPECT().FindByCode(mock.Anything, "CAJ01-USU01-20250108", false).
		Return(&sqlconfig.Shift{Code: "CAJ01-USU01-20250108", Status: sqlconfig.ShiftStatusClosed}, nil)
	shifts.EXPECT().FindByCode(mock.Anything, "CAJ09-USU09-20250109", false).Return(nil, nil)
	svc := NewValidationService(&storage.Storage{Shifts: shifts})

	shift, open, err := svc.IsShiftOpen(context.Background(), "CAJ01-USU01-20250109")
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, "CAJ01-USU01-20250109", shift.Code)

	_, open, err = svc.IsShiftOpen(context.Background(), "CAJ01-USU01-20250108")
	require.NoError(t, err)
	assert.False(t, open)

	_, _, err = svc.IsShiftOpen(context.Background(), "CAJ09-USU09-20250109")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, _, err = svc.IsShiftOpen(context.Background(), "nope")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestValidationService_FormatChecks(t *testing.T) {
	svc := NewValidationService(&storage.Storage{})

	assert.True(t, svc.IsRegisterValid("CAJ01"))
	assert.False(t, svc.IsRegisterValid("CAJ1"))
	assert.True(t, svc.IsCashierValid("USU42"))
	assert.False(t, svc.IsCashierValid("usu42"))
	assert.True(t, svc.IsCashierAuthorizedOnRegister("CAJ01", "USU01"))
	assert.False(t, svc.IsCashierAuthorizedOnRegister("CAJ01", "USU"))
}

func TestTransactionService_Record_LocalChecksRunFirst(t *testing.T) {
	proc := &recordingProcessor{}
	svc := NewTransactionService(&storage.Storage{}, proc, validation.AdmissionPipeline(allowAll{}), fixedNow)

	_, err := svc.Record(context.Background(), RecordTransactionRequest{
		RegisterCode: "CAJ01",
		CashierCode:  "USU01",
		ShiftCode:    "CAJ01-USU01-20250109",
		Kind:         "PRESTAMO",
		Amount:       decimal.NewFromInt(10),
		Lines:        lines(10, 1),
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, 0, proc.calls)
}

func TestTransactionService_Record_CodeGenerationFailure(t *testing.T) {
	proc := &recordingProcessor{}
	svc := NewTransactionService(&storage.Storage{}, proc, validation.AdmissionPipeline(allowAll{}), fixedNow)
	svc.newCode = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := svc.Record(context.Background(), RecordTransactionRequest{
		RegisterCode: "CAJ01",
		CashierCode:  "USU01",
		ShiftCode:    "CAJ01-USU01-20250109",
		Kind:         "DEPOSITO",
		Amount:       decimal.NewFromInt(10),
		Lines:        lines(10, 1),
	})

	assert.ErrorIs(t, err, apperr.ErrCreation)
	assert.Equal(t, 0, proc.calls)
}

func TestTransactionService_Get(t *testing.T) {
	transactions := sqlconfig.NewMockITransactionTable(t)
	transactions.EXPECT().FindByCode(mock.Anything, "TXNAB12CD34").Return(&sqlconfig.Transaction{
		Code:      "TXNAB12CD34",
		ShiftCode: "CAJ01-USU01-20250109",
		Kind:      "RETIRO",
		Amount:    decimal.NewFromInt(50),
		Version:   1,
	}, nil)
	transactions.EXPECT().FindByCode(mock.Anything, "TXN00000000").Return(nil, nil)
	svc := NewTransactionService(&storage.Storage{Transactions: transactions}, nil, nil, fixedNow)

	got, err := svc.Get(context.Background(), "TXNAB12CD34")
	require.NoError(t, err)
	assert.Equal(t, cash.KindRetiro, got.Kind)
	assert.Empty(t, got.Lines)

	_, err = svc.Get(context.Background(), "TXN00000000")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Get(context.Background(), "TXN123")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestTransactionService_ListByShiftAndKind_Filter(t *testing.T) {
	transactions := sqlconfig.NewMockITransactionTable(t)
	transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		kind, ok := f.Kind.Get()
		return f.ShiftCode == "CAJ01-USU01-20250109" && ok && kind == "AHORRO"
	})).Return([]*sqlconfig.Transaction{{Code: "TXNAAAAAAAA", Kind: "AHORRO"}}, nil)
	svc := NewTransactionService(&storage.Storage{Transactions: transactions}, nil, nil, fixedNow)

	got, err := svc.ListByShiftAndKind(context.Background(), "CAJ01-USU01-20250109", " ahorro ")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, cash.KindAhorro, got[0].Kind)

	_, err = svc.ListByShiftAndKind(context.Background(), "CAJ01-USU01-20250109", "PRESTAMO")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
