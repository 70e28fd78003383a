package usecase

import (
	"context"
	"errors"
	"testing"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"
	mock_interfaces "jobcard_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// billableJob builds the reference scenario: labor 500.00, one part at
// 200.00 x2, so parts_charge=400.00 and total_charge=900.00.
func billableJob() entities.JobCard {
	j := entities.JobCard{
		ID:                  "job-1",
		TicketNo:            "JC-00042",
		VehicleRegistration: "KA-01-AB-1234",
		CustomerName:        "Asha Rao",
		Phone:               "9876543210",
		Problem:             "engine noise at idle",
		Status:              entities.JobStatusOpen,
		LaborCharge:         entities.MoneyFromRupees(500),
		Version:             5,
	}
	j.AddPart(entities.CatalogItem{SKU: "BRK-01", Name: "Brake Pad", UnitCost: entities.MoneyFromRupees(200)}, 2)
	j.Recalculate()
	return j
}

func upiSplit(upi, cash float64) entities.Payment {
	mode := entities.PaymentModeUPI
	if cash > 0 && upi > 0 {
		mode = entities.PaymentModeSplit
	} else if cash > 0 {
		mode = entities.PaymentModeCash
	}
	return entities.Payment{
		Mode:        mode,
		UPIAmount:   entities.MoneyFromRupees(upi),
		UPIAccount:  "showroom@upi",
		CashAmount:  entities.MoneyFromRupees(cash),
		CollectedBy: "cashier-1",
	}
}

func TestJobClosureUseCase_CloseJob(t *testing.T) {
	t.Run("exact split closes the job card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		ledger := mock_interfaces.NewMockIPaymentLedgerSink(ctrl)
		uc := NewJobClosureUseCase(repo, ledger)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billableJob(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{}), int64(5)).DoAndReturn(
			func(_ context.Context, j entities.JobCard, expectedVersion int64) (entities.JobCard, error) {
				if j.Status != entities.JobStatusClosed {
					t.Fatalf("expected CLOSED, got %s", j.Status)
				}
				if j.Payment == nil || j.Payment.UPIAmount != entities.MoneyFromRupees(900) {
					t.Fatalf("payment not recorded: %+v", j.Payment)
				}
				if j.ClosingTime == nil || j.ClosingTime.IsZero() {
					t.Fatalf("closing_time not set")
				}
				if j.TotalCharge != entities.MoneyFromRupees(900) {
					t.Fatalf("stored total disagrees: %d", j.TotalCharge)
				}
				j.Version = expectedVersion + 1
				return j, nil
			},
		)
		ledger.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(interfaces.PaymentLedgerEntry{})).DoAndReturn(
			func(_ context.Context, entry interfaces.PaymentLedgerEntry) error {
				if entry.TicketNo != "JC-00042" || entry.TotalCharge != entities.MoneyFromRupees(900) {
					t.Fatalf("unexpected ledger entry: %+v", entry)
				}
				return nil
			},
		)

		closed, err := uc.CloseJob(context.Background(), "job-1", 5, upiSplit(900, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed.Version != 6 {
			t.Fatalf("expected version 6, got %d", closed.Version)
		}
	})

	t.Run("short split fails with signed diff and no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobClosureUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billableJob(), nil)
		// No Save expectation: status must remain OPEN.

		_, err := uc.CloseJob(context.Background(), "job-1", 5, upiSplit(500, 300))
		var recErr *ReconciliationError
		if !errors.As(err, &recErr) {
			t.Fatalf("expected ReconciliationError, got %v", err)
		}
		if recErr.Diff != entities.MoneyFromRupees(100) {
			t.Fatalf("expected shortfall of 100.00, got %s", recErr.Diff)
		}
	})

	t.Run("excess split reports negative diff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobClosureUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billableJob(), nil)

		_, err := uc.CloseJob(context.Background(), "job-1", 5, upiSplit(0, 950))
		var recErr *ReconciliationError
		if !errors.As(err, &recErr) {
			t.Fatalf("expected ReconciliationError, got %v", err)
		}
		if recErr.Diff != entities.MoneyFromRupees(-50) {
			t.Fatalf("expected excess of 50.00, got %s", recErr.Diff)
		}
	})

	t.Run("drift within one rupee is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobClosureUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billableJob(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(5)).DoAndReturn(
			func(_ context.Context, j entities.JobCard, expectedVersion int64) (entities.JobCard, error) {
				j.Version = expectedVersion + 1
				return j, nil
			},
		)

		if _, err := uc.CloseJob(context.Background(), "job-1", 5, upiSplit(899.5, 0)); err != nil {
			t.Fatalf("50 paise drift should reconcile, got %v", err)
		}
	})

	t.Run("double close fails invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobClosureUseCase(repo, nil)

		closed := billableJob()
		closed.Status = entities.JobStatusClosed
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(closed, nil)

		_, err := uc.CloseJob(context.Background(), "job-1", 6, upiSplit(900, 0))
		if !errors.Is(err, ErrJobCardClosed) {
			t.Fatalf("expected ErrJobCardClosed, got %v", err)
		}
	})

	t.Run("unknown job card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobClosureUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.JobCard{}, nil)

		_, err := uc.CloseJob(context.Background(), "missing", 1, upiSplit(900, 0))
		if !errors.Is(err, ErrJobCardNotFound) {
			t.Fatalf("expected ErrJobCardNotFound, got %v", err)
		}
	})

	t.Run("invalid split", func(t *testing.T) {
		uc := NewJobClosureUseCase(nil, nil)

		_, err := uc.CloseJob(context.Background(), "job-1", 5, entities.Payment{Mode: "card", UPIAmount: 0, CashAmount: 90000})
		if !errors.Is(err, ErrInvalidPaymentSplit) {
			t.Fatalf("expected ErrInvalidPaymentSplit for unknown mode, got %v", err)
		}

		_, err = uc.CloseJob(context.Background(), "job-1", 5, entities.Payment{Mode: entities.PaymentModeCash, CashAmount: -100})
		if !errors.Is(err, ErrInvalidPaymentSplit) {
			t.Fatalf("expected ErrInvalidPaymentSplit for negative amount, got %v", err)
		}
	})

	t.Run("concurrent mutation surfaces version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobClosureUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billableJob(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(4)).Return(entities.JobCard{}, interfaces.ErrVersionConflict)

		_, err := uc.CloseJob(context.Background(), "job-1", 4, upiSplit(900, 0))
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("ledger sink failure does not undo the close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		ledger := mock_interfaces.NewMockIPaymentLedgerSink(ctrl)
		uc := NewJobClosureUseCase(repo, ledger)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billableJob(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(5)).DoAndReturn(
			func(_ context.Context, j entities.JobCard, expectedVersion int64) (entities.JobCard, error) {
				j.Version = expectedVersion + 1
				return j, nil
			},
		)
		ledger.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("ledger down"))

		closed, err := uc.CloseJob(context.Background(), "job-1", 5, upiSplit(900, 0))
		if err != nil {
			t.Fatalf("sink failure must not fail the close: %v", err)
		}
		if closed.Status != entities.JobStatusClosed {
			t.Fatalf("expected CLOSED, got %s", closed.Status)
		}
	})
}
