package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidPaymentSplit = errors.New("invalid payment split")

// ReconciliationTolerance is how far the collected amount may drift from the
// computed total before closure is refused: one rupee, the granularity the
// legacy float rounding could introduce.
const ReconciliationTolerance = entities.Money(100)

// ReconciliationError reports a payment split that does not sum to the job
// card's total charge. Diff is signed: positive means shortfall, negative
// means excess. The operator corrects the split and retries.
type ReconciliationError struct {
	Diff entities.Money
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("payment does not reconcile with total charge (diff %s)", e.Diff)
}

// IJobClosureUseCase is the only path by which a job card becomes CLOSED.
//
// CloseJob reloads the job card fresh, recomputes the total from the current
// ledger/labor state (a client-supplied total is never trusted), checks the
// split against it, and commits status/payment/closing_time in one
// version-conditioned write. A concurrent mutation between the reload and the
// commit surfaces as ErrVersionConflict, never as a closed job whose stored
// totals disagree with its payment.

type IJobClosureUseCase interface {
	CloseJob(ctx context.Context, id string, expectedVersion int64, split entities.Payment) (entities.JobCard, error)
}

type JobClosureUseCase struct {
	repo   interfaces.IJobCardRepository
	ledger interfaces.IPaymentLedgerSink
}

var _ IJobClosureUseCase = (*JobClosureUseCase)(nil)

func NewJobClosureUseCase(repo interfaces.IJobCardRepository, ledger interfaces.IPaymentLedgerSink) *JobClosureUseCase {
	return &JobClosureUseCase{repo: repo, ledger: ledger}
}

func (u *JobClosureUseCase) CloseJob(ctx context.Context, id string, expectedVersion int64, split entities.Payment) (entities.JobCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	if err := validateSplit(split); err != nil {
		return entities.JobCard{}, err
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if j.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	if j.Closed() {
		// Re-closing never silently succeeds or re-reconciles.
		return entities.JobCard{}, ErrJobCardClosed
	}

	total := entities.ComputeTotalCharge(j)
	diff := total - split.Collected()
	if diff.Abs() > ReconciliationTolerance {
		log.Printf("[closure][usecase] reconciliation mismatch id=%s ticket_no=%s total=%s collected=%s diff=%s",
			j.ID, j.TicketNo, total, split.Collected(), diff)
		return entities.JobCard{}, &ReconciliationError{Diff: diff}
	}

	now := time.Now().UTC()
	j.Status = entities.JobStatusClosed
	j.Payment = &split
	j.ClosingTime = &now
	j.Recalculate()

	closed, err := u.repo.Save(ctx, j, expectedVersion)
	if err != nil {
		return entities.JobCard{}, err
	}
	log.Printf("[closure][usecase] closed id=%s ticket_no=%s total=%s mode=%s collected_by=%s",
		closed.ID, closed.TicketNo, closed.TotalCharge, split.Mode, split.CollectedBy)

	// Downstream propagation is the ledger's concern; the reconciled record
	// already lives on the job card.
	if u.ledger != nil {
		entry := interfaces.PaymentLedgerEntry{
			ID:          uuid.NewString(),
			TicketNo:    closed.TicketNo,
			TotalCharge: closed.TotalCharge,
			Payment:     split,
			ClosedAt:    now,
		}
		if err := u.ledger.Record(ctx, entry); err != nil {
			log.Printf("[closure][usecase] payment ledger record failed ticket_no=%s err=%v", closed.TicketNo, err)
		}
	}

	return closed, nil
}

func validateSplit(split entities.Payment) error {
	switch split.Mode {
	case entities.PaymentModeCash, entities.PaymentModeUPI, entities.PaymentModeSplit:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidPaymentSplit, split.Mode)
	}
	if split.UPIAmount < 0 || split.CashAmount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidPaymentSplit)
	}
	return nil
}
