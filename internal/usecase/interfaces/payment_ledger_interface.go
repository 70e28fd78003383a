package interfaces

import (
	"context"
	"time"

	"jobcard_service/internal/domain/entities"
)

// PaymentLedgerEntry is the record handed downstream once a job card closes.
type PaymentLedgerEntry struct {
	ID          string
	TicketNo    string
	TotalCharge entities.Money
	Payment     entities.Payment
	ClosedAt    time.Time
}

// IPaymentLedgerSink abstracts the downstream general payment ledger.
//
// Recording is best-effort from the closure engine's point of view: the
// reconciled payment already lives on the JobCard, which is the record of
// truth. A sink failure is logged, never surfaced as a closure failure.
type IPaymentLedgerSink interface {
	Record(ctx context.Context, entry PaymentLedgerEntry) error
}
