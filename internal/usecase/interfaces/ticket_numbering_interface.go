package interfaces

import "context"

// ITicketNumberAllocator abstracts the external ticket numbering collaborator.
//
// Called exactly once per job card creation; the returned human-facing number
// must be unique. Allocation failure aborts the creation with nothing
// persisted.
type ITicketNumberAllocator interface {
	AllocateTicketNumber(ctx context.Context) (string, error)
}
