package interfaces

import (
	"context"
	"errors"

	"jobcard_service/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored version no longer
// matches the caller's expected version. The caller must reload and retry;
// no partial write has happened.
var ErrVersionConflict = errors.New("job card version conflict")

// JobCardFilter narrows List results. Zero values mean "no constraint".
type JobCardFilter struct {
	Status entities.JobStatus
	// Query is matched case-insensitively against customer name, vehicle
	// registration, phone and ticket number.
	Query string
}

// IJobCardRepository abstracts DynamoDB persistence for JobCard.
//
// The jobcard-service must be able to:
//   - create a job card at intake (id must not already exist)
//   - load a job card by id (strongly consistent)
//   - save a mutated copy only when version == expectedVersion (CAS),
//     persisting it with version+1
//   - list job cards filtered by status / free text, newest first

type IJobCardRepository interface {
	Create(ctx context.Context, j entities.JobCard) (entities.JobCard, error)
	GetByID(ctx context.Context, id string) (entities.JobCard, error)
	Save(ctx context.Context, j entities.JobCard, expectedVersion int64) (entities.JobCard, error)
	List(ctx context.Context, filter JobCardFilter) ([]entities.JobCard, error)
}
