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

var (
	ErrJobCardNotFound     = errors.New("job card not found")
	ErrJobCardClosed       = errors.New("job card is closed")
	ErrInvalidJobCardID    = errors.New("invalid job card id")
	ErrInvalidIntake       = errors.New("missing required intake field")
	ErrInvalidSKU          = errors.New("invalid sku")
	ErrInvalidPartQty      = errors.New("invalid part quantity")
	ErrNegativeLaborCharge = errors.New("labor charge cannot be negative")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)

// JobCardIntake is the domain command opening a new job card.
type JobCardIntake struct {
	VehicleRegistration string
	CustomerName        string
	Phone               string
	Problem             string
	Showroom            string
	RaisedBy            string
	AssignedServiceman  string
}

// JobCardDetails carries the identifying/contextual fields an operator may
// edit while the job card is OPEN. Nil means "leave unchanged".
type JobCardDetails struct {
	VehicleRegistration *string
	CustomerName        *string
	Phone               *string
	Problem             *string
	Showroom            *string
	RaisedBy            *string
	AssignedServiceman  *string
}

// IJobCardUseCase exposes job card intake and in-flight mutations.
//
// Every mutating operation takes the caller's expectedVersion; the repository
// performs a compare-and-swap against the stored version, so two terminals
// holding the same ticket cannot overwrite each other.

type IJobCardUseCase interface {
	CreateJob(ctx context.Context, intake JobCardIntake) (entities.JobCard, error)
	GetJob(ctx context.Context, id string) (entities.JobCard, error)
	ListJobs(ctx context.Context, filter interfaces.JobCardFilter) ([]entities.JobCard, error)
	AddPart(ctx context.Context, id string, expectedVersion int64, sku string, qty int) (entities.JobCard, error)
	RemovePart(ctx context.Context, id string, expectedVersion int64, sku string) (entities.JobCard, error)
	SetLaborCharge(ctx context.Context, id string, expectedVersion int64, amount entities.Money) (entities.JobCard, error)
	UpdateDetails(ctx context.Context, id string, expectedVersion int64, details JobCardDetails) (entities.JobCard, error)
}

type JobCardUseCase struct {
	repo    interfaces.IJobCardRepository
	tickets interfaces.ITicketNumberAllocator
	catalog interfaces.IInventoryCatalog
}

var _ IJobCardUseCase = (*JobCardUseCase)(nil)

func NewJobCardUseCase(repo interfaces.IJobCardRepository, tickets interfaces.ITicketNumberAllocator, catalog interfaces.IInventoryCatalog) *JobCardUseCase {
	return &JobCardUseCase{repo: repo, tickets: tickets, catalog: catalog}
}

func (u *JobCardUseCase) CreateJob(ctx context.Context, intake JobCardIntake) (entities.JobCard, error) {
	intake.VehicleRegistration = strings.TrimSpace(intake.VehicleRegistration)
	intake.CustomerName = strings.TrimSpace(intake.CustomerName)
	intake.Phone = strings.TrimSpace(intake.Phone)
	intake.Problem = strings.TrimSpace(intake.Problem)

	for _, f := range []struct {
		name  string
		value string
	}{
		{"vehicle_registration", intake.VehicleRegistration},
		{"customer_name", intake.CustomerName},
		{"phone", intake.Phone},
		{"problem", intake.Problem},
	} {
		if f.value == "" {
			return entities.JobCard{}, fmt.Errorf("%w: %s", ErrInvalidIntake, f.name)
		}
	}

	// Ticket allocation happens before anything is persisted; if the
	// numbering collaborator fails, the intake fails with no partial record.
	ticketNo, err := u.tickets.AllocateTicketNumber(ctx)
	if err != nil {
		log.Printf("[jobcard][usecase] ticket allocation failed err=%v", err)
		return entities.JobCard{}, err
	}

	j := entities.JobCard{
		ID:                  uuid.NewString(),
		TicketNo:            ticketNo,
		VehicleRegistration: intake.VehicleRegistration,
		CustomerName:        intake.CustomerName,
		Phone:               intake.Phone,
		Showroom:            strings.TrimSpace(intake.Showroom),
		RaisedBy:            strings.TrimSpace(intake.RaisedBy),
		AssignedServiceman:  strings.TrimSpace(intake.AssignedServiceman),
		Problem:             intake.Problem,
		Parts:               []entities.PartLine{},
		Status:              entities.JobStatusOpen,
		CreatedAt:           time.Now().UTC(),
		Version:             1,
	}
	j.Recalculate()

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.JobCard{}, err
	}
	log.Printf("[jobcard][usecase] created id=%s ticket_no=%s", created.ID, created.TicketNo)
	return created, nil
}

func (u *JobCardUseCase) GetJob(ctx context.Context, id string) (entities.JobCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if j.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	return j, nil
}

func (u *JobCardUseCase) ListJobs(ctx context.Context, filter interfaces.JobCardFilter) ([]entities.JobCard, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return u.repo.List(ctx, filter)
}

func (u *JobCardUseCase) AddPart(ctx context.Context, id string, expectedVersion int64, sku string, qty int) (entities.JobCard, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return entities.JobCard{}, ErrInvalidSKU
	}
	if qty <= 0 {
		return entities.JobCard{}, ErrInvalidPartQty
	}

	j, err := u.loadOpen(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}

	item, err := u.catalog.LookupItem(ctx, sku)
	if err != nil {
		log.Printf("[jobcard][usecase] catalog lookup failed sku=%s err=%v", sku, err)
		return entities.JobCard{}, err
	}
	if item.SKU == "" {
		return entities.JobCard{}, ErrCatalogItemNotFound
	}

	j.AddPart(item, qty)
	j.Recalculate()
	return u.repo.Save(ctx, j, expectedVersion)
}

func (u *JobCardUseCase) RemovePart(ctx context.Context, id string, expectedVersion int64, sku string) (entities.JobCard, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return entities.JobCard{}, ErrInvalidSKU
	}

	j, err := u.loadOpen(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}

	// Removing an absent SKU is a no-op: no write, version unchanged.
	if !j.RemovePart(sku) {
		return j, nil
	}
	j.Recalculate()
	return u.repo.Save(ctx, j, expectedVersion)
}

func (u *JobCardUseCase) SetLaborCharge(ctx context.Context, id string, expectedVersion int64, amount entities.Money) (entities.JobCard, error) {
	if amount < 0 {
		return entities.JobCard{}, ErrNegativeLaborCharge
	}

	j, err := u.loadOpen(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}

	j.LaborCharge = amount
	j.Recalculate()
	return u.repo.Save(ctx, j, expectedVersion)
}

func (u *JobCardUseCase) UpdateDetails(ctx context.Context, id string, expectedVersion int64, details JobCardDetails) (entities.JobCard, error) {
	j, err := u.loadOpen(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}

	// Required intake fields may be edited but never blanked.
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"vehicle_registration", details.VehicleRegistration},
		{"customer_name", details.CustomerName},
		{"phone", details.Phone},
		{"problem", details.Problem},
	} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return entities.JobCard{}, fmt.Errorf("%w: %s", ErrInvalidIntake, f.name)
		}
	}

	applyDetail(&j.VehicleRegistration, details.VehicleRegistration)
	applyDetail(&j.CustomerName, details.CustomerName)
	applyDetail(&j.Phone, details.Phone)
	applyDetail(&j.Problem, details.Problem)
	applyDetail(&j.Showroom, details.Showroom)
	applyDetail(&j.RaisedBy, details.RaisedBy)
	applyDetail(&j.AssignedServiceman, details.AssignedServiceman)

	j.Recalculate()
	return u.repo.Save(ctx, j, expectedVersion)
}

func (u *JobCardUseCase) loadOpen(ctx context.Context, id string) (entities.JobCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if j.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	if j.Closed() {
		return entities.JobCard{}, ErrJobCardClosed
	}
	return j, nil
}

func applyDetail(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
