package entities

import "time"

// JobStatus represents the lifecycle of a job card.
//
// Domain notes:
//   - The jobcard-service is the source of truth for job card state.
//   - CLOSED is terminal; a closed job card is immutable and kept for history.

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// PaymentMode is how the collected amount was split at the counter.

type PaymentMode string

const (
	PaymentModeCash  PaymentMode = "cash"
	PaymentModeUPI   PaymentMode = "upi"
	PaymentModeSplit PaymentMode = "split"
)

// PartLine is one consumed inventory item on a job card.
//
// Name and UnitCost are snapshotted from the catalog at the moment the part
// is added; later catalog price changes do not alter already-billed lines.
type PartLine struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	UnitCost Money  `json:"unit_cost"`
	Qty      int    `json:"qty"`
}

// Payment is the split collected when a job card closes.
type Payment struct {
	Mode        PaymentMode `json:"mode"`
	UPIAmount   Money       `json:"upi_amount"`
	UPIAccount  string      `json:"upi_account,omitempty"`
	CashAmount  Money       `json:"cash_amount"`
	CollectedBy string      `json:"collected_by"`
}

// Collected is the total amount the operator reports having taken.
func (p Payment) Collected() Money {
	return p.UPIAmount + p.CashAmount
}

// CatalogItem is the read model served by the inventory catalog collaborator.
// AvailableQty is informational only; this service never mutates stock.
type CatalogItem struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	UnitCost     Money  `json:"unit_cost"`
	AvailableQty int    `json:"available_qty"`
}

// JobCard is the service work order aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version drives conditional writes (optimistic concurrency)
//
// Monetary representation:
//   - PartsCharge/TotalCharge are derived by Recalculate and persisted
//     redundantly for fast reads; they are never set independently.
//
type JobCard struct {
	ID                  string     `json:"id"`
	TicketNo            string     `json:"ticket_no"`
	VehicleRegistration string     `json:"vehicle_registration"`
	CustomerName        string     `json:"customer_name"`
	Phone               string     `json:"phone"`
	Showroom            string     `json:"showroom"`
	RaisedBy            string     `json:"raised_by"`
	AssignedServiceman  string     `json:"assigned_serviceman"`
	Problem             string     `json:"problem"`
	Parts               []PartLine `json:"parts"`
	LaborCharge         Money      `json:"labor_charge"`
	PartsCharge         Money      `json:"parts_charge"`
	TotalCharge         Money      `json:"total_charge"`
	Status              JobStatus  `json:"status"`
	Payment             *Payment   `json:"payment,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	ClosingTime         *time.Time `json:"closing_time,omitempty"`
	Version             int64      `json:"version"`
}

// Closed reports whether the job card reached its terminal state.
func (j *JobCard) Closed() bool {
	return j.Status == JobStatusClosed
}

// AddPart merges the catalog item into the parts ledger: an existing SKU gets
// its qty incremented, a new SKU is appended with name/unit_cost frozen from
// the item. The caller validates qty > 0 and commits via the repository.
func (j *JobCard) AddPart(item CatalogItem, qty int) {
	for i := range j.Parts {
		if j.Parts[i].SKU == item.SKU {
			j.Parts[i].Qty += qty
			return
		}
	}
	j.Parts = append(j.Parts, PartLine{
		SKU:      item.SKU,
		Name:     item.Name,
		UnitCost: item.UnitCost,
		Qty:      qty,
	})
}

// RemovePart deletes the whole line for sku. It reports whether a line was
// removed; an absent SKU is a no-op, not an error.
func (j *JobCard) RemovePart(sku string) bool {
	for i := range j.Parts {
		if j.Parts[i].SKU == sku {
			j.Parts = append(j.Parts[:i], j.Parts[i+1:]...)
			return true
		}
	}
	return false
}
