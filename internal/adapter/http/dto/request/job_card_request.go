package request

import (
	"strings"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase"
)

// Monetary amounts arrive as rupee floats and are converted to paise once,
// via entities.MoneyFromRupees, before they reach the use cases.

// JobCardIntakeRequest opens a new job card.
type JobCardIntakeRequest struct {
	VehicleRegistration string `json:"vehicle_registration" binding:"required"`
	CustomerName        string `json:"customer_name" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	Problem             string `json:"problem" binding:"required"`
	Showroom            string `json:"showroom"`
	RaisedBy            string `json:"raised_by"`
	AssignedServiceman  string `json:"assigned_serviceman"`
}

func (r JobCardIntakeRequest) ToIntake() usecase.JobCardIntake {
	return usecase.JobCardIntake{
		VehicleRegistration: r.VehicleRegistration,
		CustomerName:        r.CustomerName,
		Phone:               r.Phone,
		Problem:             r.Problem,
		Showroom:            r.Showroom,
		RaisedBy:            r.RaisedBy,
		AssignedServiceman:  r.AssignedServiceman,
	}
}

// AddPartRequest puts a catalog part on the job card's ledger.
type AddPartRequest struct {
	ExpectedVersion int64  `json:"expected_version"`
	SKU             string `json:"sku" binding:"required"`
	Qty             int    `json:"qty"`
}

// ResolveQty defaults an omitted qty to 1; a negative or explicit zero value
// is passed through for the use case to reject.
func (r AddPartRequest) ResolveQty() int {
	if r.Qty == 0 {
		return 1
	}
	return r.Qty
}

// SetLaborChargeRequest replaces the labor charge.
type SetLaborChargeRequest struct {
	ExpectedVersion int64   `json:"expected_version"`
	Amount          float64 `json:"amount"`
}

func (r SetLaborChargeRequest) ResolveAmount() entities.Money {
	return entities.MoneyFromRupees(r.Amount)
}

// UpdateDetailsRequest edits the identifying/contextual fields of an OPEN job
// card. Omitted fields stay unchanged.
type UpdateDetailsRequest struct {
	ExpectedVersion     int64   `json:"expected_version"`
	VehicleRegistration *string `json:"vehicle_registration"`
	CustomerName        *string `json:"customer_name"`
	Phone               *string `json:"phone"`
	Problem             *string `json:"problem"`
	Showroom            *string `json:"showroom"`
	RaisedBy            *string `json:"raised_by"`
	AssignedServiceman  *string `json:"assigned_serviceman"`
}

func (r UpdateDetailsRequest) ToDetails() usecase.JobCardDetails {
	return usecase.JobCardDetails{
		VehicleRegistration: r.VehicleRegistration,
		CustomerName:        r.CustomerName,
		Phone:               r.Phone,
		Problem:             r.Problem,
		Showroom:            r.Showroom,
		RaisedBy:            r.RaisedBy,
		AssignedServiceman:  r.AssignedServiceman,
	}
}

// CloseJobCardRequest carries the payment split proposed at the counter.
type CloseJobCardRequest struct {
	ExpectedVersion int64   `json:"expected_version"`
	Mode            string  `json:"mode" binding:"required"`
	UPIAmount       float64 `json:"upi_amount"`
	UPIAccount      string  `json:"upi_account"`
	CashAmount      float64 `json:"cash_amount"`
	CollectedBy     string  `json:"collected_by"`
}

func (r CloseJobCardRequest) ToPayment() entities.Payment {
	return entities.Payment{
		Mode:        entities.PaymentMode(strings.ToLower(strings.TrimSpace(r.Mode))),
		UPIAmount:   entities.MoneyFromRupees(r.UPIAmount),
		UPIAccount:  strings.TrimSpace(r.UPIAccount),
		CashAmount:  entities.MoneyFromRupees(r.CashAmount),
		CollectedBy: strings.TrimSpace(r.CollectedBy),
	}
}
