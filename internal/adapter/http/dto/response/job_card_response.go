package response

import (
	"time"

	"jobcard_service/internal/domain/entities"
)

// Amounts are rendered as rupee floats for display; the stored paise values
// remain the source of truth.

type PartLineResponse struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	UnitCost  float64 `json:"unit_cost"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"line_total"`
}

type PaymentResponse struct {
	Mode        string  `json:"mode"`
	UPIAmount   float64 `json:"upi_amount"`
	UPIAccount  string  `json:"upi_account,omitempty"`
	CashAmount  float64 `json:"cash_amount"`
	CollectedBy string  `json:"collected_by,omitempty"`
}

type JobCardResponse struct {
	ID                  string             `json:"id"`
	TicketNo            string             `json:"ticket_no"`
	VehicleRegistration string             `json:"vehicle_registration"`
	CustomerName        string             `json:"customer_name"`
	Phone               string             `json:"phone"`
	Showroom            string             `json:"showroom,omitempty"`
	RaisedBy            string             `json:"raised_by,omitempty"`
	AssignedServiceman  string             `json:"assigned_serviceman,omitempty"`
	Problem             string             `json:"problem"`
	Parts               []PartLineResponse `json:"parts"`
	LaborCharge         float64            `json:"labor_charge"`
	PartsCharge         float64            `json:"parts_charge"`
	TotalCharge         float64            `json:"total_charge"`
	Status              string             `json:"status"`
	Payment             *PaymentResponse   `json:"payment,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	ClosingTime         *time.Time         `json:"closing_time,omitempty"`
	Version             int64              `json:"version"`
}

func FromJobCard(j entities.JobCard) JobCardResponse {
	parts := make([]PartLineResponse, 0, len(j.Parts))
	for _, line := range j.Parts {
		parts = append(parts, PartLineResponse{
			SKU:       line.SKU,
			Name:      line.Name,
			UnitCost:  line.UnitCost.Rupees(),
			Qty:       line.Qty,
			LineTotal: (line.UnitCost * entities.Money(line.Qty)).Rupees(),
		})
	}

	resp := JobCardResponse{
		ID:                  j.ID,
		TicketNo:            j.TicketNo,
		VehicleRegistration: j.VehicleRegistration,
		CustomerName:        j.CustomerName,
		Phone:               j.Phone,
		Showroom:            j.Showroom,
		RaisedBy:            j.RaisedBy,
		AssignedServiceman:  j.AssignedServiceman,
		Problem:             j.Problem,
		Parts:               parts,
		LaborCharge:         j.LaborCharge.Rupees(),
		PartsCharge:         j.PartsCharge.Rupees(),
		TotalCharge:         j.TotalCharge.Rupees(),
		Status:              string(j.Status),
		CreatedAt:           j.CreatedAt,
		ClosingTime:         j.ClosingTime,
		Version:             j.Version,
	}
	if j.Payment != nil {
		resp.Payment = &PaymentResponse{
			Mode:        string(j.Payment.Mode),
			UPIAmount:   j.Payment.UPIAmount.Rupees(),
			UPIAccount:  j.Payment.UPIAccount,
			CashAmount:  j.Payment.CashAmount.Rupees(),
			CollectedBy: j.Payment.CollectedBy,
		}
	}
	return resp
}

func FromJobCards(jobs []entities.JobCard) []JobCardResponse {
	out := make([]JobCardResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJobCard(j))
	}
	return out
}
