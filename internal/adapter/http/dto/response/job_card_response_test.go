package response

import (
	"testing"
	"time"

	"jobcard_service/internal/domain/entities"
)

func TestFromJobCard(t *testing.T) {
	closedAt := time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC)
	j := entities.JobCard{
		ID:                  "job-1",
		TicketNo:            "JC-00042",
		VehicleRegistration: "KA-01-AB-1234",
		CustomerName:        "Asha Rao",
		Phone:               "9876543210",
		Problem:             "engine noise at idle",
		Parts: []entities.PartLine{
			{SKU: "BRK-01", Name: "Brake Pad", UnitCost: 20000, Qty: 2},
		},
		LaborCharge: 50000,
		PartsCharge: 40000,
		TotalCharge: 90000,
		Status:      entities.JobStatusClosed,
		Payment: &entities.Payment{
			Mode:       entities.PaymentModeSplit,
			UPIAmount:  60000,
			CashAmount: 30000,
		},
		CreatedAt:   closedAt.Add(-2 * time.Hour),
		ClosingTime: &closedAt,
		Version:     6,
	}

	resp := FromJobCard(j)

	if resp.TicketNo != "JC-00042" || resp.Status != "CLOSED" || resp.Version != 6 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.LaborCharge != 500 || resp.PartsCharge != 400 || resp.TotalCharge != 900 {
		t.Fatalf("paise not rendered as rupees: %+v", resp)
	}
	if len(resp.Parts) != 1 {
		t.Fatalf("expected 1 part line, got %d", len(resp.Parts))
	}
	line := resp.Parts[0]
	if line.UnitCost != 200 || line.LineTotal != 400 {
		t.Fatalf("unexpected line amounts: %+v", line)
	}
	if resp.Payment == nil || resp.Payment.Mode != "split" || resp.Payment.UPIAmount != 600 || resp.Payment.CashAmount != 300 {
		t.Fatalf("unexpected payment: %+v", resp.Payment)
	}
	if resp.ClosingTime == nil || !resp.ClosingTime.Equal(closedAt) {
		t.Fatalf("closing time not carried over")
	}
}

func TestFromJobCard_OpenJob(t *testing.T) {
	j := entities.JobCard{
		ID:       "job-2",
		TicketNo: "JC-00043",
		Status:   entities.JobStatusOpen,
		Parts:    []entities.PartLine{},
		Version:  1,
	}

	resp := FromJobCard(j)
	if resp.Payment != nil || resp.ClosingTime != nil {
		t.Fatalf("open job must not carry payment or closing time: %+v", resp)
	}
	if resp.Parts == nil || len(resp.Parts) != 0 {
		t.Fatalf("parts must render as an empty array, got %+v", resp.Parts)
	}
}

func TestFromJobCards(t *testing.T) {
	out := FromJobCards(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("nil input must render an empty array")
	}

	out = FromJobCards([]entities.JobCard{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected mapping: %+v", out)
	}
}
