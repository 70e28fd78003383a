package request

import (
	"testing"

	"jobcard_service/internal/domain/entities"
)

func TestAddPartRequest_ResolveQty(t *testing.T) {
	if got := (AddPartRequest{SKU: "BRK-01"}).ResolveQty(); got != 1 {
		t.Fatalf("omitted qty should default to 1, got %d", got)
	}
	if got := (AddPartRequest{SKU: "BRK-01", Qty: 3}).ResolveQty(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := (AddPartRequest{SKU: "BRK-01", Qty: -2}).ResolveQty(); got != -2 {
		t.Fatalf("negative qty must pass through for rejection, got %d", got)
	}
}

func TestSetLaborChargeRequest_ResolveAmount(t *testing.T) {
	r := SetLaborChargeRequest{ExpectedVersion: 2, Amount: 499.99}
	if got := r.ResolveAmount(); got != entities.Money(49999) {
		t.Fatalf("expected 49999 paise, got %d", got)
	}
}

func TestCloseJobCardRequest_ToPayment(t *testing.T) {
	r := CloseJobCardRequest{
		ExpectedVersion: 5,
		Mode:            "  UPI ",
		UPIAmount:       899.5,
		UPIAccount:      " showroom@upi ",
		CashAmount:      0.5,
		CollectedBy:     " cashier-1 ",
	}

	p := r.ToPayment()
	if p.Mode != entities.PaymentModeUPI {
		t.Fatalf("mode should be normalized, got %q", p.Mode)
	}
	if p.UPIAmount != entities.Money(89950) || p.CashAmount != entities.Money(50) {
		t.Fatalf("unexpected amounts: upi=%d cash=%d", p.UPIAmount, p.CashAmount)
	}
	if p.UPIAccount != "showroom@upi" || p.CollectedBy != "cashier-1" {
		t.Fatalf("unexpected trimmed fields: %+v", p)
	}
}

func TestUpdateDetailsRequest_ToDetails(t *testing.T) {
	name := "Asha Rao"
	r := UpdateDetailsRequest{ExpectedVersion: 3, CustomerName: &name}

	d := r.ToDetails()
	if d.CustomerName == nil || *d.CustomerName != "Asha Rao" {
		t.Fatalf("expected customer name carried over, got %+v", d)
	}
	if d.Phone != nil || d.Problem != nil || d.VehicleRegistration != nil {
		t.Fatalf("omitted fields must stay nil: %+v", d)
	}
}
