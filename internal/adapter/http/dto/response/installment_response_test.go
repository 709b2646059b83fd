package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"aventura_tours/internal/domain/entities"
)

func TestFromInstallment(t *testing.T) {
	now := time.Now().UTC()
	due := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	inst := entities.PaymentInstallment{
		ID:            "inst-1",
		ReservationID: "res-1",
		Amount:        decimal.RequireFromString("150.5"),
		DueDate:       &due,
		PaymentID:     "mp-9",
		Status:        entities.InstallmentStatusPaid,
		ReminderSent:  true,
		CreatedAt:     now,
	}

	res := FromInstallment(inst)
	if res.ID != "inst-1" || res.ReservationID != "res-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != "150.50" {
		t.Fatalf("amount must render at two decimals, got %s", res.Amount)
	}
	if res.DueDate != "2026-03-15" {
		t.Fatalf("unexpected due date: %s", res.DueDate)
	}
	if res.Status != "PAID" || res.PaymentID != "mp-9" || !res.ReminderSent {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromInstallment_NoDueDate(t *testing.T) {
	inst := entities.PaymentInstallment{
		ID:     "inst-2",
		Amount: decimal.RequireFromString("80.00"),
		Status: entities.InstallmentStatusPending,
	}
	res := FromInstallment(inst)
	if res.DueDate != "" {
		t.Fatalf("expected empty due date, got %s", res.DueDate)
	}
}
