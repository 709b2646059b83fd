package finance

import (
	"errors"
	"testing"

	"aventura_tours/internal/domain/entities"
)

func TestTransition(t *testing.T) {
	valid := []struct {
		from entities.InstallmentStatus
		to   string
	}{
		{entities.InstallmentStatusPending, "PAID"},
		{entities.InstallmentStatusPending, "OVERDUE"},
		{entities.InstallmentStatusPending, "CANCELLED"},
		{entities.InstallmentStatusOverdue, "PAID"},
		{entities.InstallmentStatusOverdue, "CANCELLED"},
	}
	for _, tc := range valid {
		t.Run(string(tc.from)+" to "+tc.to, func(t *testing.T) {
			inst := &entities.PaymentInstallment{Status: tc.from}
			if err := Transition(inst, tc.to); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(inst.Status) != tc.to {
				t.Fatalf("expected status %s, got %s", tc.to, inst.Status)
			}
		})
	}

	illegal := []struct {
		from entities.InstallmentStatus
		to   string
	}{
		{entities.InstallmentStatusPaid, "PENDING"},
		{entities.InstallmentStatusPaid, "OVERDUE"},
		{entities.InstallmentStatusPaid, "CANCELLED"},
		{entities.InstallmentStatusCancelled, "PAID"},
		{entities.InstallmentStatusCancelled, "PENDING"},
		{entities.InstallmentStatusOverdue, "PENDING"},
		{entities.InstallmentStatusOverdue, "OVERDUE"},
		{entities.InstallmentStatusPending, "PENDING"},
	}
	for _, tc := range illegal {
		t.Run(string(tc.from)+" to "+tc.to+" rejected", func(t *testing.T) {
			inst := &entities.PaymentInstallment{Status: tc.from}
			err := Transition(inst, tc.to)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("expected ErrIllegalTransition, got %v", err)
			}
			if inst.Status != tc.from {
				t.Fatalf("status must not change on rejection, got %s", inst.Status)
			}
		})
	}

	t.Run("case-insensitive token", func(t *testing.T) {
		inst := &entities.PaymentInstallment{Status: entities.InstallmentStatusPending}
		if err := Transition(inst, "paid"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inst.Status != entities.InstallmentStatusPaid {
			t.Fatalf("expected PAID, got %s", inst.Status)
		}
	})

	t.Run("unknown proposed token", func(t *testing.T) {
		inst := &entities.PaymentInstallment{Status: entities.InstallmentStatusPending}
		if err := Transition(inst, "REFUNDED"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown current token", func(t *testing.T) {
		inst := &entities.PaymentInstallment{Status: "LIMBO"}
		if err := Transition(inst, "PAID"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("nil installment", func(t *testing.T) {
		err := Transition(nil, "PAID")
		if err == nil {
			t.Fatal("expected an error for a nil installment")
		}
		if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("nil installment must not report a status error, got %v", err)
		}
	})
}

func TestTerminalGuards(t *testing.T) {
	cases := []struct {
		status entities.InstallmentStatus
		open   bool
	}{
		{entities.InstallmentStatusPending, true},
		{entities.InstallmentStatusOverdue, true},
		{entities.InstallmentStatusPaid, false},
		{entities.InstallmentStatusCancelled, false},
	}
	for _, tc := range cases {
		inst := &entities.PaymentInstallment{Status: tc.status}
		if got := CanBeMarkedAsPaid(inst); got != tc.open {
			t.Fatalf("CanBeMarkedAsPaid(%s) = %v, want %v", tc.status, got, tc.open)
		}
		if got := CanBeCancelled(inst); got != tc.open {
			t.Fatalf("CanBeCancelled(%s) = %v, want %v", tc.status, got, tc.open)
		}
	}

	if CanBeMarkedAsPaid(nil) || CanBeCancelled(nil) {
		t.Fatalf("nil installment must not be mutable")
	}
}
