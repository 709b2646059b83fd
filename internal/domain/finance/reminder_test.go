package finance

import (
	"testing"
	"time"

	"aventura_tours/internal/domain/entities"
)

func TestShouldSendReminder(t *testing.T) {
	cfg := DefaultConfig()
	due := datePtr(2024, time.May, 10)

	t.Run("before the window", func(t *testing.T) {
		inst := &entities.PaymentInstallment{DueDate: due}
		if ShouldSendReminder(cfg, inst, date(2024, time.May, 6)) {
			t.Fatalf("reminder must not fire before due date minus lead")
		}
	})

	t.Run("window boundary is inclusive", func(t *testing.T) {
		inst := &entities.PaymentInstallment{DueDate: due}
		if !ShouldSendReminder(cfg, inst, date(2024, time.May, 7)) {
			t.Fatalf("reminder must fire exactly on due date minus lead")
		}
	})

	t.Run("on the due date", func(t *testing.T) {
		inst := &entities.PaymentInstallment{DueDate: due}
		if !ShouldSendReminder(cfg, inst, date(2024, time.May, 10)) {
			t.Fatalf("reminder must fire on the due date")
		}
	})

	t.Run("past the due date", func(t *testing.T) {
		inst := &entities.PaymentInstallment{DueDate: due}
		if !ShouldSendReminder(cfg, inst, date(2024, time.May, 20)) {
			t.Fatalf("reminder must keep firing until sent")
		}
	})

	t.Run("already sent", func(t *testing.T) {
		inst := &entities.PaymentInstallment{DueDate: due, ReminderSent: true}
		if ShouldSendReminder(cfg, inst, date(2024, time.May, 10)) {
			t.Fatalf("reminder must not fire twice")
		}
	})

	t.Run("no due date", func(t *testing.T) {
		inst := &entities.PaymentInstallment{}
		if ShouldSendReminder(cfg, inst, date(2024, time.May, 10)) {
			t.Fatalf("reminder must not fire without a due date")
		}
	})

	t.Run("nil installment", func(t *testing.T) {
		if ShouldSendReminder(cfg, nil, date(2024, time.May, 10)) {
			t.Fatalf("reminder must not fire for nil installment")
		}
	})
}
