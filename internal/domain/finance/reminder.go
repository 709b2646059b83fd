package finance

import (
	"time"

	"aventura_tours/internal/domain/entities"
)

// ShouldSendReminder decides whether a payment reminder is due for the
// installment as of today. The window opens ReminderLeadDays before the due
// date, boundary inclusive, and stays open until the reminder is sent.
//
// The function never mutates the installment; the caller flips ReminderSent
// after a successful dispatch.
func ShouldSendReminder(cfg Config, inst *entities.PaymentInstallment, today time.Time) bool {
	if inst == nil || inst.ReminderSent || inst.DueDate == nil {
		return false
	}
	reminderDate := truncateToDay(*inst.DueDate).AddDate(0, 0, -cfg.ReminderLeadDays)
	return !truncateToDay(today).Before(reminderDate)
}
