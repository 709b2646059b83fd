package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"aventura_tours/internal/domain/entities"
)

// IReminderNotifier abstracts the notification transport used by the reminder
// job (SMTP in production, a log-only implementation locally). Delivery
// details stay outside the core; the job only needs a yes/no outcome so it
// knows whether to flag the installment as reminded.
type IReminderNotifier interface {
	SendDueReminder(ctx context.Context, inst entities.PaymentInstallment, totalDue decimal.Decimal) error
}
