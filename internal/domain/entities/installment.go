package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is the lifecycle state of a payment installment.
//
// Domain notes:
//   - The billing-service is the source of truth for installment state.
//   - The allowed transitions are enforced by the finance package; handlers and
//     repositories never write a status that did not come through it.
//   - External input (JSON, query params) arrives as free-form strings and must
//     go through ParseInstallmentStatus; the raw string is never stored.

type InstallmentStatus string

const (
	InstallmentStatusPending   InstallmentStatus = "PENDING"
	InstallmentStatusPaid      InstallmentStatus = "PAID"
	InstallmentStatusOverdue   InstallmentStatus = "OVERDUE"
	InstallmentStatusCancelled InstallmentStatus = "CANCELLED"
)

// ParseInstallmentStatus converts an external status token into the closed
// enum. Matching is case-insensitive; anything outside the four known tokens
// is rejected.
func ParseInstallmentStatus(raw string) (InstallmentStatus, error) {
	switch InstallmentStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case InstallmentStatusPending:
		return InstallmentStatusPending, nil
	case InstallmentStatusPaid:
		return InstallmentStatusPaid, nil
	case InstallmentStatusOverdue:
		return InstallmentStatusOverdue, nil
	case InstallmentStatusCancelled:
		return InstallmentStatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown installment status %q", raw)
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s InstallmentStatus) IsTerminal() bool {
	return s == InstallmentStatusPaid || s == InstallmentStatusCancelled
}

// PaymentInstallment is one scheduled partial payment against a reservation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reservation_id-index): reservation_id
//
// Monetary representation:
//   - Amount uses shopspring/decimal and is persisted as a string to keep the
//     2-decimal scale exact. Never float64.
//
// ReminderSent only moves false -> true; the reminder job never resets it.

type PaymentInstallment struct {
	ID            string            `json:"id"`
	ReservationID string            `json:"reservation_id"`
	Amount        decimal.Decimal   `json:"amount"`
	DueDate       *time.Time        `json:"due_date"`
	PaymentID     string            `json:"payment_id,omitempty"`
	Status        InstallmentStatus `json:"status"`
	ReminderSent  bool              `json:"reminder_sent"`
	CreatedAt     time.Time         `json:"created_at"`
}
