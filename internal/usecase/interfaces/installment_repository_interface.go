package interfaces

import (
	"context"
	"time"

	"aventura_tours/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB persistence for PaymentInstallment.
//
// The billing-service must be able to:
//   - create an installment when a reservation schedule is set up
//   - load one installment for the pay/cancel/total-due flows
//   - list a reservation's installments
//   - feed the batch jobs: open (non-terminal) rows, optionally filtered by
//     due date, with no ordering guarantee
type IInstallmentRepository interface {
	Create(ctx context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error)
	GetByID(ctx context.Context, id string) (entities.PaymentInstallment, error)
	ListByReservationID(ctx context.Context, reservationID string) ([]entities.PaymentInstallment, error)
	ListOpen(ctx context.Context) ([]entities.PaymentInstallment, error)
	ListOpenDueBefore(ctx context.Context, cutoff time.Time) ([]entities.PaymentInstallment, error)
	Update(ctx context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error)
	Delete(ctx context.Context, id string) error
}
