package finance

import (
	"errors"
	"fmt"

	"aventura_tours/internal/domain/entities"
)

var (
	ErrInvalidStatus     = errors.New("invalid installment status")
	ErrIllegalTransition = errors.New("illegal installment status transition")
)

// allowedTransitions is the full transition table. PENDING is the initial
// state; PAID and CANCELLED are terminal. OVERDUE -> OVERDUE is deliberately
// absent: the overdue sweep must skip rows that are already OVERDUE instead
// of re-applying the transition.
var allowedTransitions = map[entities.InstallmentStatus][]entities.InstallmentStatus{
	entities.InstallmentStatusPending: {
		entities.InstallmentStatusPaid,
		entities.InstallmentStatusOverdue,
		entities.InstallmentStatusCancelled,
	},
	entities.InstallmentStatusOverdue: {
		entities.InstallmentStatusPaid,
		entities.InstallmentStatusCancelled,
	},
	entities.InstallmentStatusPaid:      {},
	entities.InstallmentStatusCancelled: {},
}

// Transition validates and applies a status change. Both the current and the
// proposed status must parse as known tokens; the pair must appear in the
// transition table. On success only Status changes; due-date recomputation and
// persistence are the caller's concern.
func Transition(inst *entities.PaymentInstallment, proposed string) error {
	if inst == nil {
		return errors.New("nil installment")
	}
	current, err := entities.ParseInstallmentStatus(string(inst.Status))
	if err != nil {
		return fmt.Errorf("%w: current %q", ErrInvalidStatus, inst.Status)
	}
	next, err := entities.ParseInstallmentStatus(proposed)
	if err != nil {
		return fmt.Errorf("%w: proposed %q", ErrInvalidStatus, proposed)
	}

	for _, allowed := range allowedTransitions[current] {
		if allowed == next {
			inst.Status = next
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, next)
}

// CanBeMarkedAsPaid reports whether the installment still accepts a payment.
// Terminal states (PAID, CANCELLED) reject further mutation.
func CanBeMarkedAsPaid(inst *entities.PaymentInstallment) bool {
	return inst != nil && !inst.Status.IsTerminal()
}

// CanBeCancelled reports whether the installment can still be cancelled.
func CanBeCancelled(inst *entities.PaymentInstallment) bool {
	return inst != nil && !inst.Status.IsTerminal()
}
