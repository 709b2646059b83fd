package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInstallmentNotFound  = errors.New("installment not found")
	ErrInvalidInstallmentID = errors.New("invalid installment id")
	ErrInvalidReservationID = errors.New("invalid reservation_id")
	ErrInstallmentClosed    = errors.New("installment is in a terminal state")

	ErrPolicyNotFound      = errors.New("cancellation policy not found")
	ErrInvalidPolicyID     = errors.New("invalid cancellation policy id")
	ErrPolicyAlreadyExists = errors.New("cancellation policy name already exists")

	ErrValidationFailed = errors.New("validation failed")

	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// ValidationError carries the full list of field-rule violations so the
// caller can report every problem at once. It matches ErrValidationFailed
// under errors.Is.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

func newValidationError(violations []string) error {
	return &ValidationError{Violations: violations}
}
