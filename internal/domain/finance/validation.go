package finance

import (
	"fmt"
	"strings"
	"time"

	"aventura_tours/internal/domain/entities"
)

// Validators accumulate every rule violation into a list of human-readable
// messages instead of failing on the first one, so callers can report a
// complete picture back to the operator.

// ValidateForCreation checks an installment about to be created. The
// installment must not already carry an id; status, when supplied, must be a
// known token.
func ValidateForCreation(cfg Config, inst *entities.PaymentInstallment, today time.Time) []string {
	if inst == nil {
		return []string{"installment is required"}
	}
	var violations []string
	if inst.ID != "" {
		violations = append(violations, "installment must not already have an id")
	}
	violations = append(violations, validateFields(cfg, inst, today)...)
	return violations
}

// ValidateForUpdate checks an installment about to be updated. It must carry
// an id; field rules are the same as on creation.
func ValidateForUpdate(cfg Config, inst *entities.PaymentInstallment, today time.Time) []string {
	if inst == nil {
		return []string{"installment is required"}
	}
	var violations []string
	if inst.ID == "" {
		violations = append(violations, "installment id is required")
	}
	violations = append(violations, validateFields(cfg, inst, today)...)
	return violations
}

// ValidateForDeletion checks an installment about to be deleted. PAID rows
// are financial records and must be retained.
func ValidateForDeletion(inst *entities.PaymentInstallment) []string {
	if inst == nil {
		return []string{"installment is required"}
	}
	var violations []string
	if inst.ID == "" {
		violations = append(violations, "installment id is required")
	}
	if inst.Status == entities.InstallmentStatusPaid {
		violations = append(violations, "paid installments cannot be deleted")
	}
	return violations
}

// ValidatePolicyForCreation checks a cancellation policy about to be created.
// The >75% refund rule is a soft validation enforced here, not a persisted
// constraint.
func ValidatePolicyForCreation(p *entities.CancellationPolicy) []string {
	if p == nil {
		return []string{"cancellation policy is required"}
	}
	var violations []string
	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, "policy name is required")
	}
	if p.RefundPercentage < 0 || p.RefundPercentage > 100 {
		violations = append(violations, "refund percentage must be between 0 and 100")
	}
	if p.DaysBeforeTour < 0 {
		violations = append(violations, "days before tour must not be negative")
	}
	if p.RefundPercentage > 75 && p.DaysBeforeTour < 7 {
		violations = append(violations, "policies refunding more than 75% require at least 7 days notice")
	}
	return violations
}

func validateFields(cfg Config, inst *entities.PaymentInstallment, today time.Time) []string {
	var violations []string
	if !isValidAmount(cfg, inst) {
		violations = append(violations, fmt.Sprintf("amount must be at least %s", cfg.MinimumAmount.StringFixed(2)))
	}
	if !isValidDueDate(inst, today) {
		violations = append(violations, "due date must be today or later")
	}
	if inst.Status != "" {
		if _, err := entities.ParseInstallmentStatus(string(inst.Status)); err != nil {
			violations = append(violations, fmt.Sprintf("status %q is not a valid token", inst.Status))
		}
	}
	if strings.TrimSpace(inst.ReservationID) == "" {
		violations = append(violations, "reservation id is required")
	}
	return violations
}

func isValidAmount(cfg Config, inst *entities.PaymentInstallment) bool {
	return inst.Amount.GreaterThanOrEqual(cfg.MinimumAmount)
}

func isValidDueDate(inst *entities.PaymentInstallment, today time.Time) bool {
	if inst.DueDate == nil {
		return false
	}
	return !truncateToDay(*inst.DueDate).Before(truncateToDay(today))
}
