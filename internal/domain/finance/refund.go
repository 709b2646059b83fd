package finance

import (
	"errors"

	"github.com/shopspring/decimal"

	"aventura_tours/internal/domain/entities"
)

var ErrNoEligiblePolicy = errors.New("no eligible cancellation policy")

// RecommendedPolicy selects the best cancellation policy for a customer whose
// trip is daysBeforeTrip days away. A policy is eligible when its minimum
// notice is satisfied (DaysBeforeTour <= daysBeforeTrip); among the eligible
// set the highest refund percentage wins, ties going to the
// first-encountered policy.
func RecommendedPolicy(policies []entities.CancellationPolicy, daysBeforeTrip int) (entities.CancellationPolicy, error) {
	var best entities.CancellationPolicy
	found := false
	for _, p := range policies {
		if p.DaysBeforeTour > daysBeforeTrip {
			continue
		}
		if !found || p.RefundPercentage > best.RefundPercentage {
			best = p
			found = true
		}
	}
	if !found {
		return entities.CancellationPolicy{}, ErrNoEligiblePolicy
	}
	return best, nil
}

// IsEligibleForRefund reports whether a cancellation with daysRemaining days
// of notice qualifies for a refund under the policy.
//
// Note the strict comparison: exactly the minimum notice does NOT qualify
// here, while RecommendedPolicy's filter accepts it. The asymmetry is
// intentional and preserved from the original rules.
func IsEligibleForRefund(p entities.CancellationPolicy, daysRemaining int) bool {
	return daysRemaining > p.DaysBeforeTour
}

// RefundAmount computes the refund for a cancellation. Ineligible
// cancellations refund nothing; eligible ones refund
// floor(totalAmount * RefundPercentage / 100), truncating rather than
// rounding.
func RefundAmount(p entities.CancellationPolicy, totalAmount decimal.Decimal, daysRemaining int) decimal.Decimal {
	if !IsEligibleForRefund(p, daysRemaining) {
		return decimal.Zero
	}
	return totalAmount.
		Mul(decimal.NewFromInt(int64(p.RefundPercentage))).
		Div(decimal.NewFromInt(100)).
		Floor()
}
