package response

import (
	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/usecase"
)

type CancellationPolicyResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	RefundPercentage int    `json:"refund_percentage"`
	DaysBeforeTour   int    `json:"days_before_tour"`
}

func FromCancellationPolicy(p entities.CancellationPolicy) CancellationPolicyResponse {
	return CancellationPolicyResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		RefundPercentage: p.RefundPercentage,
		DaysBeforeTour:   p.DaysBeforeTour,
	}
}

func FromCancellationPolicies(ps []entities.CancellationPolicy) []CancellationPolicyResponse {
	out := make([]CancellationPolicyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromCancellationPolicy(p))
	}
	return out
}

type RefundQuoteResponse struct {
	PolicyID      string `json:"policy_id"`
	Eligible      bool   `json:"eligible"`
	RefundAmount  string `json:"refund_amount"`
	DaysRemaining int    `json:"days_remaining"`
}

func FromRefundQuote(q usecase.RefundQuote) RefundQuoteResponse {
	return RefundQuoteResponse{
		PolicyID:      q.Policy.ID,
		Eligible:      q.Eligible,
		RefundAmount:  q.RefundAmount.StringFixed(2),
		DaysRemaining: q.DaysRemaining,
	}
}
