package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidTotalAmount = errors.New("invalid total_amount")

// CancellationPolicyRequest is the payload for creating a refund rule.
type CancellationPolicyRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	RefundPercentage int    `json:"refund_percentage"`
	DaysBeforeTour   int    `json:"days_before_tour"`
}

// RefundRequest asks for a refund quote against one policy.
type RefundRequest struct {
	TotalAmount   string `json:"total_amount" binding:"required"`
	DaysRemaining int    `json:"days_remaining"`
}

func (r RefundRequest) ResolveTotalAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.TotalAmount))
	if err != nil {
		return decimal.Zero, ErrInvalidTotalAmount
	}
	return amount, nil
}
