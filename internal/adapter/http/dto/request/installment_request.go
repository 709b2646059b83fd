package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidDueDate = errors.New("invalid due_date")
)

const dueDateLayout = "2006-01-02"

// InstallmentRequest is the payload accepted by the installment create and
// update endpoints. Amount travels as a string so clients never round it
// through a float; due_date is an ISO calendar date.
type InstallmentRequest struct {
	ReservationID string `json:"reservation_id"`
	Amount        string `json:"amount" binding:"required"`
	DueDate       string `json:"due_date" binding:"required"`
	Status        string `json:"status"`
}

func (r InstallmentRequest) ResolveAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func (r InstallmentRequest) ResolveDueDate() (*time.Time, error) {
	raw := strings.TrimSpace(r.DueDate)
	if raw == "" {
		return nil, ErrInvalidDueDate
	}
	due, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	return &due, nil
}
