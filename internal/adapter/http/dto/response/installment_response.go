package response

import (
	"time"

	"aventura_tours/internal/domain/entities"
)

type InstallmentResponse struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	Amount        string    `json:"amount"`
	DueDate       string    `json:"due_date,omitempty"`
	PaymentID     string    `json:"payment_id,omitempty"`
	Status        string    `json:"status"`
	ReminderSent  bool      `json:"reminder_sent"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromInstallment(inst entities.PaymentInstallment) InstallmentResponse {
	res := InstallmentResponse{
		ID:            inst.ID,
		ReservationID: inst.ReservationID,
		Amount:        inst.Amount.StringFixed(2),
		PaymentID:     inst.PaymentID,
		Status:        string(inst.Status),
		ReminderSent:  inst.ReminderSent,
		CreatedAt:     inst.CreatedAt,
	}
	if inst.DueDate != nil {
		res.DueDate = inst.DueDate.Format("2006-01-02")
	}
	return res
}

func FromInstallments(insts []entities.PaymentInstallment) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(insts))
	for _, inst := range insts {
		out = append(out, FromInstallment(inst))
	}
	return out
}

// TotalDueResponse reports the amount owed on an installment including any
// accrued late fee.
type TotalDueResponse struct {
	InstallmentID string `json:"installment_id"`
	AsOf          string `json:"as_of"`
	TotalDue      string `json:"total_due"`
}

// JobRunResponse reports the outcome of an on-demand batch job run.
type JobRunResponse struct {
	Job       string `json:"job"`
	Processed int    `json:"processed"`
}
