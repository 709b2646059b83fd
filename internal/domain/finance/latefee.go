package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"aventura_tours/internal/domain/entities"
)

// DaysOverdue returns the whole-day count from dueDate to today, or 0 when
// dueDate is nil or not strictly before today. An overdue installment always
// reports at least 1.
func DaysOverdue(dueDate *time.Time, today time.Time) int {
	if dueDate == nil {
		return 0
	}
	due := truncateToDay(*dueDate)
	now := truncateToDay(today)
	if !due.Before(now) {
		return 0
	}
	return int(now.Sub(due).Hours() / 24)
}

// LateFee computes the accrued late fee for an installment amount that is
// daysOverdue days past its due date.
//
// dailyRate = MonthlyLateFeeRate / DaysPerMonth, rounded to 4 decimal places
// half-up; the resulting fee is reported at the currency's 2-decimal scale,
// also rounded half-up.
func LateFee(cfg Config, amount decimal.Decimal, daysOverdue int) decimal.Decimal {
	if daysOverdue <= 0 || amount.IsZero() {
		return decimal.Zero
	}
	dailyRate := cfg.MonthlyLateFeeRate.DivRound(decimal.NewFromInt(int64(cfg.DaysPerMonth)), 4)
	fee := amount.Mul(dailyRate).Mul(decimal.NewFromInt(int64(daysOverdue)))
	return fee.Round(2)
}

// TotalAmountDue returns the installment amount plus any accrued late fee as
// of today. Installments without a due date accrue nothing.
func TotalAmountDue(cfg Config, inst *entities.PaymentInstallment, today time.Time) decimal.Decimal {
	if inst == nil {
		return decimal.Zero
	}
	return inst.Amount.Add(LateFee(cfg, inst.Amount, DaysOverdue(inst.DueDate, today)))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
