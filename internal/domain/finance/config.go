package finance

import "github.com/shopspring/decimal"

// Config carries the finance constants used by the calculators. It is built
// once at startup and passed in explicitly; the package keeps no mutable
// package-level state.
type Config struct {
	// MonthlyLateFeeRate is the late-fee rate per 30-day month (0.05 = 5%).
	MonthlyLateFeeRate decimal.Decimal
	// DaysPerMonth converts the monthly rate into a daily rate.
	DaysPerMonth int
	// ReminderLeadDays is how many days before the due date a payment
	// reminder becomes due.
	ReminderLeadDays int
	// MinimumAmount is the smallest installment amount accepted at creation.
	MinimumAmount decimal.Decimal
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		MonthlyLateFeeRate: decimal.NewFromFloat(0.05),
		DaysPerMonth:       30,
		ReminderLeadDays:   3,
		MinimumAmount:      decimal.NewFromFloat(0.01),
	}
}
