package entities

// CancellationPolicy is a named refund rule for reservation cancellations.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name (uniqueness pre-check at creation)
//
// DaysBeforeTour is the minimum advance notice, in whole days, required for
// the policy to apply. RefundPercentage is an integer 0..100.

type CancellationPolicy struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	RefundPercentage int    `json:"refund_percentage"`
	DaysBeforeTour   int    `json:"days_before_tour"`
}
