package models

// StockTopUp records a signed change to a camp's daily planned food units.
// Top-ups are not date scoped: every one of them shifts the planned
// baseline for the whole camp.
type StockTopUp struct {
	// ID is the unique identifier for the top-up (UUID format).
	ID string

	CampID string

	// DeltaDailyUnits may be negative to record spoilage or a reduced order.
	DeltaDailyUnits int

	// CreatedAt is the Unix timestamp when the top-up was recorded.
	CreatedAt int64
}
