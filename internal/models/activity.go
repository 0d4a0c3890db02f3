package models

// Activity belongs to one camp and happens on a single date inside the
// camp's range.
type Activity struct {
	ID     string
	CampID string
	Name   string
	Date   string
}

// ActivityAllocation is one row of the activity participation join: a
// camper enrolled in the camp and assigned to an activity on Date.
// A camper assigned to two activities on the same date yields two rows.
type ActivityAllocation struct {
	ActivityID      string
	Date            string
	CamperID        string
	FoodUnitsPerDay int
}
