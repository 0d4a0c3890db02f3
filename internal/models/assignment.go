package models

// LeaderAssignment links a leader to a camp. A leader holds at most one
// assignment per camp.
type LeaderAssignment struct {
	// ID is the unique identifier for the assignment (UUID format).
	ID string

	LeaderID string

	// LeaderName is the leader's username, filled on reads.
	LeaderName string

	CampID string

	// CampName, StartDate, EndDate, Location and Area are copied from the
	// camp on reads so that pay and statistics need no second lookup.
	CampName  string
	StartDate string
	EndDate   string
	Location  string
	Area      string
}

// SettingDailyPayRate is the settings key holding the leader pay rate per
// camp day, as a decimal string.
const SettingDailyPayRate = "daily_pay_rate"
