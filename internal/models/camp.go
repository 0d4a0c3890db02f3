package models

// CampType classifies camps by length.
type CampType string

const (
	// CampTypeDay camps start and end on the same date.
	CampTypeDay CampType = "day"
	// CampTypeOvernight camps span exactly two consecutive dates.
	CampTypeOvernight CampType = "overnight"
	// CampTypeExpedition camps span at least three dates.
	CampTypeExpedition CampType = "expedition"
)

// Valid reports whether t is a known camp type.
func (t CampType) Valid() bool {
	switch t {
	case CampTypeDay, CampTypeOvernight, CampTypeExpedition:
		return true
	}
	return false
}

// Camp is a scheduled camp. StartDate and EndDate form an inclusive range.
type Camp struct {
	// ID is the unique identifier for the camp (UUID format).
	ID string

	Name     string
	Location string

	// Area is the city or region, used for grouping on dashboards.
	Area string

	Type CampType

	// StartDate and EndDate are calendar dates as stored.
	StartDate string
	EndDate   string

	// DailyFoodUnitsPlanned is the base stock planned for every day of the
	// camp, before top-ups.
	DailyFoodUnitsPlanned int

	// DefaultFoodUnitsPerCamper is copied onto new enrollments.
	DefaultFoodUnitsPerCamper int
}

// Camper is a child known to the system.
type Camper struct {
	ID               string
	FirstName        string
	LastName         string
	DateOfBirth      string
	EmergencyContact string
}

// Enrollment links a camper to a camp with a per-day food allocation.
// Leaders may override the allocation per camper.
type Enrollment struct {
	// ID is the enrollment row identifier.
	ID       string
	CampID   string
	CamperID string

	// FoodUnitsPerDay is what this camper eats on a normal day.
	FoodUnitsPerDay int

	// FirstName and LastName are filled on reads for display.
	FirstName string
	LastName  string
}
