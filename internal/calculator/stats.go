package calculator

import "math"

// CampStatsInput is what a leader's camp overview is built from.
type CampStatsInput struct {
	CampID    string
	CampName  string
	Area      string
	StartDate string
	EndDate   string

	Enrollments   []Allocation
	ActivityCount int

	// Participants lists camper IDs per activity.
	Participants [][]string
}

// CampStats summarises participation and food for one camp.
type CampStats struct {
	CampID              string
	CampName            string
	Area                string
	CampDays            int
	TotalCampers        int
	CampersAttending    int
	ParticipationRate   float64 // percent, one decimal place
	TotalActivities     int
	FoodAllocatedPerDay int
	TotalFoodUsed       int
}

// CalculateCampStats builds the overview. Unparsable camp dates give zero
// days and zero total food rather than an error.
func CalculateCampStats(in CampStatsInput) CampStats {
	stats := CampStats{
		CampID:          in.CampID,
		CampName:        in.CampName,
		Area:            in.Area,
		TotalCampers:    len(in.Enrollments),
		TotalActivities: in.ActivityCount,
	}

	for _, e := range in.Enrollments {
		stats.FoodAllocatedPerDay += e.UnitsPerDay
	}

	attending := make(map[string]struct{})
	for _, ids := range in.Participants {
		for _, id := range ids {
			attending[id] = struct{}{}
		}
	}
	stats.CampersAttending = len(attending)

	if stats.TotalCampers > 0 {
		rate := float64(stats.CampersAttending) / float64(stats.TotalCampers) * 100
		stats.ParticipationRate = math.Round(rate*10) / 10
	}

	start, errStart := ParseDate(in.StartDate)
	end, errEnd := ParseDate(in.EndDate)
	if errStart == nil && errEnd == nil {
		stats.CampDays = InclusiveDays(start, end)
		stats.TotalFoodUsed = stats.FoodAllocatedPerDay * stats.CampDays
	}

	return stats
}
