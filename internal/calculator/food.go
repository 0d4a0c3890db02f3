package calculator

// Allocation is a camper's per-day food units in one camp.
type Allocation struct {
	CamperID    string
	UnitsPerDay int
}

// DatedAllocation is one activity participation row: the camper's per-day
// units, attributed to the activity's date.
type DatedAllocation struct {
	Date        string
	CamperID    string
	UnitsPerDay int
}

// FoodInput holds everything needed to project one camp's food usage.
type FoodInput struct {
	StartDate string
	EndDate   string

	// BasePlanned is the camp's daily planned units before top-ups.
	BasePlanned int
	TopUpDeltas []int

	Enrollments []Allocation

	// ActivityAllocations has one entry per camper/activity pairing, so a
	// camper in two activities on one date appears twice.
	ActivityAllocations []DatedAllocation
}

// FoodDay is the projected balance for one calendar day.
type FoodDay struct {
	Date     string
	Required int
	Planned  int
	Gap      int // Planned - Required; negative means shortage
}

// FoodProjection is the day-by-day result for a camp.
type FoodProjection struct {
	Days []FoodDay

	// EffectivePlanned is base planned units plus every top-up delta.
	EffectivePlanned int

	// SkippedActivityRows counts participation rows whose activity date
	// could not be parsed. They are left out of every day.
	SkippedActivityRows int
}

// EffectivePlanned returns base plus the algebraic sum of deltas.
func EffectivePlanned(base int, deltas []int) int {
	total := base
	for _, d := range deltas {
		total += d
	}
	return total
}

// ProjectFood computes required vs planned food for every day of the camp.
//
// Algorithm:
//   - planned = base + sum(top-ups), the same for every day
//   - on a date with activity participation rows, required = sum of the
//     per-day units over those rows
//   - on any other date, required = sum of per-day units of all enrolled campers
//   - gap = planned - required
//
// An unparsable camp start or end date returns ErrInvalidDate.
func ProjectFood(in FoodInput) (*FoodProjection, error) {
	start, err := ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	planned := EffectivePlanned(in.BasePlanned, in.TopUpDeltas)

	baseline := 0
	for _, e := range in.Enrollments {
		baseline += e.UnitsPerDay
	}

	proj := &FoodProjection{EffectivePlanned: planned}

	activityRequired := make(map[string]int)
	for _, a := range in.ActivityAllocations {
		d, err := ParseDate(a.Date)
		if err != nil {
			proj.SkippedActivityRows++
			continue
		}
		activityRequired[FormatDate(d)] += a.UnitsPerDay
	}

	dates := DateRange(start, end)
	proj.Days = make([]FoodDay, 0, len(dates))
	for _, d := range dates {
		key := FormatDate(d)
		required, ok := activityRequired[key]
		if !ok {
			required = baseline
		}
		proj.Days = append(proj.Days, FoodDay{
			Date:     key,
			Required: required,
			Planned:  planned,
			Gap:      planned - required,
		})
	}

	return proj, nil
}

// Shortages returns the days with a negative gap, in input order.
func Shortages(days []FoodDay) []FoodDay {
	var out []FoodDay
	for _, d := range days {
		if d.Gap < 0 {
			out = append(out, d)
		}
	}
	return out
}
