package calculator

import (
	"sort"
	"strings"
)

// UnspecifiedArea labels camps with a blank area.
const UnspecifiedArea = "Unspecified"

// CampSummaryInput is what one row of the coordinator overview is built from.
type CampSummaryInput struct {
	CampID    string
	CampName  string
	Location  string
	Area      string
	Type      string
	StartDate string
	EndDate   string

	BasePlanned  int
	DefaultUnits int
	TopUpDeltas  []int
	Enrollments  []Allocation

	// LeaderNames lists the usernames of the camp's leaders.
	LeaderNames []string

	// ActivityDates has one entry per activity.
	ActivityDates []string
}

// CampSummary counts what hangs off a camp and compares its effective
// daily food with what the enrolled campers need.
type CampSummary struct {
	CampID    string
	CampName  string
	Location  string
	Area      string
	Type      string
	StartDate string
	EndDate   string

	Campers     int
	Leaders     int
	LeaderNames []string
	Activities  int

	// FirstActivity and LastActivity are empty when the camp has no
	// activity with a readable date.
	FirstActivity string
	LastActivity  string

	EffectiveDaily int
	RequiredDaily  int
	FoodGap        int // EffectiveDaily - RequiredDaily
}

// SummariseCamp builds one overview row. RequiredDaily is the sum of the
// campers' allocations, or the camp default per camper when that sum is zero.
func SummariseCamp(in CampSummaryInput) CampSummary {
	s := CampSummary{
		CampID:         in.CampID,
		CampName:       in.CampName,
		Location:       in.Location,
		Area:           in.Area,
		Type:           in.Type,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Campers:        len(in.Enrollments),
		Leaders:        len(in.LeaderNames),
		LeaderNames:    in.LeaderNames,
		Activities:     len(in.ActivityDates),
		EffectiveDaily: EffectivePlanned(in.BasePlanned, in.TopUpDeltas),
	}
	if s.LeaderNames == nil {
		s.LeaderNames = []string{}
	}

	for _, e := range in.Enrollments {
		s.RequiredDaily += e.UnitsPerDay
	}
	if s.RequiredDaily == 0 {
		s.RequiredDaily = in.DefaultUnits * s.Campers
	}
	s.FoodGap = s.EffectiveDaily - s.RequiredDaily

	first, last := "", ""
	for _, raw := range in.ActivityDates {
		d, err := ParseDate(raw)
		if err != nil {
			continue
		}
		date := FormatDate(d)
		if first == "" || date < first {
			first = date
		}
		if last == "" || date > last {
			last = date
		}
	}
	s.FirstActivity, s.LastActivity = first, last

	return s
}

// AreaCount is the number of camps in one area.
type AreaCount struct {
	Area  string
	Camps int
}

// CountByArea groups camps by trimmed area, largest group first and then by
// name. Blank areas count as UnspecifiedArea.
func CountByArea(summaries []CampSummary) []AreaCount {
	counts := make(map[string]int)
	for _, s := range summaries {
		area := strings.TrimSpace(s.Area)
		if area == "" {
			area = UnspecifiedArea
		}
		counts[area]++
	}

	out := make([]AreaCount, 0, len(counts))
	for area, n := range counts {
		out = append(out, AreaCount{Area: area, Camps: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Camps != out[j].Camps {
			return out[i].Camps > out[j].Camps
		}
		return out[i].Area < out[j].Area
	})
	return out
}
