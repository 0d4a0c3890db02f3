package calculator

import (
	"reflect"
	"testing"
)

func TestSummariseCamp(t *testing.T) {
	tests := []struct {
		name string
		in   CampSummaryInput
		want CampSummary
	}{
		{
			name: "allocations and top-ups",
			in: CampSummaryInput{
				CampID:        "c1",
				CampName:      "Forest Trail",
				BasePlanned:   50,
				DefaultUnits:  10,
				TopUpDeltas:   []int{5, -15},
				Enrollments:   []Allocation{{CamperID: "a", UnitsPerDay: 12}, {CamperID: "b", UnitsPerDay: 8}},
				LeaderNames:   []string{"alex", "sam"},
				ActivityDates: []string{"2025-07-03", "01/07/2025", "garbage", "2025-07-02"},
			},
			want: CampSummary{
				CampID:         "c1",
				CampName:       "Forest Trail",
				Campers:        2,
				Leaders:        2,
				LeaderNames:    []string{"alex", "sam"},
				Activities:     4,
				FirstActivity:  "2025-07-01",
				LastActivity:   "2025-07-03",
				EffectiveDaily: 40,
				RequiredDaily:  20,
				FoodGap:        20,
			},
		},
		{
			name: "zero allocations fall back to camp default",
			in: CampSummaryInput{
				CampID:       "c2",
				BasePlanned:  10,
				DefaultUnits: 7,
				Enrollments:  []Allocation{{CamperID: "a"}, {CamperID: "b"}, {CamperID: "c"}},
			},
			want: CampSummary{
				CampID:         "c2",
				Campers:        3,
				LeaderNames:    []string{},
				EffectiveDaily: 10,
				RequiredDaily:  21,
				FoodGap:        -11,
			},
		},
		{
			name: "empty camp",
			in:   CampSummaryInput{CampID: "c3", DefaultUnits: 10},
			want: CampSummary{CampID: "c3", LeaderNames: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummariseCamp(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SummariseCamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCountByArea(t *testing.T) {
	got := CountByArea([]CampSummary{
		{Area: "Leeds"},
		{Area: " "},
		{Area: "York"},
		{Area: "Leeds "},
		{Area: ""},
		{Area: "Bath"},
	})
	want := []AreaCount{
		{Area: "Leeds", Camps: 2},
		{Area: UnspecifiedArea, Camps: 2},
		{Area: "Bath", Camps: 1},
		{Area: "York", Camps: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountByArea() = %+v, want %+v", got, want)
	}

	if got := CountByArea(nil); len(got) != 0 {
		t.Errorf("expected no areas, got %+v", got)
	}
}
