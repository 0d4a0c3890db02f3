// Package report turns stored camp data into the food projection, shortage
// alerts and leader pay reports.
//
// Every operation reads what it needs from the store once per call and then
// hands plain values to the calculator package. Malformed dates never fail a
// report: the affected record is left out, logged and counted.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/camptrack/internal/calculator"
	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/storage"
)

// Reader is the subset of storage.Store the engine reads from.
type Reader interface {
	storage.CampReader
	storage.LeaderReader
}

// Engine computes reports from a Reader.
type Engine struct {
	store Reader
}

// NewEngine creates an Engine reading from store.
func NewEngine(store Reader) *Engine {
	return &Engine{store: store}
}

// Projection is the day-by-day food balance of one camp.
type Projection struct {
	CampID           string
	CampName         string
	EffectivePlanned int
	Days             []calculator.FoodDay

	// SkippedActivityRows counts participation rows with unparsable dates.
	SkippedActivityRows int
}

// ShortageAlert lists the days on which a camp is short of food.
type ShortageAlert struct {
	CampID    string
	CampName  string
	Shortages []calculator.FoodDay
}

// ProjectFoodUsage projects food usage for a camp. An unknown camp or a camp
// with unparsable dates yields a projection with no days; only storage
// failures return an error.
func (e *Engine) ProjectFoodUsage(ctx context.Context, campID string) (*Projection, error) {
	camp, err := e.store.GetCamp(ctx, campID)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Debug("ProjectFoodUsage: camp not found", "camp_id", campID)
		return &Projection{CampID: campID, Days: []calculator.FoodDay{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return e.projectCamp(ctx, camp)
}

func (e *Engine) projectCamp(ctx context.Context, camp *models.Camp) (*Projection, error) {
	topUps, err := e.store.ListStockTopUps(ctx, camp.ID)
	if err != nil {
		return nil, err
	}
	enrollments, err := e.store.ListCampCampers(ctx, camp.ID)
	if err != nil {
		return nil, err
	}
	joinRows, err := e.store.ListActivityAllocations(ctx, camp.ID)
	if err != nil {
		return nil, err
	}

	in := calculator.FoodInput{
		StartDate:           camp.StartDate,
		EndDate:             camp.EndDate,
		BasePlanned:         camp.DailyFoodUnitsPlanned,
		TopUpDeltas:         make([]int, len(topUps)),
		Enrollments:         make([]calculator.Allocation, len(enrollments)),
		ActivityAllocations: make([]calculator.DatedAllocation, len(joinRows)),
	}
	for i, t := range topUps {
		in.TopUpDeltas[i] = t.DeltaDailyUnits
	}
	for i, en := range enrollments {
		in.Enrollments[i] = calculator.Allocation{CamperID: en.CamperID, UnitsPerDay: en.FoodUnitsPerDay}
	}
	for i, r := range joinRows {
		in.ActivityAllocations[i] = calculator.DatedAllocation{
			Date:        r.Date,
			CamperID:    r.CamperID,
			UnitsPerDay: r.FoodUnitsPerDay,
		}
	}

	result := &Projection{
		CampID:           camp.ID,
		CampName:         camp.Name,
		EffectivePlanned: calculator.EffectivePlanned(in.BasePlanned, in.TopUpDeltas),
		Days:             []calculator.FoodDay{},
	}

	proj, err := calculator.ProjectFood(in)
	if err != nil {
		slog.Warn("Skipping food projection for camp with invalid dates",
			"camp_id", camp.ID,
			"start_date", camp.StartDate,
			"end_date", camp.EndDate,
			"error", err,
		)
		skippedRecords.WithLabelValues("camp_dates").Inc()
		return result, nil
	}

	if proj.SkippedActivityRows > 0 {
		slog.Warn("Activity rows with invalid dates left out of projection",
			"camp_id", camp.ID,
			"count", proj.SkippedActivityRows,
		)
		skippedRecords.WithLabelValues("activity_row").Add(float64(proj.SkippedActivityRows))
	}

	result.Days = proj.Days
	result.SkippedActivityRows = proj.SkippedActivityRows
	return result, nil
}

// ListShortageAlerts projects every camp and keeps the ones with at least
// one day where required food exceeds planned food. Camps keep the store's
// listing order.
func (e *Engine) ListShortageAlerts(ctx context.Context) ([]ShortageAlert, error) {
	camps, err := e.store.ListCamps(ctx)
	if err != nil {
		return nil, err
	}

	alerts := []ShortageAlert{}
	days := 0
	for _, camp := range camps {
		proj, err := e.projectCamp(ctx, camp)
		if err != nil {
			return nil, fmt.Errorf("project camp %s: %w", camp.ID, err)
		}
		shortages := calculator.Shortages(proj.Days)
		if len(shortages) == 0 {
			continue
		}
		days += len(shortages)
		alerts = append(alerts, ShortageAlert{
			CampID:    camp.ID,
			CampName:  camp.Name,
			Shortages: shortages,
		})
	}

	shortageDays.Set(float64(days))
	return alerts, nil
}

// LoadPayRate reads the daily pay rate setting. A missing or invalid value
// is treated as zero.
func (e *Engine) LoadPayRate(ctx context.Context) (decimal.Decimal, error) {
	raw, err := e.store.GetSetting(ctx, models.SettingDailyPayRate, "0")
	if err != nil {
		return decimal.Zero, err
	}
	rate := calculator.ParseDailyRate(raw)
	if rate.IsZero() {
		if _, perr := decimal.NewFromString(raw); perr != nil {
			slog.Warn("Invalid daily pay rate, using 0", "value", raw)
		}
	}
	return rate, nil
}

// ComputeLeaderPay sums pay for one leader at the given daily rate. A leader
// with no assignments gets a zero total and no lines.
func (e *Engine) ComputeLeaderPay(ctx context.Context, leaderID string, rate decimal.Decimal) (*calculator.PaySummary, error) {
	assignments, err := e.store.ListLeaderAssignments(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	summary := summarisePay(leaderID, rate, assignments)
	return &summary, nil
}

// ComputeAllLeaderPay returns one summary per leader holding at least one
// assignment, ordered by leader username.
func (e *Engine) ComputeAllLeaderPay(ctx context.Context, rate decimal.Decimal) ([]calculator.PaySummary, error) {
	all, err := e.store.ListAllLeaderAssignments(ctx)
	if err != nil {
		return nil, err
	}

	var order []string
	byLeader := make(map[string][]*models.LeaderAssignment)
	for _, a := range all {
		if _, seen := byLeader[a.LeaderID]; !seen {
			order = append(order, a.LeaderID)
		}
		byLeader[a.LeaderID] = append(byLeader[a.LeaderID], a)
	}

	summaries := make([]calculator.PaySummary, 0, len(order))
	for _, leaderID := range order {
		summaries = append(summaries, summarisePay(leaderID, rate, byLeader[leaderID]))
	}
	return summaries, nil
}

func summarisePay(leaderID string, rate decimal.Decimal, assignments []*models.LeaderAssignment) calculator.PaySummary {
	in := make([]calculator.PayAssignment, len(assignments))
	for i, a := range assignments {
		in[i] = calculator.PayAssignment{
			CampID:    a.CampID,
			CampName:  a.CampName,
			StartDate: a.StartDate,
			EndDate:   a.EndDate,
		}
	}

	summary := calculator.CalculateLeaderPay(rate, in)
	summary.LeaderID = leaderID
	if len(assignments) > 0 {
		summary.LeaderName = assignments[0].LeaderName
	}

	if summary.Skipped > 0 {
		slog.Warn("Leader assignments with invalid camp dates left out of pay",
			"leader_id", leaderID,
			"count", summary.Skipped,
		)
		skippedRecords.WithLabelValues("leader_assignment").Add(float64(summary.Skipped))
	}
	return summary
}

// LeaderStatistics builds a participation and food overview for every camp
// the leader is assigned to.
func (e *Engine) LeaderStatistics(ctx context.Context, leaderID string) ([]calculator.CampStats, error) {
	assignments, err := e.store.ListLeaderAssignments(ctx, leaderID)
	if err != nil {
		return nil, err
	}

	stats := make([]calculator.CampStats, 0, len(assignments))
	for _, a := range assignments {
		enrollments, err := e.store.ListCampCampers(ctx, a.CampID)
		if err != nil {
			return nil, err
		}
		activities, err := e.store.ListCampActivities(ctx, a.CampID)
		if err != nil {
			return nil, err
		}

		in := calculator.CampStatsInput{
			CampID:        a.CampID,
			CampName:      a.CampName,
			Area:          a.Area,
			StartDate:     a.StartDate,
			EndDate:       a.EndDate,
			Enrollments:   make([]calculator.Allocation, len(enrollments)),
			ActivityCount: len(activities),
			Participants:  make([][]string, 0, len(activities)),
		}
		for i, en := range enrollments {
			in.Enrollments[i] = calculator.Allocation{CamperID: en.CamperID, UnitsPerDay: en.FoodUnitsPerDay}
		}
		for _, act := range activities {
			ids, err := e.store.ListActivityCampers(ctx, act.ID)
			if err != nil {
				return nil, err
			}
			in.Participants = append(in.Participants, ids)
		}

		stats = append(stats, calculator.CalculateCampStats(in))
	}
	return stats, nil
}

// AvailableCamps lists the camps a leader could still take on: camps they do
// not already hold whose dates overlap none of their assignments. Camps with
// unparsable dates are left out. Held assignments with unparsable dates do
// not block anything.
func (e *Engine) AvailableCamps(ctx context.Context, leaderID string) ([]*models.Camp, error) {
	held, err := e.store.ListLeaderAssignments(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	camps, err := e.store.ListCamps(ctx)
	if err != nil {
		return nil, err
	}

	holding := make(map[string]bool, len(held))
	spans := make([]calculator.DateSpan, 0, len(held))
	for _, a := range held {
		holding[a.CampID] = true
		span, err := calculator.ParseSpan(a.StartDate, a.EndDate)
		if err != nil {
			skippedRecords.WithLabelValues("leader_assignment").Inc()
			continue
		}
		spans = append(spans, span)
	}

	available := []*models.Camp{}
	for _, camp := range camps {
		if holding[camp.ID] {
			continue
		}
		span, err := calculator.ParseSpan(camp.StartDate, camp.EndDate)
		if err != nil {
			slog.Warn("Leaving camp with invalid dates out of available camps",
				"camp_id", camp.ID,
				"start_date", camp.StartDate,
				"end_date", camp.EndDate,
			)
			skippedRecords.WithLabelValues("camp_dates").Inc()
			continue
		}
		clash := false
		for _, h := range spans {
			if calculator.RangesOverlap(span, h) {
				clash = true
				break
			}
		}
		if !clash {
			available = append(available, camp)
		}
	}
	return available, nil
}

// CampSummaries builds the coordinator overview: one row per camp in the
// store's listing order, with camper, leader and activity counts and the
// daily food balance.
func (e *Engine) CampSummaries(ctx context.Context) ([]calculator.CampSummary, error) {
	camps, err := e.store.ListCamps(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := e.store.ListAllLeaderAssignments(ctx)
	if err != nil {
		return nil, err
	}

	leaders := make(map[string][]string)
	for _, a := range assignments {
		leaders[a.CampID] = append(leaders[a.CampID], a.LeaderName)
	}

	summaries := make([]calculator.CampSummary, 0, len(camps))
	for _, camp := range camps {
		topUps, err := e.store.ListStockTopUps(ctx, camp.ID)
		if err != nil {
			return nil, err
		}
		enrollments, err := e.store.ListCampCampers(ctx, camp.ID)
		if err != nil {
			return nil, err
		}
		activities, err := e.store.ListCampActivities(ctx, camp.ID)
		if err != nil {
			return nil, err
		}

		in := calculator.CampSummaryInput{
			CampID:        camp.ID,
			CampName:      camp.Name,
			Location:      camp.Location,
			Area:          camp.Area,
			Type:          string(camp.Type),
			StartDate:     camp.StartDate,
			EndDate:       camp.EndDate,
			BasePlanned:   camp.DailyFoodUnitsPlanned,
			DefaultUnits:  camp.DefaultFoodUnitsPerCamper,
			TopUpDeltas:   make([]int, len(topUps)),
			Enrollments:   make([]calculator.Allocation, len(enrollments)),
			LeaderNames:   leaders[camp.ID],
			ActivityDates: make([]string, len(activities)),
		}
		for i, t := range topUps {
			in.TopUpDeltas[i] = t.DeltaDailyUnits
		}
		for i, en := range enrollments {
			in.Enrollments[i] = calculator.Allocation{CamperID: en.CamperID, UnitsPerDay: en.FoodUnitsPerDay}
		}
		for i, act := range activities {
			in.ActivityDates[i] = act.Date
		}

		summaries = append(summaries, calculator.SummariseCamp(in))
	}
	return summaries, nil
}
