package service

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/mmynk/camptrack/internal/calculator"
	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/report"
)

// Camp is the wire form of a camp.
type Camp struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	Location                  string `json:"location"`
	Area                      string `json:"area"`
	Type                      string `json:"type"`
	StartDate                 string `json:"start_date"`
	EndDate                   string `json:"end_date"`
	DailyFoodUnitsPlanned     int    `json:"daily_food_units_planned"`
	DefaultFoodUnitsPerCamper int    `json:"default_food_units_per_camper"`
}

func campToWire(c *models.Camp) *Camp {
	return &Camp{
		ID:                        c.ID,
		Name:                      c.Name,
		Location:                  c.Location,
		Area:                      c.Area,
		Type:                      string(c.Type),
		StartDate:                 c.StartDate,
		EndDate:                   c.EndDate,
		DailyFoodUnitsPlanned:     c.DailyFoodUnitsPlanned,
		DefaultFoodUnitsPerCamper: c.DefaultFoodUnitsPerCamper,
	}
}

type CreateCampRequest struct {
	Name                      string `json:"name"`
	Location                  string `json:"location"`
	Area                      string `json:"area"`
	Type                      string `json:"type"`
	StartDate                 string `json:"start_date"`
	EndDate                   string `json:"end_date"`
	DailyFoodUnitsPlanned     int    `json:"daily_food_units_planned"`
	DefaultFoodUnitsPerCamper int    `json:"default_food_units_per_camper"`
}

func (req *CreateCampRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Area, validation.Length(0, 100)),
		validation.Field(&req.Type, validation.Required, validation.In("day", "overnight", "expedition")),
		validation.Field(&req.StartDate, validation.Required, validation.By(isDate)),
		validation.Field(&req.EndDate, validation.Required, validation.By(isDate)),
		validation.Field(&req.DailyFoodUnitsPlanned, validation.Min(0)),
		validation.Field(&req.DefaultFoodUnitsPerCamper, validation.Min(0)),
	)
	if err != nil {
		return err
	}
	return calculator.ValidateCampDates(req.Type, req.StartDate, req.EndDate)
}

func (req *CreateCampRequest) toModel() *models.Camp {
	return &models.Camp{
		Name:                      req.Name,
		Location:                  req.Location,
		Area:                      req.Area,
		Type:                      models.CampType(req.Type),
		StartDate:                 canonicalDate(req.StartDate),
		EndDate:                   canonicalDate(req.EndDate),
		DailyFoodUnitsPlanned:     req.DailyFoodUnitsPlanned,
		DefaultFoodUnitsPerCamper: req.DefaultFoodUnitsPerCamper,
	}
}

type UpdateCampRequest struct {
	CampID string            `json:"camp_id"`
	Camp   CreateCampRequest `json:"camp"`
}

func (req *UpdateCampRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CampID, validation.Required),
	)
	if err != nil {
		return err
	}
	return req.Camp.Validate()
}

type CampIDRequest struct {
	CampID string `json:"camp_id"`
}

func (req *CampIDRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampID, validation.Required),
	)
}

type ListCampsResponse struct {
	Camps []*Camp `json:"camps"`
}

type AddStockTopUpRequest struct {
	CampID          string `json:"camp_id"`
	DeltaDailyUnits int    `json:"delta_daily_units"`
}

func (req *AddStockTopUpRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampID, validation.Required),
		validation.Field(&req.DeltaDailyUnits, validation.Required),
	)
}

type StockTopUp struct {
	ID              string `json:"id"`
	CampID          string `json:"camp_id"`
	DeltaDailyUnits int    `json:"delta_daily_units"`
	CreatedAt       int64  `json:"created_at"`
}

// EnrollCamperRequest enrolls an existing camper by ID, or registers a new
// camper from the name and date of birth when CamperID is empty.
type EnrollCamperRequest struct {
	CampID           string `json:"camp_id"`
	CamperID         string `json:"camper_id,omitempty"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`

	// FoodUnitsPerDay overrides the camp default when set.
	FoodUnitsPerDay *int `json:"food_units_per_day,omitempty"`
}

func (req *EnrollCamperRequest) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&req.CampID, validation.Required),
		validation.Field(&req.FoodUnitsPerDay, validation.Min(0)),
	}
	if req.CamperID == "" {
		rules = append(rules,
			validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
			validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
			validation.Field(&req.DateOfBirth, validation.Required, validation.By(isDate)),
			validation.Field(&req.EmergencyContact, validation.Length(0, 100)),
		)
	}
	return validation.ValidateStruct(req, rules...)
}

type Enrollment struct {
	ID              string `json:"id"`
	CampID          string `json:"camp_id"`
	CamperID        string `json:"camper_id"`
	FoodUnitsPerDay int    `json:"food_units_per_day"`
}

type UpdateEnrollmentFoodRequest struct {
	EnrollmentID    string `json:"enrollment_id"`
	FoodUnitsPerDay int    `json:"food_units_per_day"`
}

func (req *UpdateEnrollmentFoodRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EnrollmentID, validation.Required),
		validation.Field(&req.FoodUnitsPerDay, validation.Min(0)),
	)
}

type CreateActivityRequest struct {
	CampID string `json:"camp_id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
}

func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Date, validation.Required, validation.By(isDate)),
	)
}

type Activity struct {
	ID     string `json:"id"`
	CampID string `json:"camp_id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
}

type ActivityIDRequest struct {
	ActivityID string `json:"activity_id"`
}

func (req *ActivityIDRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
	)
}

type AssignCampersToActivityRequest struct {
	ActivityID string   `json:"activity_id"`
	CamperIDs  []string `json:"camper_ids"`
}

func (req *AssignCampersToActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.CamperIDs, validation.Required, validation.By(noBlankIDs)),
	)
}

// AssignLeaderRequest assigns a leader to a camp. An empty LeaderID means
// the caller.
type AssignLeaderRequest struct {
	LeaderID string `json:"leader_id,omitempty"`
	CampID   string `json:"camp_id"`
}

func (req *AssignLeaderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampID, validation.Required),
	)
}

type LeaderAssignment struct {
	ID        string `json:"id"`
	LeaderID  string `json:"leader_id"`
	CampID    string `json:"camp_id"`
	CampName  string `json:"camp_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// RemoveLeaderAssignmentRequest drops one of a leader's assignments. An
// empty LeaderID means the caller.
type RemoveLeaderAssignmentRequest struct {
	LeaderID     string `json:"leader_id,omitempty"`
	AssignmentID string `json:"assignment_id"`
}

func (req *RemoveLeaderAssignmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AssignmentID, validation.Required),
	)
}

type SetDailyPayRateRequest struct {
	DailyRate string `json:"daily_rate"`
}

func (req *SetDailyPayRateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DailyRate, validation.Required, validation.By(isRate)),
	)
}

type DailyPayRate struct {
	DailyRate string `json:"daily_rate"`
}

// Report service messages.

type FoodDay struct {
	Date     string `json:"date"`
	Required int    `json:"required"`
	Planned  int    `json:"planned"`
	Gap      int    `json:"gap"`
}

func foodDaysToWire(days []calculator.FoodDay) []FoodDay {
	out := make([]FoodDay, len(days))
	for i, d := range days {
		out[i] = FoodDay{Date: d.Date, Required: d.Required, Planned: d.Planned, Gap: d.Gap}
	}
	return out
}

type FoodProjection struct {
	CampID              string    `json:"camp_id"`
	CampName            string    `json:"camp_name,omitempty"`
	EffectivePlanned    int       `json:"effective_planned"`
	Days                []FoodDay `json:"days"`
	SkippedActivityRows int       `json:"skipped_activity_rows"`
}

func projectionToWire(p *report.Projection) *FoodProjection {
	return &FoodProjection{
		CampID:              p.CampID,
		CampName:            p.CampName,
		EffectivePlanned:    p.EffectivePlanned,
		Days:                foodDaysToWire(p.Days),
		SkippedActivityRows: p.SkippedActivityRows,
	}
}

type ShortageAlert struct {
	CampID    string    `json:"camp_id"`
	CampName  string    `json:"camp_name"`
	Shortages []FoodDay `json:"shortages"`
}

type ListShortageAlertsResponse struct {
	Alerts []ShortageAlert `json:"alerts"`
}

// LeaderIDRequest names a leader. An empty LeaderID means the caller.
type LeaderIDRequest struct {
	LeaderID string `json:"leader_id,omitempty"`
}

type PayLine struct {
	CampID   string `json:"camp_id"`
	CampName string `json:"camp_name"`
	Days     int    `json:"days"`
	Pay      string `json:"pay"`
}

type LeaderPay struct {
	LeaderID           string    `json:"leader_id"`
	LeaderName         string    `json:"leader_name"`
	DailyRate          string    `json:"daily_rate"`
	TotalPay           string    `json:"total_pay"`
	PerCamp            []PayLine `json:"per_camp"`
	SkippedAssignments int       `json:"skipped_assignments"`
}

func payToWire(rate decimal.Decimal, s *calculator.PaySummary) *LeaderPay {
	lines := make([]PayLine, len(s.PerCamp))
	for i, l := range s.PerCamp {
		lines[i] = PayLine{
			CampID:   l.CampID,
			CampName: l.CampName,
			Days:     l.Days,
			Pay:      l.Pay.StringFixed(2),
		}
	}
	return &LeaderPay{
		LeaderID:           s.LeaderID,
		LeaderName:         s.LeaderName,
		DailyRate:          rate.StringFixed(2),
		TotalPay:           s.TotalPay.StringFixed(2),
		PerCamp:            lines,
		SkippedAssignments: s.Skipped,
	}
}

type ListLeaderPayResponse struct {
	DailyRate string       `json:"daily_rate"`
	Leaders   []*LeaderPay `json:"leaders"`
}

type CampStats struct {
	CampID              string  `json:"camp_id"`
	CampName            string  `json:"camp_name"`
	Area                string  `json:"area"`
	CampDays            int     `json:"camp_days"`
	TotalCampers        int     `json:"total_campers"`
	CampersAttending    int     `json:"campers_attending"`
	ParticipationRate   float64 `json:"participation_rate"`
	TotalActivities     int     `json:"total_activities"`
	FoodAllocatedPerDay int     `json:"food_allocated_per_day"`
	TotalFoodUsed       int     `json:"total_food_used"`
}

type LeaderStatisticsResponse struct {
	Camps []CampStats `json:"camps"`
}

type CampSummary struct {
	CampID            string   `json:"camp_id"`
	CampName          string   `json:"camp_name"`
	Location          string   `json:"location"`
	Area              string   `json:"area"`
	Type              string   `json:"type"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	Campers           int      `json:"campers"`
	Leaders           int      `json:"leaders"`
	LeaderNames       []string `json:"leader_names"`
	Activities        int      `json:"activities"`
	FirstActivityDate string   `json:"first_activity_date,omitempty"`
	LastActivityDate  string   `json:"last_activity_date,omitempty"`
	EffectiveDaily    int      `json:"effective_daily_food"`
	RequiredDaily     int      `json:"required_daily_food"`
	FoodGap           int      `json:"food_gap"`
}

type AreaCount struct {
	Area  string `json:"area"`
	Camps int    `json:"camps"`
}

type CampSummaryResponse struct {
	Camps       []CampSummary `json:"camps"`
	CampsByArea []AreaCount   `json:"camps_by_area"`
}

func campSummaryToWire(summaries []calculator.CampSummary) *CampSummaryResponse {
	resp := &CampSummaryResponse{Camps: make([]CampSummary, len(summaries))}
	for i, s := range summaries {
		resp.Camps[i] = CampSummary{
			CampID:            s.CampID,
			CampName:          s.CampName,
			Location:          s.Location,
			Area:              s.Area,
			Type:              s.Type,
			StartDate:         s.StartDate,
			EndDate:           s.EndDate,
			Campers:           s.Campers,
			Leaders:           s.Leaders,
			LeaderNames:       s.LeaderNames,
			Activities:        s.Activities,
			FirstActivityDate: s.FirstActivity,
			LastActivityDate:  s.LastActivity,
			EffectiveDaily:    s.EffectiveDaily,
			RequiredDaily:     s.RequiredDaily,
			FoodGap:           s.FoodGap,
		}
	}

	areas := calculator.CountByArea(summaries)
	resp.CampsByArea = make([]AreaCount, len(areas))
	for i, a := range areas {
		resp.CampsByArea[i] = AreaCount{Area: a.Area, Camps: a.Camps}
	}
	return resp
}

var (
	errNotADate = errors.New("must be a date such as 2025-07-01")
	errBadRate  = errors.New("must be a non-negative decimal amount")
	errBlankIDs = errors.New("must not contain empty IDs")
)

func isDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := calculator.ParseDate(s); err != nil {
		return errNotADate
	}
	return nil
}

// canonicalDate rewrites any accepted date layout as YYYY-MM-DD so stored
// dates sort as text. Input that does not parse is returned unchanged.
func canonicalDate(s string) string {
	t, err := calculator.ParseDate(s)
	if err != nil {
		return s
	}
	return calculator.FormatDate(t)
}

func isRate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	rate, err := decimal.NewFromString(s)
	if err != nil || rate.IsNegative() {
		return errBadRate
	}
	return nil
}

func noBlankIDs(value interface{}) error {
	ids, _ := value.([]string)
	for _, id := range ids {
		if id == "" {
			return errBlankIDs
		}
	}
	return nil
}
