package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/camptrack/internal/calculator"
	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/storage"
)

// CampService implements the Connect CampService: the writes that feed the
// reports.
type CampService struct {
	store storage.Store
}

// NewCampService creates a new CampService with the given storage backend.
func NewCampService(store storage.Store) *CampService {
	return &CampService{store: store}
}

// CreateCamp creates a new camp.
func (s *CampService) CreateCamp(ctx context.Context, req *connect.Request[CreateCampRequest]) (*connect.Response[Camp], error) {
	slog.Info("CreateCamp request received",
		"name", req.Msg.Name,
		"type", req.Msg.Type,
		"start_date", req.Msg.StartDate,
		"end_date", req.Msg.EndDate,
	)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("CreateCamp", err)
	}

	camp := req.Msg.toModel()
	if err := s.store.CreateCamp(ctx, camp); err != nil {
		return nil, storageError("CreateCamp", err)
	}

	slog.Info("Camp created", "camp_id", camp.ID)

	return connect.NewResponse(campToWire(camp)), nil
}

// UpdateCamp replaces a camp's details.
func (s *CampService) UpdateCamp(ctx context.Context, req *connect.Request[UpdateCampRequest]) (*connect.Response[Camp], error) {
	slog.Info("UpdateCamp request received", "camp_id", req.Msg.CampID)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("UpdateCamp", err)
	}

	camp := req.Msg.Camp.toModel()
	camp.ID = req.Msg.CampID
	if err := s.store.UpdateCamp(ctx, camp); err != nil {
		return nil, storageError("UpdateCamp", err)
	}

	slog.Info("Camp updated", "camp_id", camp.ID)

	return connect.NewResponse(campToWire(camp)), nil
}

// DeleteCamp removes a camp along with its enrollments, activities,
// top-ups and leader assignments.
func (s *CampService) DeleteCamp(ctx context.Context, req *connect.Request[CampIDRequest]) (*connect.Response[emptypb.Empty], error) {
	slog.Info("DeleteCamp request received", "camp_id", req.Msg.CampID)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("DeleteCamp", err)
	}

	if err := s.store.DeleteCamp(ctx, req.Msg.CampID); err != nil {
		return nil, storageError("DeleteCamp", err)
	}

	slog.Info("Camp deleted", "camp_id", req.Msg.CampID)

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListCamps returns every camp. Any signed-in user may list camps.
func (s *CampService) ListCamps(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListCampsResponse], error) {
	slog.Info("ListCamps request received")

	if err := requireRole(ctx, models.RoleAdmin, models.RoleCoordinator, models.RoleLeader, models.RoleParent); err != nil {
		return nil, err
	}

	camps, err := s.store.ListCamps(ctx)
	if err != nil {
		return nil, storageError("ListCamps", err)
	}

	resp := &ListCampsResponse{Camps: make([]*Camp, len(camps))}
	for i, c := range camps {
		resp.Camps[i] = campToWire(c)
	}

	slog.Info("ListCamps successful", "count", len(camps))

	return connect.NewResponse(resp), nil
}

// AddStockTopUp records a signed change to a camp's daily food stock.
func (s *CampService) AddStockTopUp(ctx context.Context, req *connect.Request[AddStockTopUpRequest]) (*connect.Response[StockTopUp], error) {
	slog.Info("AddStockTopUp request received",
		"camp_id", req.Msg.CampID,
		"delta_daily_units", req.Msg.DeltaDailyUnits,
	)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("AddStockTopUp", err)
	}

	topUp := &models.StockTopUp{
		CampID:          req.Msg.CampID,
		DeltaDailyUnits: req.Msg.DeltaDailyUnits,
	}
	if err := s.store.AddStockTopUp(ctx, topUp); err != nil {
		return nil, storageError("AddStockTopUp", err)
	}

	slog.Info("Stock top-up recorded", "camp_id", topUp.CampID, "top_up_id", topUp.ID)

	return connect.NewResponse(&StockTopUp{
		ID:              topUp.ID,
		CampID:          topUp.CampID,
		DeltaDailyUnits: topUp.DeltaDailyUnits,
		CreatedAt:       topUp.CreatedAt,
	}), nil
}

// EnrollCamper enrolls a camper in a camp, registering the camper first
// when no camper ID is given.
func (s *CampService) EnrollCamper(ctx context.Context, req *connect.Request[EnrollCamperRequest]) (*connect.Response[Enrollment], error) {
	slog.Info("EnrollCamper request received",
		"camp_id", req.Msg.CampID,
		"camper_id", req.Msg.CamperID,
	)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("EnrollCamper", err)
	}

	camperID := req.Msg.CamperID
	if camperID == "" {
		camper := &models.Camper{
			FirstName:        req.Msg.FirstName,
			LastName:         req.Msg.LastName,
			DateOfBirth:      canonicalDate(req.Msg.DateOfBirth),
			EmergencyContact: req.Msg.EmergencyContact,
		}
		if err := s.store.CreateCamper(ctx, camper); err != nil {
			return nil, storageError("EnrollCamper", err)
		}
		camperID = camper.ID
	}

	enrollment := &models.Enrollment{
		CampID:          req.Msg.CampID,
		CamperID:        camperID,
		FoodUnitsPerDay: -1,
	}
	if req.Msg.FoodUnitsPerDay != nil {
		enrollment.FoodUnitsPerDay = *req.Msg.FoodUnitsPerDay
	}
	if err := s.store.EnrollCamper(ctx, enrollment); err != nil {
		return nil, storageError("EnrollCamper", err)
	}

	slog.Info("Camper enrolled",
		"camp_id", enrollment.CampID,
		"camper_id", enrollment.CamperID,
		"food_units_per_day", enrollment.FoodUnitsPerDay,
	)

	return connect.NewResponse(&Enrollment{
		ID:              enrollment.ID,
		CampID:          enrollment.CampID,
		CamperID:        enrollment.CamperID,
		FoodUnitsPerDay: enrollment.FoodUnitsPerDay,
	}), nil
}

// UpdateEnrollmentFood overrides one camper's daily food allocation.
func (s *CampService) UpdateEnrollmentFood(ctx context.Context, req *connect.Request[UpdateEnrollmentFoodRequest]) (*connect.Response[emptypb.Empty], error) {
	slog.Info("UpdateEnrollmentFood request received",
		"enrollment_id", req.Msg.EnrollmentID,
		"food_units_per_day", req.Msg.FoodUnitsPerDay,
	)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("UpdateEnrollmentFood", err)
	}

	if err := s.store.UpdateEnrollmentFood(ctx, req.Msg.EnrollmentID, req.Msg.FoodUnitsPerDay); err != nil {
		return nil, storageError("UpdateEnrollmentFood", err)
	}

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// CreateActivity schedules an activity on a date inside the camp's range.
func (s *CampService) CreateActivity(ctx context.Context, req *connect.Request[CreateActivityRequest]) (*connect.Response[Activity], error) {
	slog.Info("CreateActivity request received",
		"camp_id", req.Msg.CampID,
		"name", req.Msg.Name,
		"date", req.Msg.Date,
	)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("CreateActivity", err)
	}

	camp, err := s.store.GetCamp(ctx, req.Msg.CampID)
	if err != nil {
		return nil, storageError("CreateActivity", err)
	}
	within, err := calculator.DateWithin(req.Msg.Date, camp.StartDate, camp.EndDate)
	if err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("camp %s: %w", camp.ID, err))
	}
	if !within {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errOutsideCampDays)
	}

	activity := &models.Activity{
		CampID: camp.ID,
		Name:   req.Msg.Name,
		Date:   canonicalDate(req.Msg.Date),
	}
	if err := s.store.CreateActivity(ctx, activity); err != nil {
		return nil, storageError("CreateActivity", err)
	}

	slog.Info("Activity created", "camp_id", camp.ID, "activity_id", activity.ID)

	return connect.NewResponse(&Activity{
		ID:     activity.ID,
		CampID: activity.CampID,
		Name:   activity.Name,
		Date:   activity.Date,
	}), nil
}

// DeleteActivity removes an activity and its camper assignments.
func (s *CampService) DeleteActivity(ctx context.Context, req *connect.Request[ActivityIDRequest]) (*connect.Response[emptypb.Empty], error) {
	slog.Info("DeleteActivity request received", "activity_id", req.Msg.ActivityID)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("DeleteActivity", err)
	}

	if err := s.store.DeleteActivity(ctx, req.Msg.ActivityID); err != nil {
		return nil, storageError("DeleteActivity", err)
	}

	slog.Info("Activity deleted", "activity_id", req.Msg.ActivityID)

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// AssignCampersToActivity adds campers to an activity. Campers already on
// the activity are left as they are.
func (s *CampService) AssignCampersToActivity(ctx context.Context, req *connect.Request[AssignCampersToActivityRequest]) (*connect.Response[emptypb.Empty], error) {
	slog.Info("AssignCampersToActivity request received",
		"activity_id", req.Msg.ActivityID,
		"campers_count", len(req.Msg.CamperIDs),
	)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("AssignCampersToActivity", err)
	}

	if err := s.store.AssignCampersToActivity(ctx, req.Msg.ActivityID, req.Msg.CamperIDs); err != nil {
		return nil, storageError("AssignCampersToActivity", err)
	}

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// AssignLeader assigns a leader to a camp. A leader cannot hold two camps
// whose date ranges overlap.
func (s *CampService) AssignLeader(ctx context.Context, req *connect.Request[AssignLeaderRequest]) (*connect.Response[LeaderAssignment], error) {
	leaderID, err := resolveLeader(ctx, req.Msg.LeaderID)
	if err != nil {
		return nil, err
	}
	slog.Info("AssignLeader request received", "leader_id", leaderID, "camp_id", req.Msg.CampID)

	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("AssignLeader", err)
	}

	leader, err := s.store.GetUser(ctx, leaderID)
	if err != nil {
		return nil, storageError("AssignLeader", err)
	}
	if leader.Role != models.RoleLeader {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("%w: %s", errNotALeader, leader.Username))
	}

	camp, err := s.store.GetCamp(ctx, req.Msg.CampID)
	if err != nil {
		return nil, storageError("AssignLeader", err)
	}
	span, err := calculator.ParseSpan(camp.StartDate, camp.EndDate)
	if err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("camp %s: %w", camp.ID, err))
	}

	current, err := s.store.ListLeaderAssignments(ctx, leaderID)
	if err != nil {
		return nil, storageError("AssignLeader", err)
	}
	for _, a := range current {
		if a.CampID == camp.ID {
			continue
		}
		held, err := calculator.ParseSpan(a.StartDate, a.EndDate)
		if err != nil {
			slog.Warn("Ignoring assignment with invalid camp dates in overlap check",
				"leader_id", leaderID,
				"camp_id", a.CampID,
			)
			continue
		}
		if calculator.RangesOverlap(span, held) {
			return nil, connect.NewError(connect.CodeFailedPrecondition,
				fmt.Errorf("%w: %s", errLeaderBusy, a.CampName))
		}
	}

	assignment := &models.LeaderAssignment{
		LeaderID: leaderID,
		CampID:   camp.ID,
	}
	if err := s.store.AssignLeader(ctx, assignment); err != nil {
		return nil, storageError("AssignLeader", err)
	}

	slog.Info("Leader assigned", "leader_id", leaderID, "camp_id", camp.ID, "assignment_id", assignment.ID)

	return connect.NewResponse(&LeaderAssignment{
		ID:        assignment.ID,
		LeaderID:  leaderID,
		CampID:    camp.ID,
		CampName:  camp.Name,
		StartDate: camp.StartDate,
		EndDate:   camp.EndDate,
	}), nil
}

// RemoveLeaderAssignment drops an assignment held by the named leader. Staff
// must name the leader; leaders may only drop their own.
func (s *CampService) RemoveLeaderAssignment(ctx context.Context, req *connect.Request[RemoveLeaderAssignmentRequest]) (*connect.Response[emptypb.Empty], error) {
	leaderID, err := resolveLeader(ctx, req.Msg.LeaderID)
	if err != nil {
		return nil, err
	}
	slog.Info("RemoveLeaderAssignment request received",
		"leader_id", leaderID,
		"assignment_id", req.Msg.AssignmentID,
	)

	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("RemoveLeaderAssignment", err)
	}

	if err := s.store.RemoveLeaderAssignment(ctx, req.Msg.AssignmentID, leaderID); err != nil {
		return nil, storageError("RemoveLeaderAssignment", err)
	}

	slog.Info("Leader assignment removed", "leader_id", leaderID, "assignment_id", req.Msg.AssignmentID)

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// SetDailyPayRate stores the rate leaders are paid per camp day.
func (s *CampService) SetDailyPayRate(ctx context.Context, req *connect.Request[SetDailyPayRateRequest]) (*connect.Response[DailyPayRate], error) {
	slog.Info("SetDailyPayRate request received", "daily_rate", req.Msg.DailyRate)

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("SetDailyPayRate", err)
	}

	rate := decimal.RequireFromString(req.Msg.DailyRate)
	if err := s.store.SetSetting(ctx, models.SettingDailyPayRate, rate.String()); err != nil {
		return nil, storageError("SetDailyPayRate", err)
	}

	slog.Info("Daily pay rate updated", "daily_rate", rate.StringFixed(2))

	return connect.NewResponse(&DailyPayRate{DailyRate: rate.StringFixed(2)}), nil
}
