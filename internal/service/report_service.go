package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/report"
)

// ReportService implements the Connect ReportService.
type ReportService struct {
	engine *report.Engine
}

// NewReportService creates a new ReportService backed by the given engine.
func NewReportService(engine *report.Engine) *ReportService {
	return &ReportService{engine: engine}
}

// ProjectFoodUsage returns the day-by-day food balance of a camp. An unknown
// camp yields an empty projection rather than NotFound.
func (s *ReportService) ProjectFoodUsage(ctx context.Context, req *connect.Request[CampIDRequest]) (*connect.Response[FoodProjection], error) {
	slog.Info("ProjectFoodUsage request received", "camp_id", req.Msg.CampID)

	if err := requireRole(ctx, models.RoleAdmin, models.RoleCoordinator, models.RoleLeader); err != nil {
		return nil, err
	}
	if err := req.Msg.Validate(); err != nil {
		return nil, invalidArgument("ProjectFoodUsage", err)
	}

	proj, err := s.engine.ProjectFoodUsage(ctx, req.Msg.CampID)
	if err != nil {
		return nil, storageError("ProjectFoodUsage", err)
	}

	slog.Info("ProjectFoodUsage successful",
		"camp_id", proj.CampID,
		"days", len(proj.Days),
		"skipped_activity_rows", proj.SkippedActivityRows,
	)

	return connect.NewResponse(projectionToWire(proj)), nil
}

// ListShortageAlerts returns every camp with at least one short day.
func (s *ReportService) ListShortageAlerts(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListShortageAlertsResponse], error) {
	slog.Info("ListShortageAlerts request received")

	if err := requireRole(ctx, models.RoleAdmin, models.RoleCoordinator, models.RoleLeader); err != nil {
		return nil, err
	}

	alerts, err := s.engine.ListShortageAlerts(ctx)
	if err != nil {
		return nil, storageError("ListShortageAlerts", err)
	}

	resp := &ListShortageAlertsResponse{Alerts: make([]ShortageAlert, len(alerts))}
	for i, a := range alerts {
		resp.Alerts[i] = ShortageAlert{
			CampID:    a.CampID,
			CampName:  a.CampName,
			Shortages: foodDaysToWire(a.Shortages),
		}
	}

	slog.Info("ListShortageAlerts successful", "count", len(alerts))

	return connect.NewResponse(resp), nil
}

// GetLeaderPay returns one leader's pay at the current daily rate.
func (s *ReportService) GetLeaderPay(ctx context.Context, req *connect.Request[LeaderIDRequest]) (*connect.Response[LeaderPay], error) {
	leaderID, err := resolveLeader(ctx, req.Msg.LeaderID)
	if err != nil {
		return nil, err
	}
	slog.Info("GetLeaderPay request received", "leader_id", leaderID)

	rate, err := s.engine.LoadPayRate(ctx)
	if err != nil {
		return nil, storageError("GetLeaderPay", err)
	}

	summary, err := s.engine.ComputeLeaderPay(ctx, leaderID, rate)
	if err != nil {
		return nil, storageError("GetLeaderPay", err)
	}

	slog.Info("GetLeaderPay successful",
		"leader_id", leaderID,
		"camps", len(summary.PerCamp),
		"total_pay", summary.TotalPay.StringFixed(2),
	)

	return connect.NewResponse(payToWire(rate, summary)), nil
}

// ListLeaderPay returns pay for every leader holding an assignment.
func (s *ReportService) ListLeaderPay(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListLeaderPayResponse], error) {
	slog.Info("ListLeaderPay request received")

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}

	rate, err := s.engine.LoadPayRate(ctx)
	if err != nil {
		return nil, storageError("ListLeaderPay", err)
	}

	summaries, err := s.engine.ComputeAllLeaderPay(ctx, rate)
	if err != nil {
		return nil, storageError("ListLeaderPay", err)
	}

	resp := &ListLeaderPayResponse{
		DailyRate: rate.StringFixed(2),
		Leaders:   make([]*LeaderPay, len(summaries)),
	}
	for i := range summaries {
		resp.Leaders[i] = payToWire(rate, &summaries[i])
	}

	slog.Info("ListLeaderPay successful", "count", len(summaries))

	return connect.NewResponse(resp), nil
}

// GetLeaderStatistics returns participation and food figures for each camp
// the leader is assigned to.
func (s *ReportService) GetLeaderStatistics(ctx context.Context, req *connect.Request[LeaderIDRequest]) (*connect.Response[LeaderStatisticsResponse], error) {
	leaderID, err := resolveLeader(ctx, req.Msg.LeaderID)
	if err != nil {
		return nil, err
	}
	slog.Info("GetLeaderStatistics request received", "leader_id", leaderID)

	stats, err := s.engine.LeaderStatistics(ctx, leaderID)
	if err != nil {
		return nil, storageError("GetLeaderStatistics", err)
	}

	resp := &LeaderStatisticsResponse{Camps: make([]CampStats, len(stats))}
	for i, st := range stats {
		resp.Camps[i] = CampStats{
			CampID:              st.CampID,
			CampName:            st.CampName,
			Area:                st.Area,
			CampDays:            st.CampDays,
			TotalCampers:        st.TotalCampers,
			CampersAttending:    st.CampersAttending,
			ParticipationRate:   st.ParticipationRate,
			TotalActivities:     st.TotalActivities,
			FoodAllocatedPerDay: st.FoodAllocatedPerDay,
			TotalFoodUsed:       st.TotalFoodUsed,
		}
	}

	slog.Info("GetLeaderStatistics successful", "leader_id", leaderID, "camps", len(stats))

	return connect.NewResponse(resp), nil
}

// ListAvailableCamps returns the camps a leader could still be assigned to
// without a date clash.
func (s *ReportService) ListAvailableCamps(ctx context.Context, req *connect.Request[LeaderIDRequest]) (*connect.Response[ListCampsResponse], error) {
	leaderID, err := resolveLeader(ctx, req.Msg.LeaderID)
	if err != nil {
		return nil, err
	}
	slog.Info("ListAvailableCamps request received", "leader_id", leaderID)

	camps, err := s.engine.AvailableCamps(ctx, leaderID)
	if err != nil {
		return nil, storageError("ListAvailableCamps", err)
	}

	resp := &ListCampsResponse{Camps: make([]*Camp, len(camps))}
	for i, c := range camps {
		resp.Camps[i] = campToWire(c)
	}

	slog.Info("ListAvailableCamps successful", "leader_id", leaderID, "count", len(camps))

	return connect.NewResponse(resp), nil
}

// GetCampSummary returns the coordinator overview of every camp.
func (s *ReportService) GetCampSummary(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[CampSummaryResponse], error) {
	slog.Info("GetCampSummary request received")

	if err := requireRole(ctx, staff...); err != nil {
		return nil, err
	}

	summaries, err := s.engine.CampSummaries(ctx)
	if err != nil {
		return nil, storageError("GetCampSummary", err)
	}

	slog.Info("GetCampSummary successful", "camps", len(summaries))

	return connect.NewResponse(campSummaryToWire(summaries)), nil
}
