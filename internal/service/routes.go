package service

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	// ReportServiceName is the fully-qualified name of the ReportService.
	ReportServiceName = "camptrack.v1.ReportService"
	// CampServiceName is the fully-qualified name of the CampService.
	CampServiceName = "camptrack.v1.CampService"
)

// Procedure paths, in the form /package.Service/Method.
const (
	ReportServiceProjectFoodUsageProcedure    = "/" + ReportServiceName + "/ProjectFoodUsage"
	ReportServiceListShortageAlertsProcedure  = "/" + ReportServiceName + "/ListShortageAlerts"
	ReportServiceGetLeaderPayProcedure        = "/" + ReportServiceName + "/GetLeaderPay"
	ReportServiceListLeaderPayProcedure       = "/" + ReportServiceName + "/ListLeaderPay"
	ReportServiceGetLeaderStatisticsProcedure = "/" + ReportServiceName + "/GetLeaderStatistics"
	ReportServiceListAvailableCampsProcedure  = "/" + ReportServiceName + "/ListAvailableCamps"
	ReportServiceGetCampSummaryProcedure      = "/" + ReportServiceName + "/GetCampSummary"

	CampServiceCreateCampProcedure              = "/" + CampServiceName + "/CreateCamp"
	CampServiceUpdateCampProcedure              = "/" + CampServiceName + "/UpdateCamp"
	CampServiceDeleteCampProcedure              = "/" + CampServiceName + "/DeleteCamp"
	CampServiceListCampsProcedure               = "/" + CampServiceName + "/ListCamps"
	CampServiceAddStockTopUpProcedure           = "/" + CampServiceName + "/AddStockTopUp"
	CampServiceEnrollCamperProcedure            = "/" + CampServiceName + "/EnrollCamper"
	CampServiceUpdateEnrollmentFoodProcedure    = "/" + CampServiceName + "/UpdateEnrollmentFood"
	CampServiceCreateActivityProcedure          = "/" + CampServiceName + "/CreateActivity"
	CampServiceDeleteActivityProcedure          = "/" + CampServiceName + "/DeleteActivity"
	CampServiceAssignCampersToActivityProcedure = "/" + CampServiceName + "/AssignCampersToActivity"
	CampServiceAssignLeaderProcedure            = "/" + CampServiceName + "/AssignLeader"
	CampServiceRemoveLeaderAssignmentProcedure  = "/" + CampServiceName + "/RemoveLeaderAssignment"
	CampServiceSetDailyPayRateProcedure         = "/" + CampServiceName + "/SetDailyPayRate"
)

// NewReportServiceHandler builds an HTTP handler for the ReportService and
// returns the path to mount it on.
func NewReportServiceHandler(svc *ReportService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ReportServiceProjectFoodUsageProcedure,
		connect.NewUnaryHandler(ReportServiceProjectFoodUsageProcedure, svc.ProjectFoodUsage, opts...))
	mux.Handle(ReportServiceListShortageAlertsProcedure,
		connect.NewUnaryHandler(ReportServiceListShortageAlertsProcedure, svc.ListShortageAlerts, opts...))
	mux.Handle(ReportServiceGetLeaderPayProcedure,
		connect.NewUnaryHandler(ReportServiceGetLeaderPayProcedure, svc.GetLeaderPay, opts...))
	mux.Handle(ReportServiceListLeaderPayProcedure,
		connect.NewUnaryHandler(ReportServiceListLeaderPayProcedure, svc.ListLeaderPay, opts...))
	mux.Handle(ReportServiceGetLeaderStatisticsProcedure,
		connect.NewUnaryHandler(ReportServiceGetLeaderStatisticsProcedure, svc.GetLeaderStatistics, opts...))
	mux.Handle(ReportServiceListAvailableCampsProcedure,
		connect.NewUnaryHandler(ReportServiceListAvailableCampsProcedure, svc.ListAvailableCamps, opts...))
	mux.Handle(ReportServiceGetCampSummaryProcedure,
		connect.NewUnaryHandler(ReportServiceGetCampSummaryProcedure, svc.GetCampSummary, opts...))

	return "/" + ReportServiceName + "/", mux
}

// NewCampServiceHandler builds an HTTP handler for the CampService and
// returns the path to mount it on.
func NewCampServiceHandler(svc *CampService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(CampServiceCreateCampProcedure,
		connect.NewUnaryHandler(CampServiceCreateCampProcedure, svc.CreateCamp, opts...))
	mux.Handle(CampServiceUpdateCampProcedure,
		connect.NewUnaryHandler(CampServiceUpdateCampProcedure, svc.UpdateCamp, opts...))
	mux.Handle(CampServiceDeleteCampProcedure,
		connect.NewUnaryHandler(CampServiceDeleteCampProcedure, svc.DeleteCamp, opts...))
	mux.Handle(CampServiceListCampsProcedure,
		connect.NewUnaryHandler(CampServiceListCampsProcedure, svc.ListCamps, opts...))
	mux.Handle(CampServiceAddStockTopUpProcedure,
		connect.NewUnaryHandler(CampServiceAddStockTopUpProcedure, svc.AddStockTopUp, opts...))
	mux.Handle(CampServiceEnrollCamperProcedure,
		connect.NewUnaryHandler(CampServiceEnrollCamperProcedure, svc.EnrollCamper, opts...))
	mux.Handle(CampServiceUpdateEnrollmentFoodProcedure,
		connect.NewUnaryHandler(CampServiceUpdateEnrollmentFoodProcedure, svc.UpdateEnrollmentFood, opts...))
	mux.Handle(CampServiceCreateActivityProcedure,
		connect.NewUnaryHandler(CampServiceCreateActivityProcedure, svc.CreateActivity, opts...))
	mux.Handle(CampServiceDeleteActivityProcedure,
		connect.NewUnaryHandler(CampServiceDeleteActivityProcedure, svc.DeleteActivity, opts...))
	mux.Handle(CampServiceAssignCampersToActivityProcedure,
		connect.NewUnaryHandler(CampServiceAssignCampersToActivityProcedure, svc.AssignCampersToActivity, opts...))
	mux.Handle(CampServiceAssignLeaderProcedure,
		connect.NewUnaryHandler(CampServiceAssignLeaderProcedure, svc.AssignLeader, opts...))
	mux.Handle(CampServiceRemoveLeaderAssignmentProcedure,
		connect.NewUnaryHandler(CampServiceRemoveLeaderAssignmentProcedure, svc.RemoveLeaderAssignment, opts...))
	mux.Handle(CampServiceSetDailyPayRateProcedure,
		connect.NewUnaryHandler(CampServiceSetDailyPayRateProcedure, svc.SetDailyPayRate, opts...))

	return "/" + CampServiceName + "/", mux
}
