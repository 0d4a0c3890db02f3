package service

import (
	"context"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ReportServiceClient calls a remote ReportService.
type ReportServiceClient struct {
	projectFoodUsage    *connect.Client[CampIDRequest, FoodProjection]
	listShortageAlerts  *connect.Client[emptypb.Empty, ListShortageAlertsResponse]
	getLeaderPay        *connect.Client[LeaderIDRequest, LeaderPay]
	listLeaderPay       *connect.Client[emptypb.Empty, ListLeaderPayResponse]
	getLeaderStatistics *connect.Client[LeaderIDRequest, LeaderStatisticsResponse]
	listAvailableCamps  *connect.Client[LeaderIDRequest, ListCampsResponse]
	getCampSummary      *connect.Client[emptypb.Empty, CampSummaryResponse]
}

// NewReportServiceClient constructs a client for the ReportService at
// baseURL, for example http://localhost:8080.
func NewReportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ReportServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &ReportServiceClient{
		projectFoodUsage: connect.NewClient[CampIDRequest, FoodProjection](
			httpClient, baseURL+ReportServiceProjectFoodUsageProcedure, opts...),
		listShortageAlerts: connect.NewClient[emptypb.Empty, ListShortageAlertsResponse](
			httpClient, baseURL+ReportServiceListShortageAlertsProcedure, opts...),
		getLeaderPay: connect.NewClient[LeaderIDRequest, LeaderPay](
			httpClient, baseURL+ReportServiceGetLeaderPayProcedure, opts...),
		listLeaderPay: connect.NewClient[emptypb.Empty, ListLeaderPayResponse](
			httpClient, baseURL+ReportServiceListLeaderPayProcedure, opts...),
		getLeaderStatistics: connect.NewClient[LeaderIDRequest, LeaderStatisticsResponse](
			httpClient, baseURL+ReportServiceGetLeaderStatisticsProcedure, opts...),
		listAvailableCamps: connect.NewClient[LeaderIDRequest, ListCampsResponse](
			httpClient, baseURL+ReportServiceListAvailableCampsProcedure, opts...),
		getCampSummary: connect.NewClient[emptypb.Empty, CampSummaryResponse](
			httpClient, baseURL+ReportServiceGetCampSummaryProcedure, opts...),
	}
}

func (c *ReportServiceClient) ProjectFoodUsage(ctx context.Context, req *connect.Request[CampIDRequest]) (*connect.Response[FoodProjection], error) {
	return c.projectFoodUsage.CallUnary(ctx, req)
}

func (c *ReportServiceClient) ListShortageAlerts(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListShortageAlertsResponse], error) {
	return c.listShortageAlerts.CallUnary(ctx, req)
}

func (c *ReportServiceClient) GetLeaderPay(ctx context.Context, req *connect.Request[LeaderIDRequest]) (*connect.Response[LeaderPay], error) {
	return c.getLeaderPay.CallUnary(ctx, req)
}

func (c *ReportServiceClient) ListLeaderPay(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListLeaderPayResponse], error) {
	return c.listLeaderPay.CallUnary(ctx, req)
}

func (c *ReportServiceClient) GetLeaderStatistics(ctx context.Context, req *connect.Request[LeaderIDRequest]) (*connect.Response[LeaderStatisticsResponse], error) {
	return c.getLeaderStatistics.CallUnary(ctx, req)
}

func (c *ReportServiceClient) ListAvailableCamps(ctx context.Context, req *connect.Request[LeaderIDRequest]) (*connect.Response[ListCampsResponse], error) {
	return c.listAvailableCamps.CallUnary(ctx, req)
}

func (c *ReportServiceClient) GetCampSummary(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[CampSummaryResponse], error) {
	return c.getCampSummary.CallUnary(ctx, req)
}

// CampServiceClient calls a remote CampService.
type CampServiceClient struct {
	createCamp              *connect.Client[CreateCampRequest, Camp]
	updateCamp              *connect.Client[UpdateCampRequest, Camp]
	deleteCamp              *connect.Client[CampIDRequest, emptypb.Empty]
	listCamps               *connect.Client[emptypb.Empty, ListCampsResponse]
	addStockTopUp           *connect.Client[AddStockTopUpRequest, StockTopUp]
	enrollCamper            *connect.Client[EnrollCamperRequest, Enrollment]
	updateEnrollmentFood    *connect.Client[UpdateEnrollmentFoodRequest, emptypb.Empty]
	createActivity          *connect.Client[CreateActivityRequest, Activity]
	deleteActivity          *connect.Client[ActivityIDRequest, emptypb.Empty]
	assignCampersToActivity *connect.Client[AssignCampersToActivityRequest, emptypb.Empty]
	assignLeader            *connect.Client[AssignLeaderRequest, LeaderAssignment]
	removeLeaderAssignment  *connect.Client[RemoveLeaderAssignmentRequest, emptypb.Empty]
	setDailyPayRate         *connect.Client[SetDailyPayRateRequest, DailyPayRate]
}

// NewCampServiceClient constructs a client for the CampService at baseURL.
func NewCampServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CampServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &CampServiceClient{
		createCamp: connect.NewClient[CreateCampRequest, Camp](
			httpClient, baseURL+CampServiceCreateCampProcedure, opts...),
		updateCamp: connect.NewClient[UpdateCampRequest, Camp](
			httpClient, baseURL+CampServiceUpdateCampProcedure, opts...),
		deleteCamp: connect.NewClient[CampIDRequest, emptypb.Empty](
			httpClient, baseURL+CampServiceDeleteCampProcedure, opts...),
		listCamps: connect.NewClient[emptypb.Empty, ListCampsResponse](
			httpClient, baseURL+CampServiceListCampsProcedure, opts...),
		addStockTopUp: connect.NewClient[AddStockTopUpRequest, StockTopUp](
			httpClient, baseURL+CampServiceAddStockTopUpProcedure, opts...),
		enrollCamper: connect.NewClient[EnrollCamperRequest, Enrollment](
			httpClient, baseURL+CampServiceEnrollCamperProcedure, opts...),
		updateEnrollmentFood: connect.NewClient[UpdateEnrollmentFoodRequest, emptypb.Empty](
			httpClient, baseURL+CampServiceUpdateEnrollmentFoodProcedure, opts...),
		createActivity: connect.NewClient[CreateActivityRequest, Activity](
			httpClient, baseURL+CampServiceCreateActivityProcedure, opts...),
		deleteActivity: connect.NewClient[ActivityIDRequest, emptypb.Empty](
			httpClient, baseURL+CampServiceDeleteActivityProcedure, opts...),
		assignCampersToActivity: connect.NewClient[AssignCampersToActivityRequest, emptypb.Empty](
			httpClient, baseURL+CampServiceAssignCampersToActivityProcedure, opts...),
		assignLeader: connect.NewClient[AssignLeaderRequest, LeaderAssignment](
			httpClient, baseURL+CampServiceAssignLeaderProcedure, opts...),
		removeLeaderAssignment: connect.NewClient[RemoveLeaderAssignmentRequest, emptypb.Empty](
			httpClient, baseURL+CampServiceRemoveLeaderAssignmentProcedure, opts...),
		setDailyPayRate: connect.NewClient[SetDailyPayRateRequest, DailyPayRate](
			httpClient, baseURL+CampServiceSetDailyPayRateProcedure, opts...),
	}
}

func (c *CampServiceClient) CreateCamp(ctx context.Context, req *connect.Request[CreateCampRequest]) (*connect.Response[Camp], error) {
	return c.createCamp.CallUnary(ctx, req)
}

func (c *CampServiceClient) UpdateCamp(ctx context.Context, req *connect.Request[UpdateCampRequest]) (*connect.Response[Camp], error) {
	return c.updateCamp.CallUnary(ctx, req)
}

func (c *CampServiceClient) DeleteCamp(ctx context.Context, req *connect.Request[CampIDRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.deleteCamp.CallUnary(ctx, req)
}

func (c *CampServiceClient) ListCamps(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListCampsResponse], error) {
	return c.listCamps.CallUnary(ctx, req)
}

func (c *CampServiceClient) AddStockTopUp(ctx context.Context, req *connect.Request[AddStockTopUpRequest]) (*connect.Response[StockTopUp], error) {
	return c.addStockTopUp.CallUnary(ctx, req)
}

func (c *CampServiceClient) EnrollCamper(ctx context.Context, req *connect.Request[EnrollCamperRequest]) (*connect.Response[Enrollment], error) {
	return c.enrollCamper.CallUnary(ctx, req)
}

func (c *CampServiceClient) UpdateEnrollmentFood(ctx context.Context, req *connect.Request[UpdateEnrollmentFoodRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.updateEnrollmentFood.CallUnary(ctx, req)
}

func (c *CampServiceClient) CreateActivity(ctx context.Context, req *connect.Request[CreateActivityRequest]) (*connect.Response[Activity], error) {
	return c.createActivity.CallUnary(ctx, req)
}

func (c *CampServiceClient) DeleteActivity(ctx context.Context, req *connect.Request[ActivityIDRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.deleteActivity.CallUnary(ctx, req)
}

func (c *CampServiceClient) AssignCampersToActivity(ctx context.Context, req *connect.Request[AssignCampersToActivityRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.assignCampersToActivity.CallUnary(ctx, req)
}

func (c *CampServiceClient) AssignLeader(ctx context.Context, req *connect.Request[AssignLeaderRequest]) (*connect.Response[LeaderAssignment], error) {
	return c.assignLeader.CallUnary(ctx, req)
}

func (c *CampServiceClient) RemoveLeaderAssignment(ctx context.Context, req *connect.Request[RemoveLeaderAssignmentRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.removeLeaderAssignment.CallUnary(ctx, req)
}

func (c *CampServiceClient) SetDailyPayRate(ctx context.Context, req *connect.Request[SetDailyPayRateRequest]) (*connect.Response[DailyPayRate], error) {
	return c.setDailyPayRate.CallUnary(ctx, req)
}
