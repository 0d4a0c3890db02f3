package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/camptrack/internal/auth"
	"github.com/mmynk/camptrack/internal/middleware"
	"github.com/mmynk/camptrack/internal/models"
	"github.com/mmynk/camptrack/internal/report"
	"github.com/mmynk/camptrack/internal/storage/sqlite"
)

type testEnv struct {
	t      *testing.T
	url    string
	jwt    *auth.JWTManager
	store  *sqlite.SQLiteStore
	admin  *models.User
	coord  *models.User
	parent *models.User
}

// setupTestServer serves both services behind the real auth interceptor,
// backed by a temporary SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "camptrack-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, store),
		middleware.LoggingInterceptor(),
	)

	reportPath, reportHandler := NewReportServiceHandler(NewReportService(report.NewEngine(store)), interceptors)
	campPath, campHandler := NewCampServiceHandler(NewCampService(store), interceptors)

	mux := http.NewServeMux()
	mux.Handle(reportPath, reportHandler)
	mux.Handle(campPath, campHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	env := &testEnv{t: t, url: server.URL, jwt: jwtManager, store: store}
	env.admin = env.user("root", models.RoleAdmin)
	env.coord = env.user("carla", models.RoleCoordinator)
	env.parent = env.user("pat", models.RoleParent)
	return env
}

func (e *testEnv) user(username string, role models.Role) *models.User {
	e.t.Helper()
	u := &models.User{Username: username, Role: role, Enabled: true}
	if err := e.store.CreateUser(context.Background(), u); err != nil {
		e.t.Fatalf("CreateUser failed: %v", err)
	}
	return u
}

func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

// as returns clients that call the services as u. A nil user sends no token.
func (e *testEnv) as(u *models.User) (*CampServiceClient, *ReportServiceClient) {
	e.t.Helper()
	var opts []connect.ClientOption
	if u != nil {
		token, err := e.jwt.Generate(u)
		if err != nil {
			e.t.Fatalf("Generate failed: %v", err)
		}
		opts = append(opts, connect.WithInterceptors(bearer(token)))
	}
	return NewCampServiceClient(http.DefaultClient, e.url, opts...),
		NewReportServiceClient(http.DefaultClient, e.url, opts...)
}

func createCamp(t *testing.T, client *CampServiceClient, req *CreateCampRequest) *Camp {
	t.Helper()
	resp, err := client.CreateCamp(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("CreateCamp failed: %v", err)
	}
	return resp.Msg
}

func dayCampRequest(name, date string) *CreateCampRequest {
	return &CreateCampRequest{
		Name:                      name,
		Location:                  "North Woods",
		Area:                      "Leeds",
		Type:                      "day",
		StartDate:                 date,
		EndDate:                   date,
		DailyFoodUnitsPlanned:     100,
		DefaultFoodUnitsPerCamper: 10,
	}
}

func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if connect.CodeOf(err) != code {
		t.Errorf("expected %v, got %v (%v)", code, connect.CodeOf(err), err)
	}
}

func TestCreateCamp(t *testing.T) {
	env := setupTestServer(t)
	camps, _ := env.as(env.coord)
	ctx := context.Background()

	camp := createCamp(t, camps, dayCampRequest("Forest Trail", "2025-07-01"))
	if camp.ID == "" {
		t.Error("expected non-empty camp ID")
	}
	if camp.Type != "day" || camp.DailyFoodUnitsPlanned != 100 {
		t.Errorf("unexpected camp: %+v", camp)
	}

	invalid := []struct {
		name   string
		mutate func(r *CreateCampRequest)
	}{
		{"missing name", func(r *CreateCampRequest) { r.Name = "" }},
		{"unknown type", func(r *CreateCampRequest) { r.Type = "weekend" }},
		{"bad date", func(r *CreateCampRequest) { r.StartDate = "next tuesday" }},
		{"day camp spanning two dates", func(r *CreateCampRequest) { r.EndDate = "2025-07-02" }},
		{"end before start", func(r *CreateCampRequest) { r.Type = "expedition"; r.StartDate = "2025-07-05" }},
		{"negative food", func(r *CreateCampRequest) { r.DailyFoodUnitsPlanned = -1 }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			req := dayCampRequest("Forest Trail", "2025-07-01")
			tt.mutate(req)
			_, err := camps.CreateCamp(ctx, connect.NewRequest(req))
			wantCode(t, err, connect.CodeInvalidArgument)
		})
	}

	t.Run("parent may not create camps", func(t *testing.T) {
		parentCamps, _ := env.as(env.parent)
		_, err := parentCamps.CreateCamp(ctx, connect.NewRequest(dayCampRequest("X Camp", "2025-07-01")))
		wantCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("anonymous call is rejected", func(t *testing.T) {
		anonCamps, _ := env.as(nil)
		_, err := anonCamps.ListCamps(ctx, connect.NewRequest(&emptypb.Empty{}))
		wantCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("parent may list camps", func(t *testing.T) {
		parentCamps, _ := env.as(env.parent)
		resp, err := parentCamps.ListCamps(ctx, connect.NewRequest(&emptypb.Empty{}))
		if err != nil {
			t.Fatalf("ListCamps failed: %v", err)
		}
		if len(resp.Msg.Camps) != 1 {
			t.Errorf("expected 1 camp, got %d", len(resp.Msg.Camps))
		}
	})
}

func TestCreateCamp_StoresCanonicalDates(t *testing.T) {
	env := setupTestServer(t)
	camps, _ := env.as(env.coord)
	ctx := context.Background()

	july := createCamp(t, camps, dayCampRequest("July Day", "01/07/2025"))
	createCamp(t, camps, dayCampRequest("June Day", "2025-06-30"))

	if july.StartDate != "2025-07-01" || july.EndDate != "2025-07-01" {
		t.Errorf("dates = %s..%s, want 2025-07-01", july.StartDate, july.EndDate)
	}

	resp, err := camps.ListCamps(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListCamps failed: %v", err)
	}
	if len(resp.Msg.Camps) != 2 {
		t.Fatalf("expected 2 camps, got %d", len(resp.Msg.Camps))
	}
	if resp.Msg.Camps[0].Name != "June Day" || resp.Msg.Camps[1].StartDate != "2025-07-01" {
		t.Errorf("unexpected order: %s, %s", resp.Msg.Camps[0].Name, resp.Msg.Camps[1].Name)
	}

	activity, err := camps.CreateActivity(ctx, connect.NewRequest(&CreateActivityRequest{
		CampID: july.ID,
		Name:   "Orienteering",
		Date:   "01-07-2025",
	}))
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if activity.Msg.Date != "2025-07-01" {
		t.Errorf("activity date = %s, want 2025-07-01", activity.Msg.Date)
	}
}

func TestUpdateAndDeleteCamp(t *testing.T) {
	env := setupTestServer(t)
	camps, reports := env.as(env.admin)
	ctx := context.Background()

	camp := createCamp(t, camps, dayCampRequest("Forest Trail", "2025-07-01"))

	update := dayCampRequest("Forest Trail", "2025-07-01")
	update.DailyFoodUnitsPlanned = 40
	resp, err := camps.UpdateCamp(ctx, connect.NewRequest(&UpdateCampRequest{CampID: camp.ID, Camp: *update}))
	if err != nil {
		t.Fatalf("UpdateCamp failed: %v", err)
	}
	if resp.Msg.DailyFoodUnitsPlanned != 40 {
		t.Errorf("DailyFoodUnitsPlanned = %d, want 40", resp.Msg.DailyFoodUnitsPlanned)
	}

	_, err = camps.UpdateCamp(ctx, connect.NewRequest(&UpdateCampRequest{CampID: "missing", Camp: *update}))
	wantCode(t, err, connect.CodeNotFound)

	if _, err := camps.DeleteCamp(ctx, connect.NewRequest(&CampIDRequest{CampID: camp.ID})); err != nil {
		t.Fatalf("DeleteCamp failed: %v", err)
	}
	_, err = camps.DeleteCamp(ctx, connect.NewRequest(&CampIDRequest{CampID: camp.ID}))
	wantCode(t, err, connect.CodeNotFound)

	proj, err := reports.ProjectFoodUsage(ctx, connect.NewRequest(&CampIDRequest{CampID: camp.ID}))
	if err != nil {
		t.Fatalf("ProjectFoodUsage failed: %v", err)
	}
	if len(proj.Msg.Days) != 0 {
		t.Errorf("expected no days for deleted camp, got %d", len(proj.Msg.Days))
	}
}

func TestFoodProjectionAndShortages(t *testing.T) {
	env := setupTestServer(t)
	camps, reports := env.as(env.coord)
	ctx := context.Background()

	camp := createCamp(t, camps, dayCampRequest("Forest Trail", "2025-07-01"))
	for i := 0; i < 8; i++ {
		_, err := camps.EnrollCamper(ctx, connect.NewRequest(&EnrollCamperRequest{
			CampID:      camp.ID,
			FirstName:   "Camper",
			LastName:    fmt.Sprintf("N%d", i),
			DateOfBirth: "2015-01-01",
		}))
		if err != nil {
			t.Fatalf("EnrollCamper failed: %v", err)
		}
	}

	proj, err := reports.ProjectFoodUsage(ctx, connect.NewRequest(&CampIDRequest{CampID: camp.ID}))
	if err != nil {
		t.Fatalf("ProjectFoodUsage failed: %v", err)
	}
	want := FoodDay{Date: "2025-07-01", Required: 80, Planned: 100, Gap: 20}
	if len(proj.Msg.Days) != 1 || proj.Msg.Days[0] != want {
		t.Fatalf("unexpected projection: %+v", proj.Msg.Days)
	}

	alerts, err := reports.ListShortageAlerts(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListShortageAlerts failed: %v", err)
	}
	if len(alerts.Msg.Alerts) != 0 {
		t.Errorf("expected no alerts, got %+v", alerts.Msg.Alerts)
	}

	_, err = camps.AddStockTopUp(ctx, connect.NewRequest(&AddStockTopUpRequest{CampID: camp.ID, DeltaDailyUnits: -30}))
	if err != nil {
		t.Fatalf("AddStockTopUp failed: %v", err)
	}

	alerts, err = reports.ListShortageAlerts(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListShortageAlerts failed: %v", err)
	}
	if len(alerts.Msg.Alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts.Msg.Alerts))
	}
	if got := alerts.Msg.Alerts[0]; got.CampID != camp.ID || len(got.Shortages) != 1 || got.Shortages[0].Gap != -10 {
		t.Errorf("unexpected alert: %+v", got)
	}

	t.Run("unknown camp is empty, not an error", func(t *testing.T) {
		proj, err := reports.ProjectFoodUsage(ctx, connect.NewRequest(&CampIDRequest{CampID: "nonexistent"}))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if proj.Msg.Days == nil || len(proj.Msg.Days) != 0 {
			t.Errorf("expected empty days, got %v", proj.Msg.Days)
		}
	})

	t.Run("missing camp ID is invalid", func(t *testing.T) {
		_, err := reports.ProjectFoodUsage(ctx, connect.NewRequest(&CampIDRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("parent may not read reports", func(t *testing.T) {
		_, parentReports := env.as(env.parent)
		_, err := parentReports.ListShortageAlerts(ctx, connect.NewRequest(&emptypb.Empty{}))
		wantCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("zero top-up is invalid", func(t *testing.T) {
		_, err := camps.AddStockTopUp(ctx, connect.NewRequest(&AddStockTopUpRequest{CampID: camp.ID}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestEnrollmentsAndActivities(t *testing.T) {
	env := setupTestServer(t)
	camps, reports := env.as(env.coord)
	ctx := context.Background()

	req := dayCampRequest("Lakeside", "2025-08-01")
	req.Type = "overnight"
	req.EndDate = "2025-08-02"
	camp := createCamp(t, camps, req)

	units := 6
	var enrollments []*Enrollment
	for i, name := range []string{"Ann", "Ben", "Cy"} {
		r := &EnrollCamperRequest{
			CampID:      camp.ID,
			FirstName:   name,
			LastName:    "Lake",
			DateOfBirth: "2014-03-0" + fmt.Sprint(i+1),
		}
		if name == "Cy" {
			r.FoodUnitsPerDay = &units
		}
		resp, err := camps.EnrollCamper(ctx, connect.NewRequest(r))
		if err != nil {
			t.Fatalf("EnrollCamper failed: %v", err)
		}
		enrollments = append(enrollments, resp.Msg)
	}
	if enrollments[0].FoodUnitsPerDay != 10 || enrollments[2].FoodUnitsPerDay != 6 {
		t.Errorf("unexpected allocations: %d, %d", enrollments[0].FoodUnitsPerDay, enrollments[2].FoodUnitsPerDay)
	}

	t.Run("enrollment validation", func(t *testing.T) {
		_, err := camps.EnrollCamper(ctx, connect.NewRequest(&EnrollCamperRequest{CampID: camp.ID, FirstName: "No"}))
		wantCode(t, err, connect.CodeInvalidArgument)

		_, err = camps.EnrollCamper(ctx, connect.NewRequest(&EnrollCamperRequest{
			CampID:   camp.ID,
			CamperID: enrollments[0].CamperID,
		}))
		wantCode(t, err, connect.CodeAlreadyExists)
	})

	if _, err := camps.UpdateEnrollmentFood(ctx, connect.NewRequest(&UpdateEnrollmentFoodRequest{
		EnrollmentID:    enrollments[1].ID,
		FoodUnitsPerDay: 14,
	})); err != nil {
		t.Fatalf("UpdateEnrollmentFood failed: %v", err)
	}

	t.Run("activity outside camp dates", func(t *testing.T) {
		_, err := camps.CreateActivity(ctx, connect.NewRequest(&CreateActivityRequest{
			CampID: camp.ID,
			Name:   "Late Swim",
			Date:   "2025-08-03",
		}))
		wantCode(t, err, connect.CodeFailedPrecondition)
	})

	activity, err := camps.CreateActivity(ctx, connect.NewRequest(&CreateActivityRequest{
		CampID: camp.ID,
		Name:   "Canoe",
		Date:   "2025-08-02",
	}))
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}

	_, err = camps.AssignCampersToActivity(ctx, connect.NewRequest(&AssignCampersToActivityRequest{
		ActivityID: activity.Msg.ID,
		CamperIDs:  []string{enrollments[1].CamperID, enrollments[2].CamperID},
	}))
	if err != nil {
		t.Fatalf("AssignCampersToActivity failed: %v", err)
	}

	proj, err := reports.ProjectFoodUsage(ctx, connect.NewRequest(&CampIDRequest{CampID: camp.ID}))
	if err != nil {
		t.Fatalf("ProjectFoodUsage failed: %v", err)
	}
	if len(proj.Msg.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(proj.Msg.Days))
	}
	// Day one feeds everyone enrolled (10+14+6); day two only the canoeists.
	if proj.Msg.Days[0].Required != 30 || proj.Msg.Days[1].Required != 20 {
		t.Errorf("unexpected required units: %+v", proj.Msg.Days)
	}

	t.Run("delete activity", func(t *testing.T) {
		parentCamps, _ := env.as(env.parent)
		_, err := parentCamps.DeleteActivity(ctx, connect.NewRequest(&ActivityIDRequest{ActivityID: activity.Msg.ID}))
		wantCode(t, err, connect.CodePermissionDenied)

		_, err = camps.DeleteActivity(ctx, connect.NewRequest(&ActivityIDRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)

		if _, err := camps.DeleteActivity(ctx, connect.NewRequest(&ActivityIDRequest{ActivityID: activity.Msg.ID})); err != nil {
			t.Fatalf("DeleteActivity failed: %v", err)
		}
		_, err = camps.DeleteActivity(ctx, connect.NewRequest(&ActivityIDRequest{ActivityID: activity.Msg.ID}))
		wantCode(t, err, connect.CodeNotFound)

		proj, err := reports.ProjectFoodUsage(ctx, connect.NewRequest(&CampIDRequest{CampID: camp.ID}))
		if err != nil {
			t.Fatalf("ProjectFoodUsage failed: %v", err)
		}
		if proj.Msg.Days[1].Required != 30 {
			t.Errorf("day two required = %d, want 30 once the activity is gone", proj.Msg.Days[1].Required)
		}
	})
}

func TestLeaderAssignmentsAndPay(t *testing.T) {
	env := setupTestServer(t)
	coordCamps, coordReports := env.as(env.coord)
	ctx := context.Background()

	sam := env.user("sam", models.RoleLeader)
	alex := env.user("alex", models.RoleLeader)
	samCamps, samReports := env.as(sam)

	expReq := dayCampRequest("Peak Expedition", "2025-07-01")
	expReq.Type = "expedition"
	expReq.EndDate = "2025-07-03"
	expedition := createCamp(t, coordCamps, expReq)
	river := createCamp(t, coordCamps, dayCampRequest("River Day", "2025-07-10"))
	clash := createCamp(t, coordCamps, dayCampRequest("Clash Day", "2025-07-02"))

	rate, err := coordCamps.SetDailyPayRate(ctx, connect.NewRequest(&SetDailyPayRateRequest{DailyRate: "15"}))
	if err != nil {
		t.Fatalf("SetDailyPayRate failed: %v", err)
	}
	if rate.Msg.DailyRate != "15.00" {
		t.Errorf("DailyRate = %s, want 15.00", rate.Msg.DailyRate)
	}

	// sam assigns themself; the coordinator assigns alex.
	for _, campID := range []string{expedition.ID, river.ID} {
		if _, err := samCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{CampID: campID})); err != nil {
			t.Fatalf("AssignLeader failed: %v", err)
		}
	}
	if _, err := coordCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{
		LeaderID: alex.ID,
		CampID:   clash.ID,
	})); err != nil {
		t.Fatalf("AssignLeader failed: %v", err)
	}

	t.Run("assignment rules", func(t *testing.T) {
		_, err := coordCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{LeaderID: sam.ID, CampID: clash.ID}))
		wantCode(t, err, connect.CodeFailedPrecondition)

		_, err = samCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{CampID: river.ID}))
		wantCode(t, err, connect.CodeAlreadyExists)

		_, err = samCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{LeaderID: alex.ID, CampID: river.ID}))
		wantCode(t, err, connect.CodePermissionDenied)

		_, err = coordCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{LeaderID: env.parent.ID, CampID: river.ID}))
		wantCode(t, err, connect.CodeFailedPrecondition)

		_, err = coordCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{LeaderID: "ghost", CampID: river.ID}))
		wantCode(t, err, connect.CodeNotFound)
	})

	t.Run("leader reads own pay", func(t *testing.T) {
		resp, err := samReports.GetLeaderPay(ctx, connect.NewRequest(&LeaderIDRequest{}))
		if err != nil {
			t.Fatalf("GetLeaderPay failed: %v", err)
		}
		pay := resp.Msg
		if pay.TotalPay != "60.00" {
			t.Errorf("TotalPay = %s, want 60.00", pay.TotalPay)
		}
		if len(pay.PerCamp) != 2 || pay.PerCamp[0].Days != 3 || pay.PerCamp[0].Pay != "45.00" {
			t.Errorf("unexpected lines: %+v", pay.PerCamp)
		}
		if pay.LeaderName != "sam" || pay.DailyRate != "15.00" {
			t.Errorf("unexpected header: %+v", pay)
		}
	})

	t.Run("leader may not read another leader's pay", func(t *testing.T) {
		_, err := samReports.GetLeaderPay(ctx, connect.NewRequest(&LeaderIDRequest{LeaderID: alex.ID}))
		wantCode(t, err, connect.CodePermissionDenied)

		_, err = samReports.ListLeaderPay(ctx, connect.NewRequest(&emptypb.Empty{}))
		wantCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("coordinator lists all pay", func(t *testing.T) {
		resp, err := coordReports.ListLeaderPay(ctx, connect.NewRequest(&emptypb.Empty{}))
		if err != nil {
			t.Fatalf("ListLeaderPay failed: %v", err)
		}
		leaders := resp.Msg.Leaders
		if len(leaders) != 2 {
			t.Fatalf("expected 2 leaders, got %d", len(leaders))
		}
		if leaders[0].LeaderName != "alex" || leaders[0].TotalPay != "15.00" {
			t.Errorf("unexpected first leader: %+v", leaders[0])
		}
		if leaders[1].LeaderName != "sam" || leaders[1].TotalPay != "60.00" {
			t.Errorf("unexpected second leader: %+v", leaders[1])
		}
	})

	t.Run("leader without camps earns nothing", func(t *testing.T) {
		idle := env.user("idle", models.RoleLeader)
		resp, err := coordReports.GetLeaderPay(ctx, connect.NewRequest(&LeaderIDRequest{LeaderID: idle.ID}))
		if err != nil {
			t.Fatalf("GetLeaderPay failed: %v", err)
		}
		if resp.Msg.TotalPay != "0.00" || len(resp.Msg.PerCamp) != 0 {
			t.Errorf("expected zero pay, got %+v", resp.Msg)
		}
	})

	t.Run("invalid rate is rejected", func(t *testing.T) {
		for _, bad := range []string{"", "-1", "lots"} {
			_, err := coordCamps.SetDailyPayRate(ctx, connect.NewRequest(&SetDailyPayRateRequest{DailyRate: bad}))
			wantCode(t, err, connect.CodeInvalidArgument)
		}
		_, err := samCamps.SetDailyPayRate(ctx, connect.NewRequest(&SetDailyPayRateRequest{DailyRate: "99"}))
		wantCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("leader statistics", func(t *testing.T) {
		resp, err := samReports.GetLeaderStatistics(ctx, connect.NewRequest(&LeaderIDRequest{}))
		if err != nil {
			t.Fatalf("GetLeaderStatistics failed: %v", err)
		}
		if len(resp.Msg.Camps) != 2 {
			t.Fatalf("expected 2 camps, got %d", len(resp.Msg.Camps))
		}
		if resp.Msg.Camps[0].CampName != "Peak Expedition" || resp.Msg.Camps[0].CampDays != 3 {
			t.Errorf("unexpected first camp: %+v", resp.Msg.Camps[0])
		}
	})
}

func TestRemoveAssignmentAndAvailableCamps(t *testing.T) {
	env := setupTestServer(t)
	coordCamps, coordReports := env.as(env.coord)
	ctx := context.Background()

	sam := env.user("sam", models.RoleLeader)
	alex := env.user("alex", models.RoleLeader)
	samCamps, samReports := env.as(sam)
	alexCamps, _ := env.as(alex)

	july := createCamp(t, coordCamps, dayCampRequest("July Day", "2025-07-01"))
	createCamp(t, coordCamps, dayCampRequest("July Day Two", "2025-07-01"))
	august := createCamp(t, coordCamps, dayCampRequest("August Day", "2025-08-01"))

	held, err := samCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{CampID: july.ID}))
	if err != nil {
		t.Fatalf("AssignLeader failed: %v", err)
	}

	available := func(t *testing.T, reports *ReportServiceClient, leaderID string) []string {
		t.Helper()
		resp, err := reports.ListAvailableCamps(ctx, connect.NewRequest(&LeaderIDRequest{LeaderID: leaderID}))
		if err != nil {
			t.Fatalf("ListAvailableCamps failed: %v", err)
		}
		ids := make([]string, len(resp.Msg.Camps))
		for i, c := range resp.Msg.Camps {
			ids[i] = c.ID
		}
		return ids
	}

	if got := available(t, samReports, ""); len(got) != 1 || got[0] != august.ID {
		t.Errorf("available to sam = %v, want only August Day", got)
	}
	if got := available(t, coordReports, alex.ID); len(got) != 3 {
		t.Errorf("available to alex = %d camps, want 3", len(got))
	}

	t.Run("leader may not list another leader's options", func(t *testing.T) {
		_, err := samReports.ListAvailableCamps(ctx, connect.NewRequest(&LeaderIDRequest{LeaderID: alex.ID}))
		wantCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("another leader cannot remove the assignment", func(t *testing.T) {
		_, err := alexCamps.RemoveLeaderAssignment(ctx, connect.NewRequest(&RemoveLeaderAssignmentRequest{AssignmentID: held.Msg.ID}))
		wantCode(t, err, connect.CodeNotFound)

		_, err = alexCamps.RemoveLeaderAssignment(ctx, connect.NewRequest(&RemoveLeaderAssignmentRequest{
			LeaderID:     sam.ID,
			AssignmentID: held.Msg.ID,
		}))
		wantCode(t, err, connect.CodePermissionDenied)

		_, err = samCamps.RemoveLeaderAssignment(ctx, connect.NewRequest(&RemoveLeaderAssignmentRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	if _, err := samCamps.RemoveLeaderAssignment(ctx, connect.NewRequest(&RemoveLeaderAssignmentRequest{AssignmentID: held.Msg.ID})); err != nil {
		t.Fatalf("RemoveLeaderAssignment failed: %v", err)
	}
	if got := available(t, samReports, ""); len(got) != 3 {
		t.Errorf("available to sam after removal = %d camps, want 3", len(got))
	}

	t.Run("coordinator removes a named leader's assignment", func(t *testing.T) {
		again, err := coordCamps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{LeaderID: sam.ID, CampID: august.ID}))
		if err != nil {
			t.Fatalf("AssignLeader failed: %v", err)
		}
		_, err = coordCamps.RemoveLeaderAssignment(ctx, connect.NewRequest(&RemoveLeaderAssignmentRequest{
			LeaderID:     sam.ID,
			AssignmentID: again.Msg.ID,
		}))
		if err != nil {
			t.Fatalf("RemoveLeaderAssignment failed: %v", err)
		}

		pay, err := coordReports.GetLeaderPay(ctx, connect.NewRequest(&LeaderIDRequest{LeaderID: sam.ID}))
		if err != nil {
			t.Fatalf("GetLeaderPay failed: %v", err)
		}
		if len(pay.Msg.PerCamp) != 0 {
			t.Errorf("expected no pay lines, got %+v", pay.Msg.PerCamp)
		}
	})
}

func TestGetCampSummary(t *testing.T) {
	env := setupTestServer(t)
	camps, reports := env.as(env.coord)
	ctx := context.Background()

	t.Run("no camps", func(t *testing.T) {
		resp, err := reports.GetCampSummary(ctx, connect.NewRequest(&emptypb.Empty{}))
		if err != nil {
			t.Fatalf("GetCampSummary failed: %v", err)
		}
		if len(resp.Msg.Camps) != 0 || len(resp.Msg.CampsByArea) != 0 {
			t.Errorf("expected empty summary, got %+v", resp.Msg)
		}
	})

	forest := createCamp(t, camps, dayCampRequest("Forest Trail", "2025-07-01"))
	for i := 0; i < 3; i++ {
		_, err := camps.EnrollCamper(ctx, connect.NewRequest(&EnrollCamperRequest{
			CampID:      forest.ID,
			FirstName:   "Camper",
			LastName:    fmt.Sprintf("N%d", i),
			DateOfBirth: "2015-01-01",
		}))
		if err != nil {
			t.Fatalf("EnrollCamper failed: %v", err)
		}
	}
	sam := env.user("sam", models.RoleLeader)
	if _, err := camps.AssignLeader(ctx, connect.NewRequest(&AssignLeaderRequest{LeaderID: sam.ID, CampID: forest.ID})); err != nil {
		t.Fatalf("AssignLeader failed: %v", err)
	}
	blank := dayCampRequest("Blank Area", "2025-07-02")
	blank.Area = ""
	createCamp(t, camps, blank)

	resp, err := reports.GetCampSummary(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("GetCampSummary failed: %v", err)
	}
	if len(resp.Msg.Camps) != 2 {
		t.Fatalf("expected 2 camps, got %d", len(resp.Msg.Camps))
	}
	row := resp.Msg.Camps[0]
	if row.CampID != forest.ID || row.Campers != 3 || row.Leaders != 1 || row.RequiredDaily != 30 || row.FoodGap != 70 {
		t.Errorf("unexpected row: %+v", row)
	}
	if len(row.LeaderNames) != 1 || row.LeaderNames[0] != "sam" {
		t.Errorf("LeaderNames = %v, want [sam]", row.LeaderNames)
	}
	want := []AreaCount{{Area: "Leeds", Camps: 1}, {Area: "Unspecified", Camps: 1}}
	if len(resp.Msg.CampsByArea) != 2 || resp.Msg.CampsByArea[0] != want[0] || resp.Msg.CampsByArea[1] != want[1] {
		t.Errorf("CampsByArea = %+v, want %+v", resp.Msg.CampsByArea, want)
	}

	t.Run("leaders may not read the overview", func(t *testing.T) {
		_, samReports := env.as(sam)
		_, err := samReports.GetCampSummary(ctx, connect.NewRequest(&emptypb.Empty{}))
		wantCode(t, err, connect.CodePermissionDenied)
	})
}
