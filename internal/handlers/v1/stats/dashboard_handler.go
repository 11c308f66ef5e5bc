package stats

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type DashboardOutput struct {
	Body Dashboard
}

type AnalyticsOutput struct {
	Body Analytics
}

type dashboardService interface {
	Dashboard(ctx context.Context) (*service.Dashboard, error)
	Analytics(ctx context.Context) (*service.Analytics, error)
}

// DashboardHandler handles GET /dashboard and GET /dashboard/analytics.
type DashboardHandler struct {
	StatsService dashboardService
}

func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{StatsService: svc}
}

func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Dashboard",
		Description: "Balances, period totals, recent transactions, top expense categories and current budgets.",
		Tags:        []string{"Dashboard"},
	}, h.dashboard)
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-analytics",
		Method:      http.MethodGet,
		Path:        "/dashboard/analytics",
		Summary:     "Analytics",
		Description: "Monthly and daily trends with year to date breakdowns by category and account.",
		Tags:        []string{"Dashboard"},
	}, h.analytics)
}

func (h *DashboardHandler) dashboard(ctx context.Context, _ *struct{}) (*DashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardMs")
	}
	d, err := h.StatsService.Dashboard(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to build dashboard")
	}
	return &DashboardOutput{Body: fromDashboard(*d)}, nil
}

func (h *DashboardHandler) analytics(ctx context.Context, _ *struct{}) (*AnalyticsOutput, error) {
	stopTimer := logging.Timed(ctx, "analyticsMs")
	a, err := h.StatsService.Analytics(ctx)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to build analytics")
	}
	return &AnalyticsOutput{Body: fromAnalytics(*a)}, nil
}
