package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type statsService interface {
	Today(ctx context.Context) (*service.PeriodSummary, error)
	Weekly(ctx context.Context) (*service.PeriodSummary, error)
	Monthly(ctx context.Context) (*service.PeriodSummary, error)
	DateRange(ctx context.Context, from, to time.Time) (*service.PeriodSummary, error)
	Balance(ctx context.Context) (*service.BalanceSummary, error)
	Dashboard(ctx context.Context) (*service.Dashboard, error)
	Analytics(ctx context.Context) (*service.Analytics, error)
}

type PeriodSummaryOutput struct {
	Body PeriodSummary
}

type BalanceOutput struct {
	Body BalanceSummary
}

// DashboardStats is the headline figures of the dashboard without its lists.
type DashboardStats struct {
	TotalBalance string        `json:"totalBalance"`
	Today        PeriodSummary `json:"today"`
	Week         PeriodSummary `json:"week"`
	Month        PeriodSummary `json:"month"`
}

type DashboardStatsOutput struct {
	Body DashboardStats
}

type DateRangeInput struct {
	StartDate string `query:"startDate" required:"true" doc:"YYYY-MM-DD"`
	EndDate   string `query:"endDate" required:"true" doc:"YYYY-MM-DD, inclusive"`
}

// Handler serves the JSON summaries under /api/stats.
type Handler struct {
	StatsService statsService
}

func NewHandler(svc statsService) *Handler {
	return &Handler{StatsService: svc}
}

func (h *Handler) Register(api huma.API) {
	periods := []struct {
		id, path, summary string
		fn                func(context.Context) (*service.PeriodSummary, error)
	}{
		{"stats-today", "/api/stats/today", "Income and expense today", h.StatsService.Today},
		{"stats-weekly", "/api/stats/weekly", "Income and expense this week, Monday to Sunday", h.StatsService.Weekly},
		{"stats-monthly", "/api/stats/monthly", "Income and expense this month", h.StatsService.Monthly},
	}
	for _, p := range periods {
		summarize := p.fn
		huma.Register(api, huma.Operation{
			OperationID: p.id,
			Method:      http.MethodGet,
			Path:        p.path,
			Summary:     p.summary,
			Tags:        []string{"Stats"},
		}, func(ctx context.Context, _ *struct{}) (*PeriodSummaryOutput, error) {
			summary, err := summarize(ctx)
			if err != nil {
				return nil, common.ServiceError(ctx, err, "failed to summarise transactions")
			}
			return &PeriodSummaryOutput{Body: fromPeriodSummary(*summary)}, nil
		})
	}

	huma.Register(api, huma.Operation{
		OperationID: "stats-date-range",
		Method:      http.MethodGet,
		Path:        "/api/stats/date-range",
		Summary:     "Income and expense over a date range",
		Tags:        []string{"Stats"},
	}, h.dateRange)
	huma.Register(api, huma.Operation{
		OperationID: "stats-balance",
		Method:      http.MethodGet,
		Path:        "/api/stats/balance",
		Summary:     "Balances of the active accounts",
		Tags:        []string{"Stats"},
	}, h.balance)
	huma.Register(api, huma.Operation{
		OperationID: "stats-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/stats/dashboard",
		Summary:     "Headline dashboard figures",
		Tags:        []string{"Stats"},
	}, h.dashboard)
}

func (h *Handler) dateRange(ctx context.Context, input *DateRangeInput) (*PeriodSummaryOutput, error) {
	p := common.NewParser()
	start := p.RequiredDate("startDate", input.StartDate)
	end := p.RequiredDate("endDate", input.EndDate)
	if err := p.Err(); err != nil {
		return nil, err
	}

	summary, err := h.StatsService.DateRange(ctx, start, end)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to summarise transactions")
	}
	return &PeriodSummaryOutput{Body: fromPeriodSummary(*summary)}, nil
}

func (h *Handler) balance(ctx context.Context, _ *struct{}) (*BalanceOutput, error) {
	summary, err := h.StatsService.Balance(ctx)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to summarise balances")
	}
	return &BalanceOutput{Body: fromBalanceSummary(*summary)}, nil
}

func (h *Handler) dashboard(ctx context.Context, _ *struct{}) (*DashboardStatsOutput, error) {
	stopTimer := logging.Timed(ctx, "dashboardMs")
	d, err := h.StatsService.Dashboard(ctx)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to build dashboard")
	}
	return &DashboardStatsOutput{Body: DashboardStats{
		TotalBalance: common.Money(d.Balance.TotalBalance),
		Today:        fromPeriodSummary(d.Today),
		Week:         fromPeriodSummary(d.Week),
		Month:        fromPeriodSummary(d.Month),
	}}, nil
}
