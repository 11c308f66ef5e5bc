package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) summary(args mock.Arguments) (*service.PeriodSummary, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PeriodSummary), args.Error(1)
}

func (m *mockStatsService) Today(ctx context.Context) (*service.PeriodSummary, error) {
	return m.summary(m.Called(ctx))
}

func (m *mockStatsService) Weekly(ctx context.Context) (*service.PeriodSummary, error) {
	return m.summary(m.Called(ctx))
}

func (m *mockStatsService) Monthly(ctx context.Context) (*service.PeriodSummary, error) {
	return m.summary(m.Called(ctx))
}

func (m *mockStatsService) DateRange(ctx context.Context, from, to time.Time) (*service.PeriodSummary, error) {
	return m.summary(m.Called(ctx, from, to))
}

func (m *mockStatsService) Balance(ctx context.Context) (*service.BalanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BalanceSummary), args.Error(1)
}

func (m *mockStatsService) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *mockStatsService) Analytics(ctx context.Context) (*service.Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Analytics), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockStatsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	NewDashboardHandler(svc).Register(api)
	return api
}

func day(s string) time.Time {
	t, err := ledger.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func summaryFor(start, end string, income, expense string, count int64) *service.PeriodSummary {
	return &service.PeriodSummary{
		Range: ledger.DateRange{Start: day(start), End: day(end)},
		Totals: ledger.Totals{
			Income:  decimal.RequireFromString(income),
			Expense: decimal.RequireFromString(expense),
			Count:   count,
		},
	}
}

func TestHTTP_PeriodSummaries(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("Today", mock.Anything).Return(summaryFor("2024-03-13", "2024-03-13", "0", "20", 1), nil)
	svc.On("Weekly", mock.Anything).Return(summaryFor("2024-03-11", "2024-03-17", "100", "20", 2), nil)
	svc.On("Monthly", mock.Anything).Return(summaryFor("2024-03-01", "2024-03-31", "5000", "1200.5", 9), nil)
	api := newTestAPI(t, svc)

	cases := []struct {
		path      string
		startDate string
		net       string
	}{
		{"/api/stats/today", "2024-03-13", "-20.00"},
		{"/api/stats/weekly", "2024-03-11", "80.00"},
		{"/api/stats/monthly", "2024-03-01", "3799.50"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp := api.Get(tc.path)
			assert.Equal(t, http.StatusOK, resp.Code)
			var body PeriodSummary
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.startDate, body.StartDate)
			assert.Equal(t, tc.net, body.Totals.Net)
		})
	}
}

func TestHTTP_DateRange(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("DateRange", mock.Anything, day("2024-01-01"), day("2024-01-31")).
		Return(summaryFor("2024-01-01", "2024-01-31", "10", "4", 2), nil)

	resp := newTestAPI(t, svc).Get("/api/stats/date-range?startDate=2024-01-01&endDate=2024-01-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PeriodSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-01-31", body.EndDate)
	assert.Equal(t, "6.00", body.Totals.Net)
}

func TestHTTP_DateRange_Invalid(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		svc := new(mockStatsService)

		resp := newTestAPI(t, svc).Get("/api/stats/date-range?startDate=January&endDate=2024-01-31")

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		svc.AssertNotCalled(t, "DateRange", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reversed", func(t *testing.T) {
		svc := new(mockStatsService)
		svc.On("DateRange", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.Invalid("endDate", "The end date must be a date after or equal to start date."))

		resp := newTestAPI(t, svc).Get("/api/stats/date-range?startDate=2024-02-01&endDate=2024-01-01")

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "body.endDate")
	})
}

func TestHTTP_Balance_ByTypeInTypeOrder(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("Balance", mock.Anything).Return(&service.BalanceSummary{
		TotalBalance: decimal.RequireFromString("1500"),
		ByType: map[service.AccountType]decimal.Decimal{
			service.AccountTypeCash:    decimal.RequireFromString("500"),
			service.AccountTypeSavings: decimal.RequireFromString("1000"),
		},
		Accounts: []service.AccountBalance{
			{ID: uuid.Must(uuid.NewV4()), Name: "Savings", Type: service.AccountTypeSavings, CurrentBalance: decimal.RequireFromString("1000")},
			{ID: uuid.Must(uuid.NewV4()), Name: "Wallet", Type: service.AccountTypeCash, CurrentBalance: decimal.RequireFromString("500")},
		},
	}, nil)

	resp := newTestAPI(t, svc).Get("/api/stats/balance")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1500.00", body.TotalBalance)
	assert.Equal(t, []TypeBalance{
		{Type: "savings", Balance: "1000.00"},
		{Type: "cash", Balance: "500.00"},
	}, body.ByType)
	assert.Len(t, body.Accounts, 2)
}

func sampleDashboard() *service.Dashboard {
	return &service.Dashboard{
		Balance: service.BalanceSummary{TotalBalance: decimal.RequireFromString("850"), ByType: map[service.AccountType]decimal.Decimal{}},
		Today:   *summaryFor("2024-03-13", "2024-03-13", "0", "0", 0),
		Week:    *summaryFor("2024-03-11", "2024-03-17", "0", "150", 1),
		Month:   *summaryFor("2024-03-01", "2024-03-31", "1000", "150", 2),
		TopExpenseCategories: []service.CategoryShare{{
			CategoryID:   uuid.Must(uuid.NewV4()),
			CategoryName: "Groceries",
			Amount:       decimal.RequireFromString("150"),
			Count:        1,
			Percentage:   decimal.RequireFromString("100"),
		}},
	}
}

func TestHTTP_StatsDashboard_Headlines(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("Dashboard", mock.Anything).Return(sampleDashboard(), nil)

	resp := newTestAPI(t, svc).Get("/api/stats/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DashboardStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "850.00", body.TotalBalance)
	assert.Equal(t, "850.00", body.Month.Totals.Net)
	assert.Equal(t, "-150.00", body.Week.Totals.Net)
}

func TestHTTP_Dashboard(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("Dashboard", mock.Anything).Return(sampleDashboard(), nil)

	resp := newTestAPI(t, svc).Get("/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.TopExpenseCategories, 1)
	assert.Equal(t, "100.0", body.TopExpenseCategories[0].Percentage)
	assert.Empty(t, body.RecentTransactions)
	assert.Empty(t, body.Budgets)
}

func TestHTTP_Dashboard_Failure(t *testing.T) {
	svc := new(mockStatsService)
	svc.On("Dashboard", mock.Anything).Return(nil, errors.New("timeout"))

	resp := newTestAPI(t, svc).Get("/dashboard")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_Analytics(t *testing.T) {
	svc := new(mockStatsService)
	zero := ledger.Totals{Income: decimal.Zero, Expense: decimal.Zero}
	svc.On("Analytics", mock.Anything).Return(&service.Analytics{
		MonthlyTrend: []service.TrendPoint{
			{Period: day("2024-02-01"), Totals: zero},
			{Period: day("2024-03-01"), Totals: ledger.Totals{Income: decimal.RequireFromString("1000"), Expense: decimal.RequireFromString("150"), Count: 2}},
		},
		DailyTrend: []service.TrendPoint{{Period: day("2024-03-01"), Totals: zero}},
		AccountActivity: []service.AccountActivity{{
			AccountID:   uuid.Must(uuid.NewV4()),
			AccountName: "Wallet",
			Totals:      ledger.Totals{Income: decimal.RequireFromString("1000"), Expense: decimal.RequireFromString("150"), Count: 2},
		}},
	}, nil)

	resp := newTestAPI(t, svc).Get("/dashboard/analytics")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Analytics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.MonthlyTrend, 2)
	assert.Equal(t, "2024-02-01", body.MonthlyTrend[0].Period)
	assert.Equal(t, "0.00", body.MonthlyTrend[0].Totals.Income)
	assert.Equal(t, "850.00", body.MonthlyTrend[1].Totals.Net)
	require.Len(t, body.AccountActivity, 1)
	assert.Equal(t, "Wallet", body.AccountActivity[0].AccountName)
	assert.Empty(t, body.ExpenseByCategory)
}
