package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const (
	topCategoryLimit = 5
	trendMonths      = 12
)

// StatsService builds read-only summaries over transactions. All sums are
// driven by transaction_type; amounts are never interpreted by sign.
type StatsService struct {
	reader storage.Reader
	now    func() time.Time
}

// NewStatsService creates a new StatsService. now supplies the current time.
func NewStatsService(reader storage.Reader, now func() time.Time) *StatsService {
	return &StatsService{reader: reader, now: now}
}

func (s *StatsService) Today(ctx context.Context) (*PeriodSummary, error) {
	return s.summarize(ctx, ledger.Today(s.now()))
}

// Weekly summarises the Monday-to-Sunday week containing today.
func (s *StatsService) Weekly(ctx context.Context) (*PeriodSummary, error) {
	return s.summarize(ctx, ledger.Week(s.now()))
}

func (s *StatsService) Monthly(ctx context.Context) (*PeriodSummary, error) {
	return s.summarize(ctx, ledger.Month(s.now()))
}

// DateRange summarises an arbitrary inclusive range.
func (s *StatsService) DateRange(ctx context.Context, from, to time.Time) (*PeriodSummary, error) {
	r := ledger.DateRange{Start: ledger.Day(from), End: ledger.Day(to)}
	if r.End.Before(r.Start) {
		return nil, apperror.Invalid("endDate", "The end date must be a date after or equal to start date.")
	}
	return s.summarize(ctx, r)
}

// Balance totals the current balances of the active accounts.
func (s *StatsService) Balance(ctx context.Context) (*BalanceSummary, error) {
	defer logging.Timed(ctx, "stats.balance")()

	rows, err := s.reader.Accounts.List(ctx, &sqlconfig.AccountFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	summary := &BalanceSummary{
		TotalBalance: decimal.Zero,
		ByType:       map[AccountType]decimal.Decimal{},
		Accounts:     make([]AccountBalance, len(rows)),
	}
	for i, row := range rows {
		accountType := AccountType(row.Type)
		summary.TotalBalance = summary.TotalBalance.Add(row.CurrentBalance)
		summary.ByType[accountType] = summary.ByType[accountType].Add(row.CurrentBalance)
		summary.Accounts[i] = AccountBalance{
			ID:             row.ID,
			Code:           row.Code,
			Name:           row.Name,
			Type:           accountType,
			CurrentBalance: row.CurrentBalance,
			CreditLimit:    row.CreditLimit,
		}
	}
	return summary, nil
}

// Dashboard gathers the dashboard figures. The independent queries run
// concurrently; the first failure cancels the rest.
func (s *StatsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	month := ledger.Month(now)
	dashboard := &Dashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := s.Balance(gctx)
		if err != nil {
			return err
		}
		dashboard.Balance = *balance
		return nil
	})
	g.Go(func() error {
		today, err := s.summarize(gctx, ledger.Today(now))
		if err != nil {
			return err
		}
		dashboard.Today = *today
		return nil
	})
	g.Go(func() error {
		week, err := s.summarize(gctx, ledger.Week(now))
		if err != nil {
			return err
		}
		dashboard.Week = *week
		return nil
	})
	g.Go(func() error {
		summary, err := s.summarize(gctx, month)
		if err != nil {
			return err
		}
		dashboard.Month = *summary
		return nil
	})
	g.Go(func() error {
		rows, err := s.reader.Transactions.List(gctx, &sqlconfig.TransactionFilter{Limit: recentTransactionLimit})
		if err != nil {
			return err
		}
		rows, _ = trimPage(rows, recentTransactionLimit, 0)
		dashboard.RecentTransactions = transactionsFromStorage(rows)
		return nil
	})
	g.Go(func() error {
		shares, err := s.categoryShares(gctx, month, ledger.TransactionTypeExpense)
		if err != nil {
			return err
		}
		if len(shares) > topCategoryLimit {
			shares = shares[:topCategoryLimit]
		}
		dashboard.TopExpenseCategories = shares
		return nil
	})
	g.Go(func() error {
		budgets, err := currentBudgets(gctx, s.reader, now)
		if err != nil {
			return err
		}
		dashboard.Budgets = budgets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// Analytics builds the twelve month trend, the daily trend of the current
// month and the year-to-date breakdowns by category and account.
func (s *StatsService) Analytics(ctx context.Context) (*Analytics, error) {
	now := s.now()
	months := ledger.LastMonths(now, trendMonths)
	trendRange := ledger.DateRange{Start: months[0].Start, End: months[len(months)-1].End}
	month := ledger.Month(now)
	year := ledger.Year(now)
	analytics := &Analytics{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sums, err := s.reader.Transactions.SumByPeriod(gctx, rangeFilter(trendRange), sqlconfig.GranularityMonth)
		if err != nil {
			return err
		}
		starts := make([]time.Time, len(months))
		for i, m := range months {
			starts[i] = m.Start
		}
		analytics.MonthlyTrend = fillTrend(starts, sums)
		return nil
	})
	g.Go(func() error {
		sums, err := s.reader.Transactions.SumByPeriod(gctx, rangeFilter(month), sqlconfig.GranularityDay)
		if err != nil {
			return err
		}
		var days []time.Time
		for day := month.Start; !day.After(month.End); day = day.AddDate(0, 0, 1) {
			days = append(days, day)
		}
		analytics.DailyTrend = fillTrend(days, sums)
		return nil
	})
	g.Go(func() error {
		shares, err := s.categoryShares(gctx, year, ledger.TransactionTypeExpense)
		analytics.ExpenseByCategory = shares
		return err
	})
	g.Go(func() error {
		shares, err := s.categoryShares(gctx, year, ledger.TransactionTypeIncome)
		analytics.IncomeByCategory = shares
		return err
	})
	g.Go(func() error {
		sums, err := s.reader.Transactions.SumByAccount(gctx, rangeFilter(year))
		if err != nil {
			return err
		}
		activity := make([]AccountActivity, len(sums))
		for i, sum := range sums {
			activity[i] = AccountActivity{
				AccountID:   sum.AccountID,
				AccountName: sum.AccountName,
				Totals:      ledger.Totals{Income: sum.Income, Expense: sum.Expense, Count: sum.Count},
			}
		}
		analytics.AccountActivity = activity
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return analytics, nil
}

func (s *StatsService) summarize(ctx context.Context, r ledger.DateRange) (*PeriodSummary, error) {
	totals, err := s.reader.Transactions.Totals(ctx, rangeFilter(r))
	if err != nil {
		return nil, err
	}
	return &PeriodSummary{Range: r, Totals: totals}, nil
}

// categoryShares totals one transaction type per category over r, largest
// first.
func (s *StatsService) categoryShares(ctx context.Context, r ledger.DateRange, transactionType ledger.TransactionType) ([]CategoryShare, error) {
	filter := rangeFilter(r)
	filter.Type = string(transactionType)

	sums, err := s.reader.Transactions.SumByCategory(ctx, filter)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, sum := range sums {
		total = total.Add(sum.Amount)
	}

	shares := make([]CategoryShare, len(sums))
	for i, sum := range sums {
		percentage := decimal.Zero
		if total.IsPositive() {
			percentage = sum.Amount.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
		}
		shares[i] = CategoryShare{
			CategoryID:   sum.CategoryID,
			CategoryName: sum.CategoryName,
			Amount:       sum.Amount,
			Count:        sum.Count,
			Percentage:   percentage,
		}
	}
	return shares, nil
}

func rangeFilter(r ledger.DateRange) *sqlconfig.TransactionFilter {
	start, end := r.Start, r.End
	return &sqlconfig.TransactionFilter{DateFrom: &start, DateTo: &end}
}

// fillTrend lays sums out over periods, with zero totals where a period had
// no transactions.
func fillTrend(periods []time.Time, sums []*sqlconfig.PeriodSum) []TrendPoint {
	byPeriod := make(map[time.Time]*sqlconfig.PeriodSum, len(sums))
	for _, sum := range sums {
		byPeriod[ledger.Day(sum.Period)] = sum
	}

	points := make([]TrendPoint, len(periods))
	for i, period := range periods {
		totals := ledger.Totals{Income: decimal.Zero, Expense: decimal.Zero}
		if sum, ok := byPeriod[period]; ok {
			totals = ledger.Totals{Income: sum.Income, Expense: sum.Expense, Count: sum.Count}
		}
		points[i] = TrendPoint{Period: period, Totals: totals}
	}
	return points
}
