package stats

import (
	"sort"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// PeriodSummary is the income and expense over one inclusive date range.
type PeriodSummary struct {
	StartDate string        `json:"startDate" doc:"YYYY-MM-DD"`
	EndDate   string        `json:"endDate" doc:"YYYY-MM-DD"`
	Totals    common.Totals `json:"totals"`
}

type AccountBalance struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	CurrentBalance string  `json:"currentBalance"`
	CreditLimit    *string `json:"creditLimit"`
}

// TypeBalance is the summed balance of one account type.
type TypeBalance struct {
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

type BalanceSummary struct {
	TotalBalance string           `json:"totalBalance" doc:"Sum of active account balances"`
	ByType       []TypeBalance    `json:"byType" doc:"Balances per account type, in account type order"`
	Accounts     []AccountBalance `json:"accounts"`
}

type CategoryShare struct {
	CategoryID   string `json:"categoryID"`
	CategoryName string `json:"categoryName"`
	Amount       string `json:"amount"`
	Count        int64  `json:"count"`
	Percentage   string `json:"percentage" doc:"Share of the listed total, one decimal place"`
}

type AccountActivity struct {
	AccountID   string        `json:"accountID"`
	AccountName string        `json:"accountName"`
	Totals      common.Totals `json:"totals"`
}

// TrendPoint is the income and expense of one day or month. Period is the
// first day of the bucket.
type TrendPoint struct {
	Period string        `json:"period" doc:"YYYY-MM-DD"`
	Totals common.Totals `json:"totals"`
}

type Dashboard struct {
	Balance              BalanceSummary            `json:"balance"`
	Today                PeriodSummary             `json:"today"`
	Week                 PeriodSummary             `json:"week"`
	Month                PeriodSummary             `json:"month"`
	RecentTransactions   []transaction.Transaction `json:"recentTransactions"`
	TopExpenseCategories []CategoryShare           `json:"topExpenseCategories" doc:"Largest expense categories of the month"`
	Budgets              []budget.Budget           `json:"budgets" doc:"Active budgets covering today"`
}

type Analytics struct {
	MonthlyTrend      []TrendPoint      `json:"monthlyTrend" doc:"Last twelve months, oldest first"`
	DailyTrend        []TrendPoint      `json:"dailyTrend" doc:"Every day of the current month"`
	ExpenseByCategory []CategoryShare   `json:"expenseByCategory" doc:"Year to date"`
	IncomeByCategory  []CategoryShare   `json:"incomeByCategory" doc:"Year to date"`
	AccountActivity   []AccountActivity `json:"accountActivity" doc:"Year to date"`
}

func fromPeriodSummary(s service.PeriodSummary) PeriodSummary {
	return PeriodSummary{
		StartDate: common.Date(s.Range.Start),
		EndDate:   common.Date(s.Range.End),
		Totals:    common.TotalsFrom(s.Totals),
	}
}

func fromBalanceSummary(s service.BalanceSummary) BalanceSummary {
	out := BalanceSummary{
		TotalBalance: common.Money(s.TotalBalance),
		ByType:       []TypeBalance{},
		Accounts:     make([]AccountBalance, len(s.Accounts)),
	}
	for _, t := range service.AccountTypes {
		if balance, ok := s.ByType[t]; ok {
			out.ByType = append(out.ByType, TypeBalance{Type: string(t), Balance: common.Money(balance)})
		}
	}
	// Types outside the known list still show up, after the known ones.
	var extra []TypeBalance
	for t, balance := range s.ByType {
		if !t.Valid() {
			extra = append(extra, TypeBalance{Type: string(t), Balance: common.Money(balance)})
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Type < extra[j].Type })
	out.ByType = append(out.ByType, extra...)

	for i, a := range s.Accounts {
		out.Accounts[i] = AccountBalance{
			ID:             a.ID.String(),
			Code:           a.Code,
			Name:           a.Name,
			Type:           string(a.Type),
			CurrentBalance: common.Money(a.CurrentBalance),
			CreditLimit:    common.NullMoney(a.CreditLimit),
		}
	}
	return out
}

func fromShares(shares []service.CategoryShare) []CategoryShare {
	out := make([]CategoryShare, len(shares))
	for i, s := range shares {
		out[i] = CategoryShare{
			CategoryID:   s.CategoryID.String(),
			CategoryName: s.CategoryName,
			Amount:       common.Money(s.Amount),
			Count:        s.Count,
			Percentage:   s.Percentage.StringFixed(1),
		}
	}
	return out
}

func fromTrend(points []service.TrendPoint) []TrendPoint {
	out := make([]TrendPoint, len(points))
	for i, p := range points {
		out[i] = TrendPoint{Period: common.Date(p.Period), Totals: common.TotalsFrom(p.Totals)}
	}
	return out
}

func fromDashboard(d service.Dashboard) Dashboard {
	return Dashboard{
		Balance:              fromBalanceSummary(d.Balance),
		Today:                fromPeriodSummary(d.Today),
		Week:                 fromPeriodSummary(d.Week),
		Month:                fromPeriodSummary(d.Month),
		RecentTransactions:   transaction.FromServiceList(d.RecentTransactions),
		TopExpenseCategories: fromShares(d.TopExpenseCategories),
		Budgets:              budget.FromServiceList(d.Budgets),
	}
}

func fromAnalytics(a service.Analytics) Analytics {
	activity := make([]AccountActivity, len(a.AccountActivity))
	for i, act := range a.AccountActivity {
		activity[i] = AccountActivity{
			AccountID:   act.AccountID.String(),
			AccountName: act.AccountName,
			Totals:      common.TotalsFrom(act.Totals),
		}
	}
	return Analytics{
		MonthlyTrend:      fromTrend(a.MonthlyTrend),
		DailyTrend:        fromTrend(a.DailyTrend),
		ExpenseByCategory: fromShares(a.ExpenseByCategory),
		IncomeByCategory:  fromShares(a.IncomeByCategory),
		AccountActivity:   activity,
	}
}
