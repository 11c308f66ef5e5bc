package budget

import (
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Progress is the spend position of a budget. Percentage is capped at 100;
// spend past the cap is reported in Overspent.
type Progress struct {
	Spent      string `json:"spent"`
	Remaining  string `json:"remaining"`
	Overspent  string `json:"overspent"`
	Percentage string `json:"percentage" doc:"Share of the amount spent, one decimal place"`
	Status     string `json:"status" doc:"success below 80%, warning from 80%, danger from 100%"`
}

// Budget is the API response model for a budget.
type Budget struct {
	ID           string   `json:"id" doc:"Budget UUID"`
	CategoryID   string   `json:"categoryID"`
	CategoryName string   `json:"categoryName"`
	Name         string   `json:"name"`
	Amount       string   `json:"amount" doc:"Decimal spending cap"`
	PeriodType   string   `json:"periodType" doc:"monthly, yearly or custom"`
	StartDate    string   `json:"startDate" doc:"YYYY-MM-DD"`
	EndDate      string   `json:"endDate" doc:"YYYY-MM-DD, inclusive"`
	IsActive     bool     `json:"isActive"`
	IsCurrent    bool     `json:"isCurrent" doc:"Whether today falls inside the budget range"`
	Notes        string   `json:"notes"`
	Progress     Progress `json:"progress"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// BudgetBody is the request body for creating or replacing a budget.
type BudgetBody struct {
	CategoryID string `json:"categoryID" format:"uuid"`
	Name       string `json:"name" minLength:"1" maxLength:"255"`
	Amount     string `json:"amount" doc:"Decimal spending cap, greater than zero"`
	PeriodType string `json:"periodType" enum:"monthly,yearly,custom"`
	StartDate  string `json:"startDate" format:"date" doc:"YYYY-MM-DD"`
	EndDate    string `json:"endDate,omitempty" doc:"YYYY-MM-DD; derived for monthly and yearly budgets when omitted"`
	IsActive   *bool  `json:"isActive,omitempty" doc:"Defaults to true"`
	Notes      string `json:"notes,omitempty"`
}

type BudgetIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Budget UUID"`
}

// PeriodTypes lists the selectable period types.
var PeriodTypes = []string{
	string(ledger.PeriodMonthly),
	string(ledger.PeriodYearly),
	string(ledger.PeriodCustom),
}

func parseBudgetBody(body BudgetBody) (service.BudgetInput, error) {
	p := common.NewParser()
	input := service.BudgetInput{
		CategoryID: p.UUID("categoryID", body.CategoryID),
		Name:       body.Name,
		Amount:     p.Decimal("amount", body.Amount),
		PeriodType: ledger.PeriodType(body.PeriodType),
		StartDate:  p.RequiredDate("startDate", body.StartDate),
		EndDate:    p.Date("endDate", body.EndDate),
		IsActive:   body.IsActive == nil || *body.IsActive,
		Notes:      body.Notes,
	}
	return input, p.Err()
}

// FromService converts a service budget to its API form.
func FromService(b service.Budget) Budget {
	return Budget{
		ID:           b.ID.String(),
		CategoryID:   b.CategoryID.String(),
		CategoryName: b.CategoryName,
		Name:         b.Name,
		Amount:       common.Money(b.Amount),
		PeriodType:   string(b.PeriodType),
		StartDate:    common.Date(b.StartDate),
		EndDate:      common.Date(b.EndDate),
		IsActive:     b.IsActive,
		IsCurrent:    b.IsCurrent,
		Notes:        b.Notes,
		Progress: Progress{
			Spent:      common.Money(b.Progress.Spent),
			Remaining:  common.Money(b.Progress.Remaining),
			Overspent:  common.Money(b.Progress.Overspent),
			Percentage: b.Progress.Percentage.StringFixed(1),
			Status:     string(b.Progress.Status),
		},
		CreatedAt: common.Timestamp(b.CreatedAt),
		UpdatedAt: common.Timestamp(b.UpdatedAt),
	}
}

func FromServiceList(budgets []service.Budget) []Budget {
	out := make([]Budget, len(budgets))
	for i, b := range budgets {
		out[i] = FromService(b)
	}
	return out
}
