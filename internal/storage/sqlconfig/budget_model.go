package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record with its category name joined in.
type Budget struct {
	ID           uuid.UUID       `db:"id"`
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Name         string          `db:"name"`
	Amount       decimal.Decimal `db:"amount"`
	PeriodType   string          `db:"period_type"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	IsActive     bool            `db:"is_active"`
	Notes        string          `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type BudgetCreate struct {
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	PeriodType string
	StartDate  time.Time
	EndDate    time.Time
	IsActive   bool
	Notes      string
}

type BudgetUpdate struct {
	CategoryID omit.Val[uuid.UUID]
	Name       omit.Val[string]
	Amount     omit.Val[decimal.Decimal]
	PeriodType omit.Val[string]
	StartDate  omit.Val[time.Time]
	EndDate    omit.Val[time.Time]
	IsActive   omit.Val[bool]
	Notes      omit.Val[string]
}

// BudgetFilter specifies filters for listing budgets.
type BudgetFilter struct {
	CategoryID *uuid.UUID
	ActiveOnly bool
	// ExcludeID leaves one budget out, used when re-checking a budget
	// against its siblings.
	ExcludeID *uuid.UUID
	// ActiveOn keeps budgets whose date range contains the day.
	ActiveOn *time.Time
	Limit    int
	Offset   int
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --inpackage --with-expecter --filename mock_IBudgetTable.go
type IBudgetTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
}
