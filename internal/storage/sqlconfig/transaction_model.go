package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// Transaction represents a transaction record with its account and category
// names joined in.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	AccountID       uuid.UUID       `db:"account_id"`
	AccountName     string          `db:"account_name"`
	CategoryID      uuid.UUID       `db:"category_id"`
	CategoryName    string          `db:"category_name"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	PaymentMethod   string          `db:"payment_method"`
	ReferenceNumber string          `db:"reference_number"`
	Status          string          `db:"status"`
	Tags            string          `db:"tags"`
	Location        string          `db:"location"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	TransactionType string
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	PaymentMethod   string
	ReferenceNumber string
	Status          string
	Tags            string
	Location        string
}

// TransactionUpdate holds the columns to change; unset fields are left alone.
type TransactionUpdate struct {
	AccountID       omit.Val[uuid.UUID]
	CategoryID      omit.Val[uuid.UUID]
	TransactionType omit.Val[string]
	Amount          omit.Val[decimal.Decimal]
	Description     omit.Val[string]
	TransactionDate omit.Val[time.Time]
	PaymentMethod   omit.Val[string]
	ReferenceNumber omit.Val[string]
	Status          omit.Val[string]
	Tags            omit.Val[string]
	Location        omit.Val[string]
}

type TransactionSort string

const (
	SortDateDesc   TransactionSort = "date_desc"
	SortDateAsc    TransactionSort = "date_asc"
	SortAmountDesc TransactionSort = "amount_desc"
	SortAmountAsc  TransactionSort = "amount_asc"
	SortCategory   TransactionSort = "category"
)

func (s TransactionSort) Valid() bool {
	switch s {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc, SortCategory:
		return true
	}
	return false
}

// TransactionFilter specifies filters for listing and summing transactions.
// All set criteria are combined with AND; zero values are ignored. Sort,
// Limit and Offset only apply to List.
type TransactionFilter struct {
	Search        string
	CategoryIDs   []uuid.UUID
	AccountID     *uuid.UUID
	DateFrom      *time.Time
	DateTo        *time.Time
	PaymentMethod string
	Status        string
	Type          string

	Sort   TransactionSort
	Limit  int
	Offset int
}

// Unpaged returns a copy of the filter without sort or pagination, the form
// every aggregate query uses.
func (f TransactionFilter) Unpaged() TransactionFilter {
	f.Sort = ""
	f.Limit = 0
	f.Offset = 0
	return f
}

// CategorySum is the total of one category's transactions.
type CategorySum struct {
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	Count        int64           `db:"transaction_count"`
}

// AccountSum is the income/expense summary of one account's transactions.
type AccountSum struct {
	AccountID   uuid.UUID       `db:"account_id"`
	AccountName string          `db:"account_name"`
	Income      decimal.Decimal `db:"income"`
	Expense     decimal.Decimal `db:"expense"`
	Count       int64           `db:"transaction_count"`
}

// PeriodSum is the income/expense summary of one day or month.
type PeriodSum struct {
	Period  time.Time       `db:"period"`
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
	Count   int64           `db:"transaction_count"`
}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Totals(ctx context.Context, filter *TransactionFilter) (ledger.Totals, error)
	SumByCategory(ctx context.Context, filter *TransactionFilter) ([]*CategorySum, error)
	SumByAccount(ctx context.Context, filter *TransactionFilter) ([]*AccountSum, error)
	SumByPeriod(ctx context.Context, filter *TransactionFilter, granularity Granularity) ([]*PeriodSum, error)
}
