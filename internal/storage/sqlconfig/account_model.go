package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCurrent    AccountType = "current"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents an account record.
type Account struct {
	ID             uuid.UUID           `db:"id"`
	Code           string              `db:"code"`
	Name           string              `db:"name"`
	Type           AccountType         `db:"account_type"`
	BankName       string              `db:"bank_name"`
	AccountNumber  string              `db:"account_number"`
	IFSCCode       string              `db:"ifsc_code"`
	OpeningBalance decimal.Decimal     `db:"opening_balance"`
	CurrentBalance decimal.Decimal     `db:"current_balance"`
	CreditLimit    decimal.NullDecimal `db:"credit_limit"`
	IsActive       bool                `db:"is_active"`
	CreatedAt      time.Time           `db:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at"`
}

// AccountCreate is the input for creating a new account. The current balance
// starts at the opening balance.
type AccountCreate struct {
	Code           string
	Name           string
	Type           AccountType
	BankName       string
	AccountNumber  string
	IFSCCode       string
	OpeningBalance decimal.Decimal
	CreditLimit    decimal.NullDecimal
	IsActive       bool
}

// AccountUpdate holds the columns to change; unset fields are left alone.
type AccountUpdate struct {
	Code           omit.Val[string]
	Name           omit.Val[string]
	Type           omit.Val[AccountType]
	BankName       omit.Val[string]
	AccountNumber  omit.Val[string]
	IFSCCode       omit.Val[string]
	OpeningBalance omit.Val[decimal.Decimal]
	CreditLimit    omit.Val[decimal.NullDecimal]
	IsActive       omit.Val[bool]
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	ActiveOnly bool
	Type       AccountType
	Search     string
	Limit      int
	Offset     int
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IAccountTable --inpackage --with-expecter --filename mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByCode(ctx context.Context, code string) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
