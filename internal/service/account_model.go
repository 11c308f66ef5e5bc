package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// AccountType represents an account type in the service layer.
type AccountType string

const (
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCurrent    AccountType = "current"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
)

// AccountTypes lists the account types in display order.
var AccountTypes = []AccountType{
	AccountTypeSavings,
	AccountTypeCurrent,
	AccountTypeCreditCard,
	AccountTypeCash,
	AccountTypeInvestment,
}

func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Account represents an account in the service layer.
type Account struct {
	ID             uuid.UUID
	Code           string
	Name           string
	Type           AccountType
	BankName       string
	AccountNumber  string
	IFSCCode       string
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	CreditLimit    decimal.NullDecimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountInput is the writable part of an account, used by create and update.
type AccountInput struct {
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

// AccountQuery narrows the account list.
type AccountQuery struct {
	ActiveOnly bool
	Type       AccountType
	Search     string
}

// AccountDetail is an account with the totals of its transactions and the
// most recent of them.
type AccountDetail struct {
	Account
	Totals             ledger.Totals
	RecentTransactions []Transaction
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:             row.ID,
		Code:           row.Code,
		Name:           row.Name,
		Type:           AccountType(row.Type),
		BankName:       row.BankName,
		AccountNumber:  row.AccountNumber,
		IFSCCode:       row.IFSCCode,
		OpeningBalance: row.OpeningBalance,
		CurrentBalance: row.CurrentBalance,
		CreditLimit:    row.CreditLimit,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func accountsFromStorage(rows []*sqlconfig.Account) []Account {
	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts
}
