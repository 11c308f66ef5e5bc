package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "net_banking"
	PaymentMethodCheque     PaymentMethod = "cheque"
	PaymentMethodWallet     PaymentMethod = "wallet"
	PaymentMethodOther      PaymentMethod = "other"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodDebitCard,
	PaymentMethodCreditCard,
	PaymentMethodUPI,
	PaymentMethodNetBanking,
	PaymentMethodCheque,
	PaymentMethodWallet,
	PaymentMethodOther,
}

func (p PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if p == known {
			return true
		}
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

var TransactionStatuses = []TransactionStatus{
	TransactionStatusCompleted,
	TransactionStatusPending,
	TransactionStatusCancelled,
}

func (s TransactionStatus) Valid() bool {
	for _, known := range TransactionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	AccountName     string
	CategoryID      uuid.UUID
	CategoryName    string
	Type            ledger.TransactionType
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	PaymentMethod   PaymentMethod
	ReferenceNumber string
	Status          TransactionStatus
	Tags            []string
	Location        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionInput is the writable part of a transaction. Tags is the raw
// comma separated list.
type TransactionInput struct {
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Type            ledger.TransactionType
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	PaymentMethod   PaymentMethod
	ReferenceNumber string
	Status          TransactionStatus
	Tags            string
	Location        string
}

// TransactionQuery holds the list filters. Zero values are ignored; set
// criteria combine with AND. A top-level CategoryID also matches its
// sub-categories.
type TransactionQuery struct {
	Search        string
	CategoryID    *uuid.UUID
	AccountID     *uuid.UUID
	DateFrom      *time.Time
	DateTo        *time.Time
	PaymentMethod PaymentMethod
	Status        TransactionStatus
	Type          ledger.TransactionType
	Sort          sqlconfig.TransactionSort
}

// TransactionPage is one page of a filtered list. Totals cover every
// transaction matching the filters, not just this page.
type TransactionPage struct {
	Transactions []Transaction
	Totals       ledger.Totals
	Next         *Cursor
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		AccountName:     row.AccountName,
		CategoryID:      row.CategoryID,
		CategoryName:    row.CategoryName,
		Type:            ledger.TransactionType(row.TransactionType),
		Amount:          row.Amount,
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
		PaymentMethod:   PaymentMethod(row.PaymentMethod),
		ReferenceNumber: row.ReferenceNumber,
		Status:          TransactionStatus(row.Status),
		Tags:            ledger.SplitTags(row.Tags),
		Location:        row.Location,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func transactionsFromStorage(rows []*sqlconfig.Transaction) []Transaction {
	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions
}
