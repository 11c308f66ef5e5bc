package service

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const recentTransactionLimit = 10

// AccountService handles account business logic.
type AccountService struct {
	reader    storage.Reader
	processor actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader storage.Reader, processor actionProcessor) *AccountService {
	return &AccountService{reader: reader, processor: processor}
}

// CreateAccount creates a new account and returns its ID. The current balance
// starts at the opening balance.
func (s *AccountService) CreateAccount(ctx context.Context, input AccountInput) (uuid.UUID, error) {
	input = normalizeAccountInput(input)
	if err := validateAccountInput(input); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateAccount{Create: sqlconfig.AccountCreate{
		Code:           input.Code,
		Name:           input.Name,
		Type:           sqlconfig.AccountType(input.Type),
		BankName:       input.BankName,
		AccountNumber:  input.AccountNumber,
		IFSCCode:       input.IFSCCode,
		OpeningBalance: input.OpeningBalance,
		CreditLimit:    input.CreditLimit,
		IsActive:       input.IsActive,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.reader.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("account")
	}
	account := accountFromStorage(row)
	return &account, nil
}

// GetAccountDetail retrieves an account with its transaction totals and
// latest transactions.
func (s *AccountService) GetAccountDetail(ctx context.Context, id uuid.UUID) (*AccountDetail, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	totals, err := s.reader.Transactions.Totals(ctx, &sqlconfig.TransactionFilter{AccountID: &id})
	if err != nil {
		return nil, err
	}

	recent, err := s.reader.Transactions.List(ctx, &sqlconfig.TransactionFilter{AccountID: &id, Limit: recentTransactionLimit})
	if err != nil {
		return nil, err
	}
	recent, _ = trimPage(recent, recentTransactionLimit, 0)

	return &AccountDetail{
		Account:            *account,
		Totals:             totals,
		RecentTransactions: transactionsFromStorage(recent),
	}, nil
}

// ListAccounts returns a page of accounts ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context, query AccountQuery, cursor *Cursor) ([]Account, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	rows, err := s.reader.Accounts.List(ctx, &sqlconfig.AccountFilter{
		ActiveOnly: query.ActiveOnly,
		Type:       sqlconfig.AccountType(query.Type),
		Search:     strings.TrimSpace(query.Search),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit, offset)
	return accountsFromStorage(rows), next, nil
}

// ActiveAccounts returns every active account, for pickers and the JSON API.
func (s *AccountService) ActiveAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.reader.Accounts.List(ctx, &sqlconfig.AccountFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}

// UpdateAccount replaces the writable fields of an account.
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, input AccountInput) error {
	input = normalizeAccountInput(input)
	if err := validateAccountInput(input); err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.UpdateAccount{ID: id, Update: sqlconfig.AccountUpdate{
		Code:           omit.From(input.Code),
		Name:           omit.From(input.Name),
		Type:           omit.From(sqlconfig.AccountType(input.Type)),
		BankName:       omit.From(input.BankName),
		AccountNumber:  omit.From(input.AccountNumber),
		IFSCCode:       omit.From(input.IFSCCode),
		OpeningBalance: omit.From(input.OpeningBalance),
		CreditLimit:    omit.From(input.CreditLimit),
		IsActive:       omit.From(input.IsActive),
	}})
}

// DeleteAccount removes an account. Accounts with transactions are kept and
// a conflict is returned.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteAccount{ID: id})
}

// ToggleAccountStatus flips the active flag and returns the new value.
func (s *AccountService) ToggleAccountStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.ToggleAccountStatus{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}
	return action.IsActive, nil
}

// RecomputeBalances rebuilds current balances from transaction history for
// one account, or all of them when accountID is nil. It returns how many
// accounts were recomputed.
func (s *AccountService) RecomputeBalances(ctx context.Context, accountID *uuid.UUID) (int, error) {
	action := &actions.RecomputeBalances{AccountID: accountID}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Recomputed, nil
}

func normalizeAccountInput(input AccountInput) AccountInput {
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)
	input.BankName = strings.TrimSpace(input.BankName)
	input.AccountNumber = strings.TrimSpace(input.AccountNumber)
	input.IFSCCode = strings.ToUpper(strings.TrimSpace(input.IFSCCode))
	// A credit limit only means something on a credit card.
	if input.Type != AccountTypeCreditCard {
		input.CreditLimit = decimal.NullDecimal{}
	}
	return input
}

func validateAccountInput(input AccountInput) error {
	v := newValidator()
	v.required("code", input.Code)
	v.maxLen("code", input.Code, 50)
	v.required("name", input.Name)
	v.maxLen("name", input.Name, 255)
	v.oneOf("type", input.Type.Valid())
	v.maxLen("bankName", input.BankName, 255)
	v.maxLen("accountNumber", input.AccountNumber, 50)
	v.maxLen("ifscCode", input.IFSCCode, 20)
	v.money("openingBalance", input.OpeningBalance)
	if input.CreditLimit.Valid {
		v.nonNegative("creditLimit", input.CreditLimit.Decimal)
		v.money("creditLimit", input.CreditLimit.Decimal)
	}
	return v.err()
}
