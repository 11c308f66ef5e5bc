package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newAccountTestService(t *testing.T) (*AccountService, mocks, *fakeProcessor) {
	t.Helper()
	reader, m := newReader(t)
	processor := &fakeProcessor{}
	return NewAccountService(reader, processor), m, processor
}

func makeStorageAccounts(n int) []*sqlconfig.Account {
	rows := make([]*sqlconfig.Account, n)
	for i := range rows {
		rows[i] = &sqlconfig.Account{
			ID:             newUUID(),
			Code:           "ACC",
			Name:           "Checking",
			Type:           sqlconfig.AccountTypeSavings,
			OpeningBalance: d("100.00"),
			CurrentBalance: d("100.00"),
			IsActive:       true,
		}
	}
	return rows
}

// -- CreateAccount tests --

func TestCreateAccount_Success(t *testing.T) {
	svc, _, processor := newAccountTestService(t)
	expectedID := newUUID()
	processor.perform = func(action actions.IAction) error {
		action.(*actions.CreateAccount).CreatedID = expectedID
		return nil
	}

	id, err := svc.CreateAccount(context.Background(), AccountInput{
		Code:           " HDFC01 ",
		Name:           "HDFC Savings",
		Type:           AccountTypeSavings,
		IFSCCode:       "hdfc0001",
		OpeningBalance: d("1000.00"),
		CreditLimit:    decimal.NewNullDecimal(d("5000")),
		IsActive:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, expectedID, id)

	create := processor.last(t).(*actions.CreateAccount).Create
	assert.Equal(t, "HDFC01", create.Code)
	assert.Equal(t, "HDFC0001", create.IFSCCode)
	assert.Equal(t, sqlconfig.AccountTypeSavings, create.Type)
	assert.False(t, create.CreditLimit.Valid, "credit limit is dropped for non credit card accounts")
}

func TestCreateAccount_Validation(t *testing.T) {
	svc, _, processor := newAccountTestService(t)

	_, err := svc.CreateAccount(context.Background(), AccountInput{
		Type:           "loan",
		OpeningBalance: d("10.005"),
	})
	assertFields(t, err, "code", "name", "type", "openingBalance")
	assert.Empty(t, processor.processed)
}

func TestCreateAccount_CreditLimitKeptForCreditCards(t *testing.T) {
	svc, _, processor := newAccountTestService(t)

	_, err := svc.CreateAccount(context.Background(), AccountInput{
		Code:        "CC",
		Name:        "Card",
		Type:        AccountTypeCreditCard,
		CreditLimit: decimal.NewNullDecimal(d("50000")),
	})
	require.NoError(t, err)
	assert.True(t, processor.last(t).(*actions.CreateAccount).Create.CreditLimit.Valid)
}

func TestCreateAccount_ProcessorError(t *testing.T) {
	svc, _, processor := newAccountTestService(t)
	processor.perform = func(actions.IAction) error { return errors.New("insert failed") }

	id, err := svc.CreateAccount(context.Background(), AccountInput{Code: "C", Name: "Cash", Type: AccountTypeCash})
	assert.EqualError(t, err, "insert failed")
	assert.Equal(t, uuid.Nil, id)
}

// -- GetAccount tests --

func TestGetAccount_NotFound(t *testing.T) {
	svc, m, _ := newAccountTestService(t)
	id := newUUID()
	m.accounts.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	_, err := svc.GetAccount(context.Background(), id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetAccountDetail(t *testing.T) {
	svc, m, _ := newAccountTestService(t)
	row := makeStorageAccounts(1)[0]

	m.accounts.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)
	m.transactions.EXPECT().Totals(mock.Anything, &sqlconfig.TransactionFilter{AccountID: &row.ID}).
		Return(ledger.Totals{Income: d("50"), Expense: d("200"), Count: 2}, nil)
	m.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == row.ID && f.Limit == recentTransactionLimit
	})).Return([]*sqlconfig.Transaction{{ID: newUUID(), Tags: "a,b"}}, nil)

	detail, err := svc.GetAccountDetail(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, detail.ID)
	assert.True(t, detail.Totals.Net().Equal(d("-150")))
	require.Len(t, detail.RecentTransactions, 1)
	assert.Equal(t, []string{"a", "b"}, detail.RecentTransactions[0].Tags)
}

// -- ListAccounts tests --

func TestListAccounts_FirstPageHasNext(t *testing.T) {
	svc, m, _ := newAccountTestService(t)

	m.accounts.EXPECT().List(mock.Anything, &sqlconfig.AccountFilter{Limit: 2, Offset: 0}).
		Return(makeStorageAccounts(3), nil)

	accounts, next, err := svc.ListAccounts(context.Background(), AccountQuery{}, &Cursor{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	require.NotNil(t, next)
	assert.Equal(t, Cursor{Position: 2, Limit: 2}, *next)
}

func TestListAccounts_LastPage(t *testing.T) {
	svc, m, _ := newAccountTestService(t)

	m.accounts.EXPECT().List(mock.Anything, &sqlconfig.AccountFilter{ActiveOnly: true, Search: "hdfc", Limit: 20, Offset: 20}).
		Return(makeStorageAccounts(1), nil)

	accounts, next, err := svc.ListAccounts(context.Background(), AccountQuery{ActiveOnly: true, Search: " hdfc "}, &Cursor{Position: 20})
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Nil(t, next)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, m, _ := newAccountTestService(t)
	m.accounts.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, _, err := svc.ListAccounts(context.Background(), AccountQuery{}, nil)
	assert.EqualError(t, err, "db down")
}

// -- write delegation tests --

func TestUpdateAccount_SetsEveryField(t *testing.T) {
	svc, _, processor := newAccountTestService(t)
	id := newUUID()

	err := svc.UpdateAccount(context.Background(), id, AccountInput{
		Code:           "CASH",
		Name:           "Wallet",
		Type:           AccountTypeCash,
		OpeningBalance: d("20"),
	})
	require.NoError(t, err)

	action := processor.last(t).(*actions.UpdateAccount)
	assert.Equal(t, id, action.ID)
	assert.True(t, action.Update.OpeningBalance.IsValue())
	assert.True(t, action.Update.IsActive.IsValue())
}

func TestToggleAndRecompute(t *testing.T) {
	svc, _, processor := newAccountTestService(t)
	processor.perform = func(action actions.IAction) error {
		switch a := action.(type) {
		case *actions.ToggleAccountStatus:
			a.IsActive = true
		case *actions.RecomputeBalances:
			a.Recomputed = 4
		}
		return nil
	}

	active, err := svc.ToggleAccountStatus(context.Background(), newUUID())
	require.NoError(t, err)
	assert.True(t, active)

	count, err := svc.RecomputeBalances(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
