package actions

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type tables struct {
	accounts     *sqlconfig.MockIAccountTable
	categories   *sqlconfig.MockICategoryTable
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
}

func newWriter(t *testing.T) (*storage.Writer, tables) {
	t.Helper()
	m := tables{
		accounts:     sqlconfig.NewMockIAccountTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
	}
	writer := &storage.Writer{Reader: storage.Reader{
		Accounts:     m.accounts,
		Categories:   m.categories,
		Transactions: m.transactions,
		Budgets:      m.budgets,
	}}
	return writer, m
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := ledger.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func newUUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()
	verr, ok := apperror.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	assert.Contains(t, verr.Fields, field)
}

func TestCreateTransaction_RecomputesBalance(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	account := &sqlconfig.Account{ID: newUUID(), OpeningBalance: d("1000"), IsActive: true}
	category := &sqlconfig.Category{ID: newUUID(), IsActive: true}
	createdID := newUUID()

	m.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	m.categories.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	m.transactions.EXPECT().Insert(ctx, mock.Anything).Return(createdID, nil)
	m.transactions.EXPECT().Totals(ctx, &sqlconfig.TransactionFilter{AccountID: &account.ID}).
		Return(ledger.Totals{Income: d("50"), Expense: d("200"), Count: 2}, nil)
	m.accounts.EXPECT().UpdateBalance(ctx, account.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, balance decimal.Decimal) {
			assert.True(t, balance.Equal(d("850")), "balance %s", balance)
		}).
		Return(nil)

	action := &CreateTransaction{Create: sqlconfig.TransactionCreate{
		AccountID:       account.ID,
		CategoryID:      category.ID,
		TransactionType: "expense",
		Amount:          d("200"),
	}}
	require.NoError(t, action.Perform(ctx, writer))
	assert.Equal(t, createdID, action.CreatedID)
}

func TestCreateTransaction_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	account := &sqlconfig.Account{ID: newUUID(), IsActive: false}
	m.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	action := &CreateTransaction{Create: sqlconfig.TransactionCreate{AccountID: account.ID, CategoryID: newUUID()}}
	err := action.Perform(ctx, writer)
	requireField(t, err, "accountID")
}

func TestUpdateTransaction_MoveBetweenAccountsRecomputesBoth(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	from := &sqlconfig.Account{ID: newUUID(), OpeningBalance: d("100"), IsActive: true}
	to := &sqlconfig.Account{ID: newUUID(), OpeningBalance: d("0"), IsActive: true}
	existing := &sqlconfig.Transaction{ID: newUUID(), AccountID: from.ID, CategoryID: newUUID()}
	update := sqlconfig.TransactionUpdate{AccountID: omit.From(to.ID)}

	m.transactions.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	m.accounts.EXPECT().FindByID(ctx, to.ID).Return(to, nil)
	m.transactions.EXPECT().Update(ctx, existing.ID, &update).Return(nil)
	m.accounts.EXPECT().FindByID(ctx, from.ID).Return(from, nil)
	m.transactions.EXPECT().Totals(ctx, &sqlconfig.TransactionFilter{AccountID: &from.ID}).Return(ledger.Totals{}, nil)
	m.transactions.EXPECT().Totals(ctx, &sqlconfig.TransactionFilter{AccountID: &to.ID}).
		Return(ledger.Totals{Income: d("25"), Count: 1}, nil)
	m.accounts.EXPECT().UpdateBalance(ctx, from.ID, mock.Anything).Return(nil)
	m.accounts.EXPECT().UpdateBalance(ctx, to.ID, mock.Anything).Return(nil)

	action := &UpdateTransaction{ID: existing.ID, Update: update}
	require.NoError(t, action.Perform(ctx, writer))
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	id := newUUID()
	m.transactions.EXPECT().FindByID(ctx, id).Return(nil, nil)

	err := (&UpdateTransaction{ID: id}).Perform(ctx, writer)
	assert.True(t, apperror.IsNotFound(err))
}

func TestBulkDeleteTransactions_IgnoresUnknownIDs(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	account := &sqlconfig.Account{ID: newUUID(), OpeningBalance: d("10")}
	known := &sqlconfig.Transaction{ID: newUUID(), AccountID: account.ID}
	unknown := newUUID()

	m.transactions.EXPECT().FindByIDs(ctx, []uuid.UUID{known.ID, unknown}).Return([]*sqlconfig.Transaction{known}, nil)
	m.transactions.EXPECT().DeleteMany(ctx, []uuid.UUID{known.ID}).Return(1, nil)
	m.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	m.transactions.EXPECT().Totals(ctx, mock.Anything).Return(ledger.Totals{}, nil)
	m.accounts.EXPECT().UpdateBalance(ctx, account.ID, mock.Anything).Return(nil)

	action := &BulkDeleteTransactions{IDs: []uuid.UUID{known.ID, unknown}}
	require.NoError(t, action.Perform(ctx, writer))
	assert.Equal(t, int64(1), action.Deleted)
}

func TestDeleteAccount_BlockedByTransactions(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	account := &sqlconfig.Account{ID: newUUID()}
	m.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	m.transactions.EXPECT().Totals(ctx, mock.Anything).Return(ledger.Totals{Count: 3}, nil)

	err := (&DeleteAccount{ID: account.ID}).Perform(ctx, writer)
	conflict, ok := apperror.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, "Cannot delete account with existing transactions.", conflict.Message)
}

func TestCreateAccount_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	m.accounts.EXPECT().FindByCode(ctx, "HDFC01").Return(&sqlconfig.Account{ID: newUUID(), Code: "HDFC01"}, nil)

	err := (&CreateAccount{Create: sqlconfig.AccountCreate{Code: "HDFC01"}}).Perform(ctx, writer)
	requireField(t, err, "code")
}

func TestUpdateAccount_OpeningBalanceChangeRecomputes(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	account := &sqlconfig.Account{ID: newUUID(), Code: "CASH", OpeningBalance: d("100")}
	update := sqlconfig.AccountUpdate{OpeningBalance: omit.From(d("150"))}

	m.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	m.accounts.EXPECT().Update(ctx, account.ID, &update).Return(nil)
	m.transactions.EXPECT().Totals(ctx, mock.Anything).Return(ledger.Totals{Expense: d("30"), Count: 1}, nil)
	m.accounts.EXPECT().UpdateBalance(ctx, account.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, balance decimal.Decimal) {
			assert.True(t, balance.Equal(d("120")))
		}).
		Return(nil)

	require.NoError(t, (&UpdateAccount{ID: account.ID, Update: update}).Perform(ctx, writer))
}

func TestRecomputeBalances_AllAccounts(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	accounts := []*sqlconfig.Account{
		{ID: newUUID(), OpeningBalance: d("1")},
		{ID: newUUID(), OpeningBalance: d("2")},
	}
	m.accounts.EXPECT().List(ctx, &sqlconfig.AccountFilter{}).Return(accounts, nil)
	m.transactions.EXPECT().Totals(ctx, mock.Anything).Return(ledger.Totals{}, nil)
	m.accounts.EXPECT().UpdateBalance(ctx, mock.Anything, mock.Anything).Return(nil)

	action := &RecomputeBalances{}
	require.NoError(t, action.Perform(ctx, writer))
	assert.Equal(t, 2, action.Recomputed)
}

func TestToggleAccountStatus(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	account := &sqlconfig.Account{ID: newUUID(), IsActive: true}
	m.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	m.accounts.EXPECT().Update(ctx, account.ID, &sqlconfig.AccountUpdate{IsActive: omit.From(false)}).Return(nil)

	action := &ToggleAccountStatus{ID: account.ID}
	require.NoError(t, action.Perform(ctx, writer))
	assert.False(t, action.IsActive)
}

func TestCreateCategory_ParentMustBeTopLevel(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	grandparent := newUUID()
	parent := &sqlconfig.Category{ID: newUUID(), ParentID: uuid.NullUUID{UUID: grandparent, Valid: true}}

	m.categories.EXPECT().FindByCode(ctx, "LUNCH").Return(nil, nil)
	m.categories.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)

	action := &CreateCategory{Create: sqlconfig.CategoryCreate{
		Code:     "LUNCH",
		ParentID: uuid.NullUUID{UUID: parent.ID, Valid: true},
	}}
	requireField(t, action.Perform(ctx, writer), "parentID")
}

func TestUpdateCategory_CannotParentItself(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	category := &sqlconfig.Category{ID: newUUID(), Code: "FOOD"}
	m.categories.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

	action := &UpdateCategory{ID: category.ID, Update: sqlconfig.CategoryUpdate{
		ParentID: omit.From(uuid.NullUUID{UUID: category.ID, Valid: true}),
	}}
	requireField(t, action.Perform(ctx, writer), "parentID")
}

func TestUpdateCategory_WithChildrenCannotGainParent(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	category := &sqlconfig.Category{ID: newUUID(), Code: "FOOD"}
	parent := &sqlconfig.Category{ID: newUUID()}
	m.categories.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	m.categories.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	m.categories.EXPECT().CountChildren(ctx, category.ID).Return(2, nil)

	action := &UpdateCategory{ID: category.ID, Update: sqlconfig.CategoryUpdate{
		ParentID: omit.From(uuid.NullUUID{UUID: parent.ID, Valid: true}),
	}}
	requireField(t, action.Perform(ctx, writer), "parentID")
}

func TestDeleteCategory_BlockedByChildren(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	category := &sqlconfig.Category{ID: newUUID()}
	m.categories.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	m.categories.EXPECT().CountChildren(ctx, category.ID).Return(1, nil)

	_, ok := apperror.AsConflict((&DeleteCategory{ID: category.ID}).Perform(ctx, writer))
	assert.True(t, ok)
}

func TestDeleteCategory_BlockedByTransactions(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	category := &sqlconfig.Category{ID: newUUID()}
	m.categories.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	m.categories.EXPECT().CountChildren(ctx, category.ID).Return(0, nil)
	m.transactions.EXPECT().Totals(ctx, &sqlconfig.TransactionFilter{CategoryIDs: []uuid.UUID{category.ID}}).
		Return(ledger.Totals{Count: 1}, nil)

	conflict, ok := apperror.AsConflict((&DeleteCategory{ID: category.ID}).Perform(ctx, writer))
	require.True(t, ok)
	assert.Equal(t, "Cannot delete category with existing transactions.", conflict.Message)
}

func TestCreateBudget_Overlap(t *testing.T) {
	cases := map[string]struct {
		existing []*sqlconfig.Budget
		start    string
		end      string
		rejected bool
	}{
		"overlapping active budget": {
			existing: []*sqlconfig.Budget{{StartDate: date("2024-03-01"), EndDate: date("2024-03-31")}},
			start:    "2024-03-15",
			end:      "2024-04-14",
			rejected: true,
		},
		"touching on the last day": {
			existing: []*sqlconfig.Budget{{StartDate: date("2024-03-01"), EndDate: date("2024-03-31")}},
			start:    "2024-03-31",
			end:      "2024-04-30",
			rejected: true,
		},
		"disjoint range": {
			existing: []*sqlconfig.Budget{{StartDate: date("2024-03-01"), EndDate: date("2024-03-31")}},
			start:    "2024-04-01",
			end:      "2024-04-30",
		},
		"no active budgets": {
			start: "2024-03-01",
			end:   "2024-03-31",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			writer, m := newWriter(t)

			categoryID := newUUID()
			m.categories.EXPECT().FindByID(ctx, categoryID).Return(&sqlconfig.Category{ID: categoryID}, nil)
			m.budgets.EXPECT().List(ctx, &sqlconfig.BudgetFilter{CategoryID: &categoryID, ActiveOnly: true}).
				Return(tc.existing, nil)
			if !tc.rejected {
				m.budgets.EXPECT().Insert(ctx, mock.Anything).Return(newUUID(), nil)
			}

			action := &CreateBudget{Create: sqlconfig.BudgetCreate{
				CategoryID: categoryID,
				Amount:     d("500"),
				StartDate:  date(tc.start),
				EndDate:    date(tc.end),
				IsActive:   true,
			}}
			err := action.Perform(ctx, writer)
			if tc.rejected {
				requireField(t, err, "startDate")
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, action.CreatedID)
		})
	}
}

func TestCreateBudget_InactiveSkipsOverlapCheck(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	categoryID := newUUID()
	m.categories.EXPECT().FindByID(ctx, categoryID).Return(&sqlconfig.Category{ID: categoryID}, nil)
	m.budgets.EXPECT().Insert(ctx, mock.Anything).Return(newUUID(), nil)

	action := &CreateBudget{Create: sqlconfig.BudgetCreate{
		CategoryID: categoryID,
		StartDate:  date("2024-03-01"),
		EndDate:    date("2024-03-31"),
	}}
	require.NoError(t, action.Perform(ctx, writer))
}

func TestUpdateBudget_ExcludesSelfAndChecksDates(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	budget := &sqlconfig.Budget{
		ID:         newUUID(),
		CategoryID: newUUID(),
		StartDate:  date("2024-03-01"),
		EndDate:    date("2024-03-31"),
		IsActive:   true,
	}
	m.budgets.EXPECT().FindByID(ctx, budget.ID).Return(budget, nil)

	action := &UpdateBudget{ID: budget.ID, Update: sqlconfig.BudgetUpdate{EndDate: omit.From(date("2024-02-01"))}}
	requireField(t, action.Perform(ctx, writer), "endDate")

	update := sqlconfig.BudgetUpdate{Amount: omit.From(d("900"))}
	m.budgets.EXPECT().List(ctx, &sqlconfig.BudgetFilter{
		CategoryID: &budget.CategoryID,
		ActiveOnly: true,
		ExcludeID:  &budget.ID,
	}).Return(nil, nil)
	m.budgets.EXPECT().Update(ctx, budget.ID, &update).Return(nil)

	require.NoError(t, (&UpdateBudget{ID: budget.ID, Update: update}).Perform(ctx, writer))
}

func TestToggleBudgetStatus_ActivatingChecksOverlap(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	budget := &sqlconfig.Budget{
		ID:         newUUID(),
		CategoryID: newUUID(),
		StartDate:  date("2024-03-01"),
		EndDate:    date("2024-03-31"),
	}
	m.budgets.EXPECT().FindByID(ctx, budget.ID).Return(budget, nil)
	m.budgets.EXPECT().List(ctx, mock.Anything).Return([]*sqlconfig.Budget{
		{ID: newUUID(), StartDate: date("2024-03-10"), EndDate: date("2024-03-20"), IsActive: true},
	}, nil)

	requireField(t, (&ToggleBudgetStatus{ID: budget.ID}).Perform(ctx, writer), "startDate")
}

func TestToggleBudgetStatus_Deactivating(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	budget := &sqlconfig.Budget{ID: newUUID(), IsActive: true}
	m.budgets.EXPECT().FindByID(ctx, budget.ID).Return(budget, nil)
	m.budgets.EXPECT().Update(ctx, budget.ID, &sqlconfig.BudgetUpdate{IsActive: omit.From(false)}).Return(nil)

	action := &ToggleBudgetStatus{ID: budget.ID}
	require.NoError(t, action.Perform(ctx, writer))
	assert.False(t, action.IsActive)
}

func TestDeleteBudget_NotFound(t *testing.T) {
	ctx := context.Background()
	writer, m := newWriter(t)

	id := newUUID()
	m.budgets.EXPECT().FindByID(ctx, id).Return(nil, nil)

	assert.True(t, apperror.IsNotFound((&DeleteBudget{ID: id}).Perform(ctx, writer)))
}
