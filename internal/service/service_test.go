package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// fakeProcessor records actions instead of running them. perform, when set,
// stands in for the action's effect.
type fakeProcessor struct {
	processed []actions.IAction
	perform   func(action actions.IAction) error
}

func (f *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	f.processed = append(f.processed, action)
	if f.perform != nil {
		return f.perform(action)
	}
	return nil
}

func (f *fakeProcessor) last(t *testing.T) actions.IAction {
	t.Helper()
	require.NotEmpty(t, f.processed)
	return f.processed[len(f.processed)-1]
}

type mocks struct {
	accounts     *sqlconfig.MockIAccountTable
	categories   *sqlconfig.MockICategoryTable
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
}

func newReader(t *testing.T) (storage.Reader, mocks) {
	t.Helper()
	m := mocks{
		accounts:     sqlconfig.NewMockIAccountTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
	}
	return storage.Reader{
		Accounts:     m.accounts,
		Categories:   m.categories,
		Transactions: m.transactions,
		Budgets:      m.budgets,
	}, m
}

func fixedClock(value string) func() time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newUUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func assertFields(t *testing.T, err error, fields ...string) {
	t.Helper()
	verr, ok := apperror.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	for _, field := range fields {
		assert.Contains(t, verr.Fields, field)
	}
}
