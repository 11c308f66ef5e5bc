package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// recomputeAccountBalance rebuilds an account's current balance from its
// opening balance and every transaction posted to it.
func recomputeAccountBalance(ctx context.Context, writer *storage.Writer, account *sqlconfig.Account) error {
	totals, err := writer.Transactions.Totals(ctx, &sqlconfig.TransactionFilter{AccountID: &account.ID})
	if err != nil {
		return fmt.Errorf("sum transactions for account %s: %w", account.ID, err)
	}

	balance := ledger.RecomputeBalance(account.OpeningBalance, totals)
	if err := writer.Accounts.UpdateBalance(ctx, account.ID, balance); err != nil {
		return fmt.Errorf("update balance for account %s: %w", account.ID, err)
	}
	return nil
}

// recomputeAccountBalances recomputes each distinct account in ids once.
func recomputeAccountBalances(ctx context.Context, writer *storage.Writer, ids ...uuid.UUID) error {
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		account, err := writer.Accounts.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			continue
		}
		if err := recomputeAccountBalance(ctx, writer, account); err != nil {
			return err
		}
	}
	return nil
}

// hasTransactions reports whether any transaction matches filter.
func hasTransactions(ctx context.Context, writer *storage.Writer, filter *sqlconfig.TransactionFilter) (bool, error) {
	totals, err := writer.Transactions.Totals(ctx, filter)
	if err != nil {
		return false, err
	}
	return totals.Count > 0, nil
}

// activeAccount loads an account that transactions may be posted to. field is
// the request field reported when it is unusable.
func activeAccount(ctx context.Context, writer *storage.Writer, id uuid.UUID, field string) (*sqlconfig.Account, error) {
	account, err := writer.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.Invalid(field, "The selected account does not exist.")
	}
	if !account.IsActive {
		return nil, apperror.Invalid(field, "The selected account is inactive.")
	}
	return account, nil
}

func activeCategory(ctx context.Context, writer *storage.Writer, id uuid.UUID, field string) (*sqlconfig.Category, error) {
	category, err := writer.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.Invalid(field, "The selected category does not exist.")
	}
	if !category.IsActive {
		return nil, apperror.Invalid(field, "The selected category is inactive.")
	}
	return category, nil
}
